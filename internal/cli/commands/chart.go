package commands

import (
	"github.com/spf13/cobra"

	"github.com/siddhanta-labs/siddhanta/internal/cli/config"
)

// NewChartCommand creates the chart command.
func NewChartCommand() *cobra.Command {
	birth := &BirthFlags{}

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Compute a birth chart",
		Long: `Compute the sidereal birth chart for a date, time and location:
positions of the nine bodies with sign, nakshatra, house, retrograde flag,
strength score and dignity, plus the ascendant and house cusps.`,
		Example: `  # Chart for New Delhi
  siddhanta chart --date 1990-06-15 --time 14:30:00 --utc-offset 5.5 --lat 28.61 --lon 77.20

  # Output as JSON
  siddhanta chart --date 1990-06-15 --lat 28.61 --lon 77.20 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChart(cmd, birth)
		},
	}

	addBirthFlags(cmd, birth)
	return cmd
}

func runChart(cmd *cobra.Command, birth *BirthFlags) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	instant, err := birth.Instant()
	if err != nil {
		return err
	}

	c, err := cmdCtx.Builder.Build(cmd.Context(), instant, birth.Latitude, birth.Longitude)
	if err != nil {
		return err
	}

	if cmdCtx.Cfg.Output == config.OutputJSON {
		return renderJSON(cmd.OutOrStdout(), c)
	}
	renderChartTable(cmd.OutOrStdout(), c)
	return nil
}
