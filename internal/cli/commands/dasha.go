package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siddhanta-labs/siddhanta/internal/cli/config"
	"github.com/siddhanta-labs/siddhanta/pkg/astro"
	"github.com/siddhanta-labs/siddhanta/pkg/dasha"
)

// NewDashaCommand creates the dasha command.
func NewDashaCommand() *cobra.Command {
	birth := &BirthFlags{}
	var levels int

	cmd := &cobra.Command{
		Use:   "dasha",
		Short: "Compute the Vimshottari period timeline",
		Long: `Compute the Vimshottari dasha timeline from the birth Moon's nakshatra:
nine main periods covering the 120-year cycle, each subdivided into nine
sub-periods (antardasha).`,
		Example: `  # Timeline with sub-periods
  siddhanta dasha --date 1990-06-15 --time 14:30:00 --utc-offset 5.5 --lat 28.61 --lon 77.20

  # Main periods only
  siddhanta dasha --date 1990-06-15 --lat 28.61 --lon 77.20 --levels 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDasha(cmd, birth, levels)
		},
	}

	addBirthFlags(cmd, birth)
	cmd.Flags().IntVar(&levels, "levels", 2, "Subdivision depth (1 = main periods, 2 = antardasha, 3 = pratyantardasha)")
	return cmd
}

func runDasha(cmd *cobra.Command, birth *BirthFlags, levels int) error {
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

	moon, ok := c.Get(astro.Moon)
	if !ok {
		return fmt.Errorf("chart carries no Moon position")
	}

	periods, err := dasha.FromMoon(moon, c.Datetime, levels)
	if err != nil {
		return err
	}

	if cmdCtx.Cfg.Output == config.OutputJSON {
		return renderJSON(cmd.OutOrStdout(), periods)
	}
	renderDashaTable(cmd.OutOrStdout(), periods)
	return nil
}
