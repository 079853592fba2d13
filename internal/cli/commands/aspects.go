package commands

import (
	"github.com/spf13/cobra"

	"github.com/siddhanta-labs/siddhanta/internal/cli/config"
	"github.com/siddhanta-labs/siddhanta/pkg/transit"
)

// NewAspectsCommand creates the aspects command.
func NewAspectsCommand() *cobra.Command {
	birth := &BirthFlags{}
	var orb float64

	cmd := &cobra.Command{
		Use:   "aspects",
		Short: "List aspects within the natal chart",
		Long: `Detect the angular relationships between the bodies of a single chart:
conjunction, sextile, square, trine and opposition, within the configured
maximum orb.`,
		Example: `  siddhanta aspects --date 1990-06-15 --time 14:30:00 --utc-offset 5.5 \
      --lat 28.61 --lon 77.20 --orb 6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAspects(cmd, birth, orb)
		},
	}

	addBirthFlags(cmd, birth)
	cmd.Flags().Float64Var(&orb, "orb", 0, "Maximum aspect orb in degrees (default from config)")
	return cmd
}

func runAspects(cmd *cobra.Command, birth *BirthFlags, orb float64) error {
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

	if orb == 0 {
		orb = cmdCtx.Cfg.MaxOrb
	}

	// Within one chart each unordered pair is reported once.
	aspects := transit.DetectAspects(c.Bodies, c.Bodies, orb)
	filtered := aspects[:0]
	for _, a := range aspects {
		if a.BodyA < a.BodyB {
			filtered = append(filtered, a)
		}
	}

	if cmdCtx.Cfg.Output == config.OutputJSON {
		return renderJSON(cmd.OutOrStdout(), filtered)
	}
	renderAspectTable(cmd.OutOrStdout(), filtered)
	return nil
}
