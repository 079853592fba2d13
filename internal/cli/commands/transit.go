package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/siddhanta-labs/siddhanta/internal/cli/config"
	"github.com/siddhanta-labs/siddhanta/pkg/transit"
)

// NewTransitCommand creates the transit command.
func NewTransitCommand() *cobra.Command {
	birth := &BirthFlags{}
	var target string
	var orb float64

	cmd := &cobra.Command{
		Use:   "transit",
		Short: "Project the natal chart to a target date",
		Long: `Project every natal body to a target date by mean daily motion,
re-derive its attributes against the natal ascendant, and list the aspects
the transiting bodies form with the natal positions.

The projection is a linear mean-motion approximation, not a full series
re-evaluation.`,
		Example: `  siddhanta transit --date 1990-06-15 --time 14:30:00 --utc-offset 5.5 \
      --lat 28.61 --lon 77.20 --target 2026-08-30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTransit(cmd, birth, target, orb)
		},
	}

	addBirthFlags(cmd, birth)
	cmd.Flags().StringVar(&target, "target", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&orb, "orb", 0, "Maximum aspect orb in degrees (default from config)")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func runTransit(cmd *cobra.Command, birth *BirthFlags, target string, orb float64) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	instant, err := birth.Instant()
	if err != nil {
		return err
	}
	targetDate, err := time.Parse("2006-01-02", target)
	if err != nil {
		return fmt.Errorf("invalid target date %q: %w", target, err)
	}

	c, err := cmdCtx.Builder.Build(cmd.Context(), instant, birth.Latitude, birth.Longitude)
	if err != nil {
		return err
	}

	if orb == 0 {
		orb = cmdCtx.Cfg.MaxOrb
	}
	report := transit.Compute(c, targetDate.UTC(), orb)

	if cmdCtx.Cfg.Output == config.OutputJSON {
		return renderJSON(cmd.OutOrStdout(), report)
	}
	renderTransitTable(cmd.OutOrStdout(), report)
	return nil
}
