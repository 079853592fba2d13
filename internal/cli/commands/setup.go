// Package commands implements the siddhanta subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/siddhanta-labs/siddhanta/internal/cli/config"
	"github.com/siddhanta-labs/siddhanta/pkg/chart"
	"github.com/siddhanta-labs/siddhanta/pkg/ephem"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg     *config.Config
	Logger  *slog.Logger
	Engine  *ephem.Engine
	Builder *chart.Builder
}

// NewCommandContext creates a CommandContext with the ephemeris engine and
// chart builder wired from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	engine, err := createEngine(cfg, logger)
	if err != nil {
		return nil, err
	}

	houseOpts, err := cfg.Project().HouseOptions()
	if err != nil {
		return nil, err
	}

	builder := chart.NewBuilder(engine, chart.Options{
		Houses:          houseOpts,
		AyanamsaAtJ2000: cfg.Ayanamsa.AtJ2000,
		AyanamsaRate:    cfg.Ayanamsa.RatePerYear,
		Logger:          logger,
	})

	return &CommandContext{
		Cfg:     cfg,
		Logger:  logger,
		Engine:  engine,
		Builder: builder,
	}, nil
}

// getConfig returns the current configuration, falling back to defaults
// when no config has been loaded (e.g. in tests driving a bare command).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	cfg := &config.Config{Output: config.DefaultOutput}
	project := cfg.Project()
	project.ApplyDefaults()
	cfg.Ayanamsa = project.Ayanamsa
	cfg.Houses = project.Houses
	cfg.MaxOrb = project.MaxOrb
	return cfg
}

// createEngine builds the ephemeris engine, applying a term-table override
// when one is configured.
func createEngine(cfg *config.Config, logger *slog.Logger) (*ephem.Engine, error) {
	opts := []ephem.Option{ephem.WithLogger(logger)}
	if cfg.TermTable != "" {
		tables, err := ephem.LoadTermTables(cfg.TermTable)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ephem.WithTables(tables))
	}
	return ephem.NewEngine(opts...), nil
}

// NewLogger builds the CLI logger: discard by default, text on stderr when
// verbose.
func NewLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
