package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	intconfig "github.com/siddhanta-labs/siddhanta/internal/config"
)

// configTemplate is the scaffolded siddhanta.yaml with every default
// spelled out.
const configTemplate = `# Siddhanta configuration

# Linear ayanamsa coefficients (approximate Lahiri).
ayanamsa:
  at_j2000: 23.853
  rate_per_year: 50.2888

houses:
  # whole-sign or placidus. House assignment follows the system.
  system: whole-sign
  # |latitude| beyond which placidus is refused.
  polar_limit: 66.5
  # Substitute whole-sign houses instead of failing at polar latitudes.
  fallback_whole_sign: false

# Default maximum aspect orb in degrees.
max_orb: 6

# Optional YAML term-table override for higher-precision series.
# term_table: tables/vsop87.yaml
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Scaffold a siddhanta.yaml configuration file",
		Long:  `Write a siddhanta.yaml with the default configuration, commented.`,
		Example: `  # Initialize in the current directory
  siddhanta init

  # Force overwrite an existing config
  siddhanta init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, intconfig.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", intconfig.ConfigFileName)
	}

	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)
	return nil
}
