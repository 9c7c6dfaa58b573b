package commands

import (
	"github.com/spf13/cobra"

	"github.com/mintforge/mintforge/cmd/mintforge/handlers"
)

// Doctor returns the command for diagnosing the launch environment.
//
// This command checks that the required command-line tools are
// installed and that the configured wallet is reachable.
//
// Optional flags:
//
//	--config, -c: Path to launch configuration YAML file (default: auto-detect mintforge.yaml)
//	--json: Output in JSON format
func Doctor() *cobra.Command {
	var configPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the launch environment",
		Long: `Diagnose the mintforge launch environment.

Checks performed:
  - solana CLI installed (required)
  - spl-token CLI installed (required)
  - metaplex CLI installed (optional, metadata publishing degrades
    to a warning without it)
  - wallet address and balance, when a config file is present

Examples:
  # Check tool availability
  mintforge doctor

  # Include wallet checks from a config file
  mintforge doctor -c memecoin.yaml

  # Get status in JSON format
  mintforge doctor --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: mintforge.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
