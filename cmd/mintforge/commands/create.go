package commands

import (
	"github.com/spf13/cobra"

	"github.com/mintforge/mintforge/cmd/mintforge/handlers"
)

// Create returns the command that runs the full token launch sequence.
//
// Configuration is read from a YAML file when one is present. Without a
// config file the interactive wizard runs first, so 'mintforge create'
// alone is a complete launch.
//
// Optional flags:
//
//	--config, -c: Path to launch configuration YAML file (default: auto-detect mintforge.yaml)
//	--yes, -y: Skip the final confirmation prompt
//	--plain: Disable the live progress display
func Create() *cobra.Command {
	var (
		configPath string
		autoYes    bool
		plain      bool
		skipChecks bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create and launch the token",
		Long: `Create a fungible token and run the complete launch sequence.

The sequence creates the mint, creates the creator's holding account,
mints the total supply, permanently disables further minting, publishes
on-chain metadata, and transfers the circulating supply to the
recipient. The mint, account, and supply steps must succeed; the
remaining steps degrade to warnings so a half-launched token is never
left silently broken.

If no config file is specified, it looks for mintforge.yaml in the
current directory and falls back to the interactive wizard.

Examples:
  # Launch using mintforge.yaml in current directory
  mintforge create

  # Launch using specific config file
  mintforge create -c memecoin.yaml

  # Non-interactive launch for scripts
  mintforge create -c memecoin.yaml --yes --plain`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Create(cmd.Context(), handlers.CreateOptions{
				ConfigPath: configPath,
				AutoYes:    autoYes,
				Plain:      plain,
				SkipChecks: skipChecks,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: mintforge.yaml)")
	cmd.Flags().BoolVarP(&autoYes, "yes", "y", false, "Skip the final confirmation prompt")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable the live progress display")
	cmd.Flags().BoolVar(&skipChecks, "skip-checks", false, "Skip the tool availability check")

	return cmd
}
