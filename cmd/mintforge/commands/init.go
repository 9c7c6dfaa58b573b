package commands

import (
	"github.com/spf13/cobra"

	"github.com/mintforge/mintforge/cmd/mintforge/handlers"
)

// Init returns the command for interactively creating a launch configuration.
//
// This command guides users through configuring a token launch with an
// interactive wizard and writes the answers to a YAML file that
// 'mintforge create' consumes.
//
// Flags:
//
//	--output, -o: Path to output file (default "mintforge.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a launch configuration",
		Long: `Interactively create a token launch configuration file.

This command guides you through configuring your token launch
step by step. It will ask about:

  - Network (devnet or mainnet)
  - Wallet (CLI default, keypair file, or pasted keypair)
  - Transaction fee tier
  - Token identity (name, symbol, decimals)
  - Supply (total and circulating)
  - Metadata (description, image, website)
  - Listing preference

The resulting YAML can be reviewed, edited, and replayed with
'mintforge create'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "mintforge.yaml", "Output file path")

	return cmd
}
