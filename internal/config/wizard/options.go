package wizard

import (
	"github.com/charmbracelet/huh"

	"github.com/mintforge/mintforge/internal/config"
)

// Choice is a selectable wizard option with a display label.
type Choice struct {
	Value       string
	Label       string
	Description string
}

// Networks contains the selectable clusters.
var Networks = []Choice{
	{Value: string(config.NetworkDevnet), Label: "Devnet", Description: "good for testing, uses fake SOL"},
	{Value: string(config.NetworkMainnet), Label: "Mainnet", Description: "real SOL, real money"},
}

// WalletSources contains the selectable wallet origins.
var WalletSources = []Choice{
	{Value: string(config.WalletDefault), Label: "Current default wallet", Description: "whatever the solana CLI is configured with"},
	{Value: string(config.WalletFile), Label: "Custom wallet file", Description: "path to an existing keypair file"},
	{Value: string(config.WalletKeypair), Label: "Paste a keypair", Description: "base58 string or JSON byte array"},
}

// FeeTiers contains the selectable fee strategies.
var FeeTiers = []Choice{
	{Value: string(config.FeeBalanced), Label: "Balanced (Recommended)", Description: "Good speed, reasonable cost"},
	{Value: string(config.FeeFast), Label: "Fast", Description: "Higher priority, faster confirmation"},
	{Value: string(config.FeeEconomy), Label: "Economy", Description: "Lower cost, may take longer"},
	{Value: string(config.FeeCustom), Label: "Custom", Description: "Set a specific priority fee"},
}

// ListingChoices contains the auto-listing preferences.
var ListingChoices = []Choice{
	{Value: string(config.ListingAll), Label: "Yes, all services", Description: "submit to every available tracking site"},
	{Value: string(config.ListingMajor), Label: "Major platforms only", Description: "DexScreener, DexTools and friends"},
	{Value: string(config.ListingNone), Label: "No", Description: "I'll do this manually later"},
}

// toOptions converts choices into huh select options.
func toOptions(choices []Choice) []huh.Option[string] {
	opts := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		label := c.Label
		if c.Description != "" {
			label += " - " + c.Description
		}
		opts[i] = huh.NewOption(label, c.Value)
	}
	return opts
}
