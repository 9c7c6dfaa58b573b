package config

import "math"

// Network identifies a Solana cluster.
type Network string

const (
	// NetworkDevnet is the public development cluster with a free faucet.
	NetworkDevnet Network = "devnet"
	// NetworkMainnet is the production cluster.
	NetworkMainnet Network = "mainnet-beta"
)

// RPCURL returns the public RPC endpoint for the network.
func (n Network) RPCURL() string {
	switch n {
	case NetworkMainnet:
		return "https://api.mainnet-beta.solana.com"
	default:
		return "https://api.devnet.solana.com"
	}
}

// ExplorerURL returns the explorer link for an address on this network.
func (n Network) ExplorerURL(address string) string {
	base := "https://explorer.solana.com/address/" + address
	if n == NetworkDevnet {
		return base + "?cluster=devnet"
	}
	return base
}

// HasFaucet reports whether the network offers airdrops.
func (n Network) HasFaucet() bool { return n == NetworkDevnet }

// WalletSource indicates where the signing keypair comes from.
type WalletSource string

const (
	// WalletDefault uses whatever keypair the solana CLI is configured with.
	WalletDefault WalletSource = "default"
	// WalletFile points the solana CLI at an existing keypair file.
	WalletFile WalletSource = "file"
	// WalletKeypair materializes pasted keypair material to a temp file.
	WalletKeypair WalletSource = "keypair"
)

// WalletConfig describes the wallet used to sign every transaction.
type WalletConfig struct {
	Source WalletSource `yaml:"source"`
	// Path is the keypair file for WalletFile, or the materialized temp
	// file for WalletKeypair. Empty for WalletDefault.
	Path string `yaml:"path,omitempty"`
}

// FeeTier selects how aggressively transactions are prioritized.
type FeeTier string

const (
	FeeBalanced FeeTier = "balanced"
	FeeFast     FeeTier = "fast"
	FeeEconomy  FeeTier = "economy"
	FeeCustom   FeeTier = "custom"
)

// Commitment returns the solana CLI commitment level for the tier.
func (f FeeTier) Commitment() string {
	switch f {
	case FeeFast:
		return "finalized"
	case FeeEconomy:
		return "processed"
	default:
		return "confirmed"
	}
}

// FeeConfig holds the fee tier and, for FeeCustom, the priority fee.
type FeeConfig struct {
	Tier FeeTier `yaml:"tier"`
	// PriorityFee is the compute unit price in micro-lamports. Only
	// meaningful for FeeCustom.
	PriorityFee uint64 `yaml:"priority_fee,omitempty"`
}

// ListingPreference controls which tracking platforms are reported.
type ListingPreference string

const (
	// ListingAll submits to every catalogued platform.
	ListingAll ListingPreference = "all"
	// ListingMajor limits submission to the major DEX trackers.
	ListingMajor ListingPreference = "major"
	// ListingNone skips auto-listing entirely.
	ListingNone ListingPreference = "none"
)

// TokenConfig holds the attributes of the token being launched.
type TokenConfig struct {
	Name     string `yaml:"name"`
	Symbol   string `yaml:"symbol"`
	Decimals int    `yaml:"decimals"`

	// TotalSupply is the number of whole units minted.
	TotalSupply uint64 `yaml:"total_supply"`
	// CirculatingSupply is the portion transferred to the recipient;
	// the remainder stays locked in the creator's holding account.
	CirculatingSupply uint64 `yaml:"circulating_supply"`

	Description string `yaml:"description,omitempty"`
	ImageURL    string `yaml:"image_url,omitempty"`
	Website     string `yaml:"website,omitempty"`

	// Recipient receives the circulating supply. Defaults to the
	// creator's own wallet address.
	Recipient string `yaml:"recipient"`
}

// Session is the complete, confirmed configuration for one launch run.
type Session struct {
	Network Network           `yaml:"network"`
	Wallet  WalletConfig      `yaml:"wallet"`
	Fees    FeeConfig         `yaml:"fees"`
	Token   TokenConfig       `yaml:"token"`
	Listing ListingPreference `yaml:"listing"`

	// Airdrop pre-authorizes a faucet request when the balance falls
	// short. Only meaningful on networks with a faucet.
	Airdrop bool `yaml:"airdrop,omitempty"`

	// SkipPrerequisites disables the tool availability check.
	SkipPrerequisites bool `yaml:"skip_prerequisites,omitempty"`
}

// LockedSupply returns the units that stay in the holding account.
func (t TokenConfig) LockedSupply() uint64 {
	if t.CirculatingSupply > t.TotalSupply {
		return 0
	}
	return t.TotalSupply - t.CirculatingSupply
}

// CirculatingPercent returns the circulating share of total supply,
// rounded to one decimal place.
func (t TokenConfig) CirculatingPercent() float64 {
	if t.TotalSupply == 0 {
		return 0
	}
	return round1(float64(t.CirculatingSupply) / float64(t.TotalSupply) * 100)
}

// LockedPercent returns the locked share of total supply, rounded to one
// decimal place.
func (t TokenConfig) LockedPercent() float64 {
	if t.TotalSupply == 0 {
		return 0
	}
	return round1(float64(t.LockedSupply()) / float64(t.TotalSupply) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
