package wizard

import "github.com/mintforge/mintforge/internal/config"

// BuildSession creates a Session from the wizard result. The recipient
// may still be empty here; the create handler fills it with the
// connected wallet address once known.
func BuildSession(result *Result) *config.Session {
	s := &config.Session{
		Network: config.Network(result.Network),
		Fees: config.FeeConfig{
			Tier: config.FeeTier(result.FeeTier),
		},
		Token: config.TokenConfig{
			Name:              result.TokenName,
			Symbol:            result.Symbol,
			Decimals:          result.Decimals,
			TotalSupply:       result.TotalSupply,
			CirculatingSupply: result.CirculatingSupply,
			Description:       result.Description,
			ImageURL:          result.ImageURL,
			Website:           result.Website,
			Recipient:         result.Recipient,
		},
		Listing: config.ListingPreference(result.Listing),
		Airdrop: result.OfferAirdrop,
	}

	s.Wallet = config.WalletConfig{
		Source: config.WalletSource(result.WalletSource),
	}
	if s.Wallet.Source != config.WalletDefault {
		s.Wallet.Path = result.WalletPath
	}

	if s.Fees.Tier == config.FeeCustom {
		s.Fees.PriorityFee = result.PriorityFee
	}

	return s
}
