package wizard

import (
	"context"
	"fmt"
)

// Result holds all the answers from the interactive wizard. Amount
// fields are kept as entered; BuildSession parses and maps them.
type Result struct {
	// Network & wallet
	Network      string
	WalletSource string
	// WalletPath is the keypair file for the file source, or the
	// materialized temp file for pasted keypairs.
	WalletPath string

	// Fees
	FeeTier     string
	PriorityFee uint64

	// Token attributes
	TokenName         string
	Symbol            string
	Decimals          int
	TotalSupply       uint64
	CirculatingSupply uint64
	Description       string
	ImageURL          string
	Website           string
	// Recipient is empty when the circulating supply stays with the
	// creator's own wallet.
	Recipient string

	// Listing
	Listing string

	// OfferAirdrop records whether the user wants devnet faucet funds.
	OfferAirdrop bool
}

// Run walks through the launch questionnaire. The context is used for
// cancellation support (Ctrl+C aborts the form).
func Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runNetworkGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}

	if err := runWalletGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("wallet: %w", err)
	}

	if err := runFeeGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("fees: %w", err)
	}

	if err := runTokenGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("token details: %w", err)
	}

	if err := runSupplyGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("supply split: %w", err)
	}

	if err := runListingGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("auto-listing: %w", err)
	}

	return result, nil
}
