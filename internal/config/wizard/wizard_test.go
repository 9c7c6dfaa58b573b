package wizard

import (
	"strings"
	"testing"

	"github.com/mintforge/mintforge/internal/config"
)

func fullResult() *Result {
	return &Result{
		Network:           string(config.NetworkDevnet),
		WalletSource:      string(config.WalletFile),
		WalletPath:        "/home/user/.config/solana/id.json",
		FeeTier:           string(config.FeeCustom),
		PriorityFee:       100_000,
		TokenName:         "Example Coin",
		Symbol:            "EXC",
		Decimals:          9,
		TotalSupply:       1_000_000,
		CirculatingSupply: 800_000,
		Description:       "A worked example",
		Website:           "https://example.com",
		Recipient:         "4Nd1mYvhYtFXhLbfWgWKVB2gqNcwHUK6bdTMPXjttW5X",
		Listing:           string(config.ListingMajor),
	}
}

func TestBuildSession(t *testing.T) {
	s := BuildSession(fullResult())

	if s.Network != config.NetworkDevnet {
		t.Errorf("Network = %q", s.Network)
	}
	if s.Wallet.Source != config.WalletFile || s.Wallet.Path != "/home/user/.config/solana/id.json" {
		t.Errorf("Wallet = %+v", s.Wallet)
	}
	if s.Fees.Tier != config.FeeCustom || s.Fees.PriorityFee != 100_000 {
		t.Errorf("Fees = %+v", s.Fees)
	}
	if s.Token.Name != "Example Coin" || s.Token.Symbol != "EXC" {
		t.Errorf("Token identity = %+v", s.Token)
	}
	if s.Token.TotalSupply != 1_000_000 || s.Token.CirculatingSupply != 800_000 {
		t.Errorf("Token supply = %+v", s.Token)
	}
	if s.Listing != config.ListingMajor {
		t.Errorf("Listing = %q", s.Listing)
	}
}

func TestBuildSessionDefaultWalletDropsPath(t *testing.T) {
	r := fullResult()
	r.WalletSource = string(config.WalletDefault)
	r.WalletPath = "/tmp/should-be-ignored"

	s := BuildSession(r)
	if s.Wallet.Path != "" {
		t.Errorf("Wallet.Path = %q, want empty for default source", s.Wallet.Path)
	}
}

func TestBuildSessionNonCustomFeeDropsPriority(t *testing.T) {
	r := fullResult()
	r.FeeTier = string(config.FeeBalanced)

	s := BuildSession(r)
	if s.Fees.PriorityFee != 0 {
		t.Errorf("PriorityFee = %d, want 0 for non-custom tier", s.Fees.PriorityFee)
	}
}

func TestBuildSessionValidates(t *testing.T) {
	// The mapped session must pass config validation once the recipient
	// is filled in, mirroring what the create handler does.
	s := BuildSession(fullResult())
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		input   string
		wantErr bool
	}{
		{"name ok", validateName, "Example Coin", false},
		{"name empty", validateName, "  ", true},
		{"name too long", validateName, strings.Repeat("x", 33), true},
		{"symbol ok", validateSymbol, "EXC", false},
		{"symbol digits ok", validateSymbol, "M0ON", false},
		{"symbol lowercase", validateSymbol, "exc", true},
		{"symbol too long", validateSymbol, "ABCDEFGHIJK", true},
		{"decimals ok", validateDecimals, "9", false},
		{"decimals over max", validateDecimals, "10", true},
		{"decimals negative", validateDecimals, "-1", true},
		{"positive ok", validatePositive, "1", false},
		{"positive zero", validatePositive, "0", true},
		{"non-negative zero", validateNonNegative, "0", false},
		{"non-negative junk", validateNonNegative, "1.5", true},
		{"optional address empty", validateOptionalAddress, "", false},
		{"optional address ok", validateOptionalAddress, "4Nd1mYvhYtFXhLbfWgWKVB2gqNcwHUK6bdTMPXjttW5X", false},
		{"optional address junk", validateOptionalAddress, "nope", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCirculating(t *testing.T) {
	if err := validateCirculating("800000", 1_000_000); err != nil {
		t.Errorf("valid split rejected: %v", err)
	}
	if err := validateCirculating("0", 1_000_000); err == nil {
		t.Error("zero circulating accepted")
	}
	if err := validateCirculating("2000000", 1_000_000); err == nil {
		t.Error("circulating above total accepted")
	}
}
