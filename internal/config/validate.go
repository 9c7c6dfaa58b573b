package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxDecimals is the largest decimal-places value the token program accepts.
const MaxDecimals = 9

// symbolRegex validates ticker symbols: 1-10 uppercase letters or digits.
var symbolRegex = regexp.MustCompile(`^[A-Z0-9]{1,10}$`)

// addressRegex is a shape check for base58 Solana addresses. It does not
// verify the checksum; the external CLI is the authority on validity.
var addressRegex = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

// ValidNetworks contains the selectable cluster names.
var ValidNetworks = map[Network]bool{
	NetworkDevnet:  true,
	NetworkMainnet: true,
}

// ValidFeeTiers contains the selectable fee tiers.
var ValidFeeTiers = map[FeeTier]bool{
	FeeBalanced: true,
	FeeFast:     true,
	FeeEconomy:  true,
	FeeCustom:   true,
}

// ValidListingPreferences contains the selectable listing modes.
var ValidListingPreferences = map[ListingPreference]bool{
	ListingAll:   true,
	ListingMajor: true,
	ListingNone:  true,
}

// Validate checks the session for common errors and returns a detailed
// error if validation fails.
func (s *Session) Validate() error {
	if !ValidNetworks[s.Network] {
		return fmt.Errorf("invalid network %q: must be %q or %q", s.Network, NetworkDevnet, NetworkMainnet)
	}

	if err := s.validateWallet(); err != nil {
		return fmt.Errorf("wallet validation failed: %w", err)
	}

	if !ValidFeeTiers[s.Fees.Tier] {
		return fmt.Errorf("invalid fee tier %q", s.Fees.Tier)
	}

	if err := s.Token.Validate(); err != nil {
		return fmt.Errorf("token validation failed: %w", err)
	}

	if !ValidListingPreferences[s.Listing] {
		return fmt.Errorf("invalid listing preference %q", s.Listing)
	}

	return nil
}

func (s *Session) validateWallet() error {
	switch s.Wallet.Source {
	case WalletDefault:
		return nil
	case WalletFile, WalletKeypair:
		if s.Wallet.Path == "" {
			return fmt.Errorf("wallet source %q requires a keypair path", s.Wallet.Source)
		}
		return nil
	default:
		return fmt.Errorf("invalid wallet source %q", s.Wallet.Source)
	}
}

// Validate checks the token attributes and the supply split invariant.
func (t *TokenConfig) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(t.Name) > 32 {
		return fmt.Errorf("name must be at most 32 characters, got %d", len(t.Name))
	}
	if !symbolRegex.MatchString(t.Symbol) {
		return fmt.Errorf("invalid symbol %q: must be 1-10 uppercase letters or digits", t.Symbol)
	}
	if t.Decimals < 0 || t.Decimals > MaxDecimals {
		return fmt.Errorf("decimals must be between 0 and %d, got %d", MaxDecimals, t.Decimals)
	}
	if t.TotalSupply == 0 {
		return fmt.Errorf("total supply must be greater than zero")
	}
	if t.CirculatingSupply == 0 || t.CirculatingSupply > t.TotalSupply {
		return fmt.Errorf("circulating supply must satisfy 0 < circulating (%d) <= total (%d)",
			t.CirculatingSupply, t.TotalSupply)
	}
	// An empty recipient means the circulating supply stays with the
	// creator's wallet, resolved at launch time.
	if t.Recipient != "" && !addressRegex.MatchString(t.Recipient) {
		return fmt.Errorf("recipient %q does not look like a base58 address", t.Recipient)
	}
	return nil
}

// ParseNonNegativeInt parses s as a whole number >= 0. It rejects signs,
// decimals and grouping characters other than underscores and commas,
// which are stripped for convenience.
func ParseNonNegativeInt(s string) (uint64, error) {
	cleaned := strings.NewReplacer(",", "", "_", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, fmt.Errorf("a number is required")
	}
	if strings.HasPrefix(cleaned, "+") || strings.HasPrefix(cleaned, "-") {
		return 0, fmt.Errorf("%q is not a non-negative whole number", s)
	}
	v, err := strconv.ParseUint(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a non-negative whole number", s)
	}
	return v, nil
}

// ParseBoundedInt parses s as a whole number in [0, max].
func ParseBoundedInt(s string, max uint64) (uint64, error) {
	v, err := ParseNonNegativeInt(s)
	if err != nil {
		return 0, err
	}
	if v > max {
		return 0, fmt.Errorf("value %d exceeds maximum %d", v, max)
	}
	return v, nil
}

// IsAddress reports whether s is shaped like a base58 Solana address.
func IsAddress(s string) bool { return addressRegex.MatchString(s) }
