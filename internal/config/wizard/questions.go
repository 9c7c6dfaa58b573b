package wizard

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/mintforge/mintforge/internal/config"
	"github.com/mintforge/mintforge/internal/solana"
)

// Function variables for dependency injection in tests.
var (
	readKeypairInput   = defaultReadKeypairInput
	materializeKeypair = func(input string) (string, error) {
		return solana.MaterializeKeypair(input, "")
	}
)

// runNetworkGroup prompts for the target cluster and, on devnet, the
// faucet offer.
func runNetworkGroup(ctx context.Context, result *Result) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Network").
				Description("Which network would you like to use?").
				Options(toOptions(Networks)...).
				Value(&result.Network),
		).Title("Network"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	if result.Network != string(config.NetworkDevnet) {
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Get test SOL from the devnet faucet?").
				Value(&result.OfferAirdrop),
		),
	).RunWithContext(ctx)
}

// runWalletGroup prompts for the wallet source and collects keypair
// material where needed.
func runWalletGroup(ctx context.Context, result *Result) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Wallet").
				Description("Which wallet should create the token?").
				Options(toOptions(WalletSources)...).
				Value(&result.WalletSource),
		).Title("Wallet"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	switch result.WalletSource {
	case string(config.WalletFile):
		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Keypair file").
					Description("Path to your wallet keypair file").
					Placeholder("~/.config/solana/id.json").
					Value(&result.WalletPath).
					Validate(validateKeypairFile),
			),
		).RunWithContext(ctx)

	case string(config.WalletKeypair):
		// Keypair material bypasses the form so it is never echoed.
		input, err := readKeypairInput()
		if err != nil {
			return err
		}
		path, err := materializeKeypair(input)
		if err != nil {
			return err
		}
		result.WalletPath = path
		return nil

	default:
		return nil
	}
}

// runFeeGroup prompts for the fee tier and a custom priority fee.
func runFeeGroup(ctx context.Context, result *Result) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Gas Fee Optimization").
				Description("How would you like to handle transaction fees?").
				Options(toOptions(FeeTiers)...).
				Value(&result.FeeTier),
		).Title("Fees"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	if result.FeeTier != string(config.FeeCustom) {
		return nil
	}

	var feeInput string
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Priority fee").
				Description("In micro-lamports, e.g. 100000 for 0.0001 SOL").
				Placeholder("100000").
				Value(&feeInput).
				Validate(validateNonNegative),
		),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	fee, err := config.ParseNonNegativeInt(feeInput)
	if err != nil {
		return err
	}
	result.PriorityFee = fee
	return nil
}

// runTokenGroup prompts for the token's identity and links.
func runTokenGroup(ctx context.Context, result *Result) error {
	var decimalsInput string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Token name").
				Placeholder("Example Coin").
				Value(&result.TokenName).
				Validate(validateName),
			huh.NewInput().
				Title("Symbol").
				Description("1-10 uppercase letters or digits").
				Placeholder("EXC").
				Value(&result.Symbol).
				Validate(validateSymbol),
			huh.NewInput().
				Title("Decimals").
				Description(fmt.Sprintf("0-%d, most tokens use 9", config.MaxDecimals)).
				Placeholder("9").
				Value(&decimalsInput).
				Validate(validateDecimals),
		).Title("Token Details"),
		huh.NewGroup(
			huh.NewInput().
				Title("Description (optional)").
				Value(&result.Description),
			huh.NewInput().
				Title("Image URL (optional)").
				Placeholder("https://example.com/logo.png").
				Value(&result.ImageURL),
			huh.NewInput().
				Title("Website (optional)").
				Placeholder("https://example.com").
				Value(&result.Website),
			huh.NewInput().
				Title("Recipient address (optional)").
				Description("Receives the circulating supply. Leave empty to keep it in your wallet.").
				Value(&result.Recipient).
				Validate(validateOptionalAddress),
		).Title("Metadata & Recipient"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	decimals, err := config.ParseBoundedInt(decimalsInput, config.MaxDecimals)
	if err != nil {
		return err
	}
	result.Decimals = int(decimals)
	return nil
}

// runSupplyGroup prompts for the total supply and the circulating split.
// Two passes so the circulating validator can see the parsed total.
func runSupplyGroup(ctx context.Context, result *Result) error {
	var totalInput string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Total supply").
				Description("Whole units to mint").
				Placeholder("1000000").
				Value(&totalInput).
				Validate(validatePositive),
		).Title("Supply"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	total, err := config.ParseNonNegativeInt(totalInput)
	if err != nil {
		return err
	}
	result.TotalSupply = total

	var circInput string
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Circulating supply").
				Description(fmt.Sprintf("Units released for trading; the rest of the %d stays locked", total)).
				Placeholder(totalInput).
				Value(&circInput).
				Validate(func(s string) error { return validateCirculating(s, total) }),
		),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	circulating, err := config.ParseNonNegativeInt(circInput)
	if err != nil {
		return err
	}
	result.CirculatingSupply = circulating
	return nil
}

// runListingGroup prompts for the auto-listing preference.
func runListingGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Auto-Listing Services").
				Description("Submit your token to tracking sites?").
				Options(toOptions(ListingChoices)...).
				Value(&result.Listing),
		).Title("Auto-Listing"),
	).RunWithContext(ctx)
}

func validateName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errNameRequired
	}
	if len(s) > 32 {
		return errNameTooLong
	}
	return nil
}

func validateSymbol(s string) error {
	if !isSymbol(strings.TrimSpace(s)) {
		return errSymbolInvalid
	}
	return nil
}

func isSymbol(s string) bool {
	if len(s) < 1 || len(s) > 10 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

func validateDecimals(s string) error {
	_, err := config.ParseBoundedInt(s, config.MaxDecimals)
	return err
}

func validateNonNegative(s string) error {
	_, err := config.ParseNonNegativeInt(s)
	return err
}

func validatePositive(s string) error {
	v, err := config.ParseNonNegativeInt(s)
	if err != nil {
		return err
	}
	if v == 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

func validateCirculating(s string, total uint64) error {
	v, err := config.ParseNonNegativeInt(s)
	if err != nil {
		return err
	}
	if v == 0 || v > total {
		return fmt.Errorf("must satisfy 0 < circulating <= %d", total)
	}
	return nil
}

func validateKeypairFile(s string) error {
	if _, err := os.Stat(strings.TrimSpace(s)); err != nil {
		return errKeypairNotFound
	}
	return nil
}

func validateOptionalAddress(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !config.IsAddress(s) {
		return errRecipientInvalid
	}
	return nil
}

// defaultReadKeypairInput reads keypair material from stdin without
// echoing it when stdin is a terminal.
func defaultReadKeypairInput() (string, error) {
	fmt.Print("Paste your keypair (base58 or JSON array, input hidden): ")
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		data, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read keypair: %w", err)
		}
		return string(data), nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	// Keypair JSON arrays run past bufio's default token size.
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read keypair: %w", err)
		}
		return "", fmt.Errorf("no keypair input")
	}
	return scanner.Text(), nil
}
