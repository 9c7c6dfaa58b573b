package handlers

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/mintforge/mintforge/internal/config"
	"github.com/mintforge/mintforge/internal/launch"
	"github.com/mintforge/mintforge/internal/listing"
	"github.com/mintforge/mintforge/internal/solana"
	"github.com/mintforge/mintforge/internal/ui/tui"
	"github.com/mintforge/mintforge/internal/util/prerequisites"
)

// airdropAmount is the SOL requested from the devnet faucet when the
// wallet cannot cover the launch.
const airdropAmount = 1

// Factory function variables for create - can be replaced in tests.
var (
	// newRunner builds the process runner shared by all CLI clients.
	newRunner = func() solana.Runner { return solana.NewRunner() }

	// checkDefaultPrereqs runs the required tool checks.
	checkDefaultPrereqs = prerequisites.CheckDefault

	// checkMetadataPrereqs runs the optional metadata tool check.
	checkMetadataPrereqs = func() *prerequisites.CheckResults {
		return prerequisites.Check(prerequisites.MetadataTools())
	}

	// loadConfigFile loads a session from a YAML file.
	loadConfigFile = config.LoadFile

	// findConfigFile locates the default config file.
	findConfigFile = config.FindConfigFile

	// confirmLaunch asks for the final go-ahead before spending SOL.
	confirmLaunch = func(network config.Network) (bool, error) {
		var ok bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Launch this token on %s?", network)).
			Value(&ok).
			Run()
		return ok, err
	}

	// confirmAirdrop asks before requesting faucet funds.
	confirmAirdrop = func() (bool, error) {
		var ok bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Balance is low. Request %d SOL from the devnet faucet?", airdropAmount)).
			Value(&ok).
			Run()
		return ok, err
	}

	// runTUI wraps the launch run with the live step display.
	runTUI = tui.Run

	// isInteractive reports whether stdout is a terminal.
	isInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

// CreateOptions are the command-line switches for a launch run.
type CreateOptions struct {
	// ConfigPath is an explicit session file. Empty means auto-detect,
	// falling back to the wizard.
	ConfigPath string

	// AutoYes skips the confirmation and airdrop prompts.
	AutoYes bool

	// Plain disables the live progress display.
	Plain bool

	// SkipChecks disables the tool availability check.
	SkipChecks bool
}

// Create runs the complete token launch.
//
// The workflow:
//  1. Loads the session from a config file, or runs the wizard
//  2. Verifies the solana and spl-token CLIs are installed
//  3. Points the solana CLI at the configured cluster, keypair, and
//     commitment level
//  4. Resolves the wallet address and checks the balance against the
//     cost estimate, offering a devnet airdrop when it falls short
//  5. Runs the launch sequence (mint, account, supply, lockout,
//     metadata, transfer) under the live display
//  6. Writes the listing report and cleans up working files
//
// Working files like the metadata JSON and a materialized keypair are
// removed on every exit path, success or not.
func Create(ctx context.Context, opts CreateOptions) error {
	cfg, err := loadSession(ctx, opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.SkipChecks {
		cfg.SkipPrerequisites = true
	}

	metadataAvailable, err := checkTools(cfg)
	if err != nil {
		return err
	}

	runner := newRunner()
	client := solana.NewClient(runner)

	if err := configureWallet(ctx, client, cfg); err != nil {
		return cleanupOnErr(cfg, nil, err)
	}

	addr, err := client.Address(ctx)
	if err != nil {
		return cleanupOnErr(cfg, nil, fmt.Errorf("failed to resolve wallet address: %w", err))
	}

	if err := checkBalance(ctx, client, cfg, opts.AutoYes); err != nil {
		return cleanupOnErr(cfg, nil, err)
	}

	// An empty recipient means the circulating supply stays with the
	// creator. Resolve it now so the session validates.
	if cfg.Token.Recipient == "" {
		cfg.Token.Recipient = addr
	}
	if err := cfg.Validate(); err != nil {
		return cleanupOnErr(cfg, nil, fmt.Errorf("invalid configuration: %w", err))
	}

	printLaunchPlan(cfg, addr, metadataAvailable)

	if !opts.AutoYes {
		ok, err := confirmLaunch(cfg.Network)
		if err != nil {
			return cleanupOnErr(cfg, nil, fmt.Errorf("failed to prompt for confirmation: %w", err))
		}
		if !ok {
			fmt.Println("Aborted.")
			return cleanupOnErr(cfg, nil, nil)
		}
	}

	tokens := solana.NewTokenClient(runner)
	if cfg.Fees.Tier == config.FeeCustom {
		tokens.SetPriorityFee(cfg.Fees.PriorityFee)
	}

	lctx := launch.NewContext(ctx, cfg, tokens, solana.NewMetadataClient(runner))
	lctx.State.WalletAddress = addr

	if err := runSequence(lctx, cfg, opts.Plain); err != nil {
		return cleanupOnErr(cfg, lctx.State, err)
	}

	reportPath := writeListingArtifacts(cfg, lctx.State)
	printLaunchSuccess(cfg, lctx.State, reportPath)

	return cleanupOnErr(cfg, lctx.State, nil)
}

// loadSession resolves the launch session: an explicit config path, the
// default config file, or the interactive wizard as a last resort.
func loadSession(ctx context.Context, configPath string) (*config.Session, error) {
	if configPath != "" {
		cfg, err := loadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	if path, err := findConfigFile(); err == nil {
		cfg, err := loadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		fmt.Printf("Using configuration from %s\n", path)
		return cfg, nil
	}

	printWelcome()
	result, err := runWizard(ctx)
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}
	return buildSession(result), nil
}

// checkTools verifies required CLIs and reports whether the optional
// metadata tool is present.
func checkTools(cfg *config.Session) (metadataAvailable bool, err error) {
	if cfg.SkipPrerequisites {
		return true, nil
	}

	if results := checkDefaultPrereqs(); results.HasErrors() {
		return false, results.Error()
	}

	results := checkMetadataPrereqs()
	if len(results.Missing) > 0 {
		fmt.Println("Note: metaplex CLI not found; metadata publishing will be skipped.")
		return false, nil
	}
	return true, nil
}

// configureWallet points the solana CLI at the session's cluster,
// keypair, and commitment level.
func configureWallet(ctx context.Context, client *solana.Client, cfg *config.Session) error {
	if err := client.SetURL(ctx, cfg.Network.RPCURL()); err != nil {
		return fmt.Errorf("failed to select cluster: %w", err)
	}
	if cfg.Wallet.Path != "" {
		if err := client.SetKeypair(ctx, cfg.Wallet.Path); err != nil {
			return fmt.Errorf("failed to select keypair: %w", err)
		}
	}
	if err := client.SetCommitment(ctx, cfg.Fees.Tier.Commitment()); err != nil {
		return fmt.Errorf("failed to set commitment level: %w", err)
	}
	return nil
}

// checkBalance compares the wallet balance against the cost estimate.
// On devnet a shortfall can be covered by the faucet; on mainnet it is
// fatal.
func checkBalance(ctx context.Context, client *solana.Client, cfg *config.Session, autoYes bool) error {
	balance, err := client.Balance(ctx)
	if err != nil {
		return fmt.Errorf("failed to read wallet balance: %w", err)
	}

	if config.SufficientBalance(balance) {
		fmt.Printf("Wallet balance: %.4f SOL (estimated cost %.4f SOL)\n", balance, config.TotalEstimatedCost())
		return nil
	}

	if !cfg.Network.HasFaucet() {
		return fmt.Errorf("wallet balance %.4f SOL is below the estimated launch cost of %.4f SOL",
			balance, config.TotalEstimatedCost())
	}

	if !autoYes && !cfg.Airdrop {
		ok, err := confirmAirdrop()
		if err != nil {
			return fmt.Errorf("failed to prompt for airdrop: %w", err)
		}
		if !ok {
			return fmt.Errorf("wallet balance %.4f SOL is below the estimated launch cost of %.4f SOL",
				balance, config.TotalEstimatedCost())
		}
	}

	fmt.Printf("Requesting %d SOL from the devnet faucet...\n", airdropAmount)
	if err := client.Airdrop(ctx, airdropAmount); err != nil {
		return fmt.Errorf("airdrop failed: %w", err)
	}
	return nil
}

// runSequence executes the launch steps, under the TUI when stdout is a
// terminal and plain mode is not forced.
func runSequence(lctx *launch.Context, cfg *config.Session, plain bool) error {
	steps := launch.DefaultSteps()

	if !plain && isInteractive() {
		return runTUI(cfg.Token.Name, cfg.Token.Symbol, string(cfg.Network), steps,
			func(obs launch.Observer) error {
				lctx.Observer = obs
				return launch.RunSteps(lctx, steps)
			})
	}
	return launch.RunSteps(lctx, steps)
}

// writeListingArtifacts writes the listing report for the new mint.
// Failures degrade to a warning; the token is already live.
func writeListingArtifacts(cfg *config.Session, state *launch.State) string {
	links := listing.Links(state.MintAddress, cfg.Listing)
	if len(links) == 0 {
		return ""
	}

	path, err := listing.WriteReport(".", state.MintAddress, cfg.Token, links, time.Now())
	if err != nil {
		state.Warn(fmt.Sprintf("failed to write listing report: %v", err))
		return ""
	}
	return path
}

// cleanupOnErr removes working files and returns runErr, surfacing a
// cleanup failure only when the run itself succeeded.
func cleanupOnErr(cfg *config.Session, state *launch.State, runErr error) error {
	var paths []string
	if state != nil && state.MetadataPath != "" {
		paths = append(paths, state.MetadataPath)
	}
	// A materialized keypair holds secret material and never outlives
	// the run.
	if cfg.Wallet.Source == config.WalletKeypair && cfg.Wallet.Path != "" {
		paths = append(paths, cfg.Wallet.Path)
	}

	cleanupErr := launch.Cleanup(paths...)
	if runErr != nil {
		if cleanupErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: cleanup failed: %v\n", cleanupErr)
		}
		return runErr
	}
	return cleanupErr
}

// printLaunchPlan shows the session summary and cost estimate before
// the final confirmation.
func printLaunchPlan(cfg *config.Session, addr string, metadataAvailable bool) {
	fmt.Println()
	fmt.Println("Launch Plan")
	fmt.Println("-----------")
	fmt.Printf("  Token:       %s (%s)\n", cfg.Token.Name, cfg.Token.Symbol)
	fmt.Printf("  Network:     %s\n", cfg.Network)
	fmt.Printf("  Wallet:      %s\n", addr)
	fmt.Printf("  Supply:      %d total, %d circulating (%.1f%%)\n",
		cfg.Token.TotalSupply, cfg.Token.CirculatingSupply, cfg.Token.CirculatingPercent())
	if locked := cfg.Token.LockedSupply(); locked > 0 {
		fmt.Printf("  Locked:      %d (%.1f%%)\n", locked, cfg.Token.LockedPercent())
	}
	if cfg.Token.Recipient != addr {
		fmt.Printf("  Recipient:   %s\n", cfg.Token.Recipient)
	}
	if !metadataAvailable {
		fmt.Println("  Metadata:    skipped (metaplex CLI not installed)")
	}
	fmt.Println()

	fmt.Println("Estimated Costs")
	fmt.Println("---------------")
	for _, cost := range config.EstimatedCosts() {
		fmt.Printf("  %-28s %.4f SOL\n", cost.Operation, cost.SOL)
	}
	fmt.Printf("  %-28s %.4f SOL\n", "Total", config.TotalEstimatedCost())
	fmt.Println()
}

// printLaunchSuccess shows the final addresses, warnings, and listing
// pointers.
func printLaunchSuccess(cfg *config.Session, state *launch.State, reportPath string) {
	fmt.Println()
	fmt.Println("Token launched!")
	fmt.Println()
	fmt.Printf("  Mint:       %s\n", state.MintAddress)
	fmt.Printf("  Holding:    %s\n", state.HoldingAccount)
	if state.TransferredSupply > 0 {
		fmt.Printf("  Transferred: %d %s to %s\n",
			state.TransferredSupply, cfg.Token.Symbol, cfg.Token.Recipient)
	}
	fmt.Printf("  Explorer:   %s\n", cfg.Network.ExplorerURL(state.MintAddress))
	fmt.Println()

	if len(state.Warnings) > 0 {
		fmt.Println("Warnings")
		fmt.Println("--------")
		for _, w := range state.Warnings {
			fmt.Printf("  - %s\n", w)
		}
		fmt.Println()
	}

	if reportPath != "" {
		fmt.Printf("Listing report written to %s\n", reportPath)
		fmt.Println()
	}
}
