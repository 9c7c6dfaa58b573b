// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/mintforge/mintforge/internal/config"
	"github.com/mintforge/mintforge/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// confirmOverwrite asks before clobbering an existing config file.
	confirmOverwrite = func(path string) (bool, error) {
		var ok bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("%s already exists. Overwrite?", path)).
			Value(&ok).
			Run()
		return ok, err
	}

	// runWizard runs the launch questionnaire.
	runWizard = wizard.Run

	// buildSession maps wizard answers to a session.
	buildSession = wizard.BuildSession

	// writeSession writes the session to a file.
	writeSession = wizard.WriteSession
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		ok, err := confirmOverwrite(outputPath)
		if err != nil {
			return fmt.Errorf("failed to prompt for confirmation: %w", err)
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	// Validation happens per field inside the wizard. The recipient may
	// still be empty here; create resolves it to the wallet address.
	session := buildSession(result)

	if err := writeSession(session, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, session)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("mintforge - Solana Token Launchpad")
	fmt.Println("==================================")
	fmt.Println()
	fmt.Println("This wizard will help you configure a fungible token launch.")
	fmt.Println("Your answers are saved to a YAML file you can review, edit,")
	fmt.Println("and replay with 'mintforge create'.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, s *config.Session) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Launch Summary")
	fmt.Println("--------------")
	fmt.Printf("  Token:       %s (%s)\n", s.Token.Name, s.Token.Symbol)
	fmt.Printf("  Network:     %s\n", s.Network)
	fmt.Printf("  Decimals:    %d\n", s.Token.Decimals)
	fmt.Printf("  Supply:      %d total, %d circulating (%.1f%%)\n",
		s.Token.TotalSupply, s.Token.CirculatingSupply, s.Token.CirculatingPercent())
	if locked := s.Token.LockedSupply(); locked > 0 {
		fmt.Printf("  Locked:      %d (%.1f%%)\n", locked, s.Token.LockedPercent())
	}
	fmt.Printf("  Fee tier:    %s\n", s.Fees.Tier)
	fmt.Printf("  Listing:     %s\n", s.Listing)
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Launch your token:")
	fmt.Printf("     mintforge create -c %s\n", outputPath)
	fmt.Println()
	if s.Network == config.NetworkMainnet {
		fmt.Println("  Launching on mainnet costs real SOL. Run a devnet rehearsal")
		fmt.Println("  first if you have not already.")
		fmt.Println()
	}
}
