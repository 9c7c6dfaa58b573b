// Package main is the entry point for the mintforge CLI.
//
// mintforge is a command-line launchpad for fungible SPL tokens on
// Solana. It drives the official solana, spl-token and metaplex CLIs
// through a guided wizard and a fixed launch sequence: create the mint,
// create the holding account, mint the supply, lock issuance, publish
// metadata and hand off the circulating supply.
//
// Commands: init, create, doctor, version, completion.
//
// For detailed usage information, run:
//
//	mintforge --help
package main

import (
	"fmt"
	"os"

	"github.com/mintforge/mintforge/cmd/mintforge/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
