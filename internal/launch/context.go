package launch

import (
	"context"

	"github.com/mintforge/mintforge/internal/config"
)

// TokenTool is the subset of the spl-token CLI the sequence needs.
type TokenTool interface {
	CreateToken(ctx context.Context, decimals int) (string, error)
	CreateAccount(ctx context.Context, mint string) (string, error)
	MintTo(ctx context.Context, mint string, amount uint64) error
	DisableMinting(ctx context.Context, mint string) error
	Transfer(ctx context.Context, mint, recipient string, amount uint64) error
}

// MetadataTool publishes token metadata on chain.
type MetadataTool interface {
	CreateMetadata(ctx context.Context, mint, file, network string) error
}

// State holds the values produced as the sequence advances. Each field
// is written once by the step that produces it and read by later steps;
// nothing outside the sequence mutates it.
type State struct {
	// WalletAddress is the creator's address, established before the
	// sequence starts.
	WalletAddress string

	// MintAddress is produced by the create-mint step. Every later step
	// requires it.
	MintAddress string

	// HoldingAccount receives the minted supply.
	HoldingAccount string

	// MetadataPath is the metadata file written to the working
	// directory, kept for cleanup.
	MetadataPath string

	// TransferredSupply is the amount actually sent to the recipient.
	TransferredSupply uint64

	// Warnings collects best-effort step failures and skips.
	Warnings []string
}

// Warn appends a warning message to the run state.
func (s *State) Warn(msg string) {
	s.Warnings = append(s.Warnings, msg)
}

// Context carries everything a step needs: the confirmed session, the
// shared run state, the tool clients and the observer. It embeds the
// cancellation context handed to the run.
type Context struct {
	context.Context

	Config   *config.Session
	State    *State
	Tokens   TokenTool
	Metadata MetadataTool
	Observer Observer

	// WorkDir is where the metadata file is written. Empty means the
	// current directory.
	WorkDir string
}

// NewContext creates a run context with a console observer.
func NewContext(ctx context.Context, cfg *config.Session, tokens TokenTool, metadata MetadataTool) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    &State{},
		Tokens:   tokens,
		Metadata: metadata,
		Observer: NewConsoleObserver(),
	}
}
