package solana

import (
	"context"
	"fmt"
	"strconv"
)

// Marker substrings scanned for in spl-token stdout. The CLI prints
// human-oriented text, so these are the contract.
const (
	tokenMarker   = "Creating token"
	accountMarker = "Creating account"
)

// TokenClient wraps the spl-token CLI.
type TokenClient struct {
	runner Runner

	// priorityFee, when non-zero, is passed to every mutating command
	// as a compute unit price in micro-lamports.
	priorityFee uint64
}

// NewTokenClient returns a TokenClient using the given runner.
func NewTokenClient(runner Runner) *TokenClient {
	return &TokenClient{runner: runner}
}

// SetPriorityFee sets the compute unit price attached to every
// subsequent command, in micro-lamports. Zero disables it.
func (t *TokenClient) SetPriorityFee(microLamports uint64) {
	t.priorityFee = microLamports
}

func (t *TokenClient) args(base ...string) []string {
	if t.priorityFee == 0 {
		return base
	}
	return append(base, "--with-compute-unit-price", strconv.FormatUint(t.priorityFee, 10))
}

// CreateToken creates a new mint with the given decimal places and
// returns its address, recovered from the "Creating token" output line.
// A zero exit status without that line is an error.
func (t *TokenClient) CreateToken(ctx context.Context, decimals int) (string, error) {
	res, err := t.runner.Run(ctx, SPLTokenBin, t.args("create-token", "--decimals", strconv.Itoa(decimals))...)
	if err != nil {
		return "", err
	}
	if err := res.Err(SPLTokenBin + " create-token"); err != nil {
		return "", err
	}
	mint, ok := ExtractKeyword(res.Stdout, tokenMarker)
	if !ok {
		return "", fmt.Errorf("spl-token create-token succeeded but output contained no %q line", tokenMarker)
	}
	return mint, nil
}

// CreateAccount creates the holding account for mint and returns its
// address.
func (t *TokenClient) CreateAccount(ctx context.Context, mint string) (string, error) {
	res, err := t.runner.Run(ctx, SPLTokenBin, t.args("create-account", mint)...)
	if err != nil {
		return "", err
	}
	if err := res.Err(SPLTokenBin + " create-account"); err != nil {
		return "", err
	}
	account, ok := ExtractKeyword(res.Stdout, accountMarker)
	if !ok {
		return "", fmt.Errorf("spl-token create-account succeeded but output contained no %q line", accountMarker)
	}
	return account, nil
}

// MintTo mints amount whole units of mint into the creator's holding
// account.
func (t *TokenClient) MintTo(ctx context.Context, mint string, amount uint64) error {
	res, err := t.runner.Run(ctx, SPLTokenBin, t.args("mint", mint, FormatAmount(amount))...)
	if err != nil {
		return err
	}
	return res.Err(SPLTokenBin + " mint")
}

// DisableMinting permanently removes the mint authority. Irreversible.
func (t *TokenClient) DisableMinting(ctx context.Context, mint string) error {
	res, err := t.runner.Run(ctx, SPLTokenBin, t.args("authorize", mint, "mint", "--disable")...)
	if err != nil {
		return err
	}
	return res.Err(SPLTokenBin + " authorize")
}

// Transfer sends amount whole units of mint to recipient, funding the
// recipient's token account if it does not exist yet.
func (t *TokenClient) Transfer(ctx context.Context, mint, recipient string, amount uint64) error {
	res, err := t.runner.Run(ctx, SPLTokenBin, t.args("transfer", mint, FormatAmount(amount), recipient,
		"--fund-recipient", "--allow-unfunded-recipient")...)
	if err != nil {
		return err
	}
	return res.Err(SPLTokenBin + " transfer")
}
