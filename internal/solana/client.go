package solana

import (
	"context"
	"fmt"
	"strings"
)

// Binary names of the external tools.
const (
	SolanaBin   = "solana"
	SPLTokenBin = "spl-token"
	MetaplexBin = "metaplex"
)

// Client wraps the solana CLI for wallet and cluster configuration.
type Client struct {
	runner Runner
}

// NewClient returns a Client using the given runner.
func NewClient(runner Runner) *Client {
	return &Client{runner: runner}
}

// SetURL points the CLI at the given cluster RPC endpoint.
func (c *Client) SetURL(ctx context.Context, url string) error {
	return c.configSet(ctx, "--url", url)
}

// SetKeypair sets the signing keypair file for subsequent commands.
func (c *Client) SetKeypair(ctx context.Context, path string) error {
	return c.configSet(ctx, "--keypair", path)
}

// SetCommitment sets the default commitment level.
func (c *Client) SetCommitment(ctx context.Context, commitment string) error {
	return c.configSet(ctx, "--commitment", commitment)
}

func (c *Client) configSet(ctx context.Context, args ...string) error {
	res, err := c.runner.Run(ctx, SolanaBin, append([]string{"config", "set"}, args...)...)
	if err != nil {
		return err
	}
	return res.Err(SolanaBin + " config set")
}

// Address returns the configured wallet's public address.
func (c *Client) Address(ctx context.Context) (string, error) {
	res, err := c.runner.Run(ctx, SolanaBin, "address")
	if err != nil {
		return "", err
	}
	if err := res.Err(SolanaBin + " address"); err != nil {
		return "", err
	}
	addr := strings.TrimSpace(res.Stdout)
	if addr == "" {
		return "", fmt.Errorf("solana address returned no output")
	}
	return addr, nil
}

// Balance returns the wallet balance in SOL.
func (c *Client) Balance(ctx context.Context) (float64, error) {
	res, err := c.runner.Run(ctx, SolanaBin, "balance")
	if err != nil {
		return 0, err
	}
	if err := res.Err(SolanaBin + " balance"); err != nil {
		return 0, err
	}
	return ParseBalance(res.Stdout)
}

// Airdrop requests sol SOL from the faucet. Only meaningful on networks
// that operate one.
func (c *Client) Airdrop(ctx context.Context, sol uint64) error {
	res, err := c.runner.Run(ctx, SolanaBin, "airdrop", FormatAmount(sol))
	if err != nil {
		return err
	}
	return res.Err(SolanaBin + " airdrop")
}
