package launch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintforge/mintforge/internal/config"
)

const (
	testMint      = "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"
	testAccount   = "9aE476sH92Vz7DMPyq5WLPkrKWivxeuTKEFKd2sZZcde"
	testWallet    = "4Nd1mYvhYtFXhLbfWgWKVB2gqNcwHUK6bdTMPXjttW5X"
	testRecipient = "2q7pyhPwAwZ3QMfZrnAbDhnh9mDUqycszcpf86VgQxhF"
)

// fakeTokens implements TokenTool, recording calls and failing on demand.
type fakeTokens struct {
	calls []string

	createErr   error
	accountErr  error
	mintErr     error
	disableErr  error
	transferErr error

	// emptyMint simulates exit 0 with no marker line: the client layer
	// surfaces that as an error before the sequencer ever sees a mint.
}

func (f *fakeTokens) CreateToken(_ context.Context, decimals int) (string, error) {
	f.calls = append(f.calls, fmt.Sprintf("create-token %d", decimals))
	if f.createErr != nil {
		return "", f.createErr
	}
	return testMint, nil
}

func (f *fakeTokens) CreateAccount(_ context.Context, mint string) (string, error) {
	f.calls = append(f.calls, "create-account "+mint)
	if f.accountErr != nil {
		return "", f.accountErr
	}
	return testAccount, nil
}

func (f *fakeTokens) MintTo(_ context.Context, mint string, amount uint64) error {
	f.calls = append(f.calls, fmt.Sprintf("mint %s %d", mint, amount))
	return f.mintErr
}

func (f *fakeTokens) DisableMinting(_ context.Context, mint string) error {
	f.calls = append(f.calls, "disable "+mint)
	return f.disableErr
}

func (f *fakeTokens) Transfer(_ context.Context, mint, recipient string, amount uint64) error {
	f.calls = append(f.calls, fmt.Sprintf("transfer %s %s %d", mint, recipient, amount))
	return f.transferErr
}

// fakeMetadata implements MetadataTool.
type fakeMetadata struct {
	calls []string
	err   error
}

func (f *fakeMetadata) CreateMetadata(_ context.Context, mint, file, network string) error {
	f.calls = append(f.calls, fmt.Sprintf("metadata %s %s %s", mint, file, network))
	return f.err
}

// recordingObserver captures events for assertions.
type recordingObserver struct {
	events []Event
}

func (r *recordingObserver) Printf(string, ...interface{}) {}
func (r *recordingObserver) Event(e Event)                 { r.events = append(r.events, e) }

func (r *recordingObserver) byType(t EventType) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func testSession() *config.Session {
	return &config.Session{
		Network: config.NetworkDevnet,
		Wallet:  config.WalletConfig{Source: config.WalletDefault},
		Fees:    config.FeeConfig{Tier: config.FeeBalanced},
		Token: config.TokenConfig{
			Name:              "Example Coin",
			Symbol:            "EXC",
			Decimals:          9,
			TotalSupply:       1_000_000,
			CirculatingSupply: 800_000,
			Recipient:         testRecipient,
		},
		Listing: config.ListingAll,
	}
}

func testContext(t *testing.T, tokens *fakeTokens, metadata *fakeMetadata) (*Context, *recordingObserver) {
	t.Helper()
	obs := &recordingObserver{}
	ctx := NewContext(context.Background(), testSession(), tokens, metadata)
	ctx.Observer = obs
	ctx.WorkDir = t.TempDir()
	ctx.State.WalletAddress = testWallet
	return ctx, obs
}

func TestRunStepsFullSequence(t *testing.T) {
	tokens := &fakeTokens{}
	metadata := &fakeMetadata{}
	ctx, obs := testContext(t, tokens, metadata)

	err := RunSteps(ctx, DefaultSteps())
	require.NoError(t, err)

	assert.Equal(t, testMint, ctx.State.MintAddress)
	assert.Equal(t, testAccount, ctx.State.HoldingAccount)
	assert.Equal(t, uint64(800_000), ctx.State.TransferredSupply)
	assert.NotEmpty(t, ctx.State.MetadataPath)
	assert.Empty(t, ctx.State.Warnings)

	wantCalls := []string{
		"create-token 9",
		"create-account " + testMint,
		"mint " + testMint + " 1000000",
		"disable " + testMint,
		"transfer " + testMint + " " + testRecipient + " 800000",
	}
	assert.Equal(t, wantCalls, tokens.calls)
	require.Len(t, metadata.calls, 1)
	assert.Contains(t, metadata.calls[0], testMint)
	assert.Contains(t, metadata.calls[0], "devnet")

	assert.Len(t, obs.byType(EventStepCompleted), 6)
}

func TestRunStepsHaltsOnCreateMintFailure(t *testing.T) {
	tokens := &fakeTokens{createErr: errors.New("insufficient funds")}
	metadata := &fakeMetadata{}
	ctx, obs := testContext(t, tokens, metadata)

	err := RunSteps(ctx, DefaultSteps())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Create token step failed")

	// Nothing after the first step may run.
	assert.Equal(t, []string{"create-token 9"}, tokens.calls)
	assert.Empty(t, metadata.calls)
	assert.Empty(t, ctx.State.MintAddress)
	assert.Len(t, obs.byType(EventStepFailed), 1)
}

func TestRunStepsHaltsOnMintSupplyFailure(t *testing.T) {
	tokens := &fakeTokens{mintErr: errors.New("blockhash expired")}
	metadata := &fakeMetadata{}
	ctx, _ := testContext(t, tokens, metadata)

	err := RunSteps(ctx, DefaultSteps())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mint supply step failed")

	// Lockout, metadata and transfer never run.
	assert.NotContains(t, tokens.calls, "disable "+testMint)
	assert.Empty(t, metadata.calls)
}

func TestRunStepsBestEffortLockout(t *testing.T) {
	tokens := &fakeTokens{disableErr: errors.New("authority mismatch")}
	metadata := &fakeMetadata{}
	ctx, obs := testContext(t, tokens, metadata)

	err := RunSteps(ctx, DefaultSteps())
	require.NoError(t, err, "best-effort failure must not abort the run")

	// Metadata and transfer still ran.
	require.Len(t, metadata.calls, 1)
	assert.Contains(t, tokens.calls, "transfer "+testMint+" "+testRecipient+" 800000")

	require.Len(t, ctx.State.Warnings, 1)
	assert.Contains(t, ctx.State.Warnings[0], "authority mismatch")
	assert.Len(t, obs.byType(EventWarning), 1)
}

func TestRunStepsBestEffortMetadata(t *testing.T) {
	tokens := &fakeTokens{}
	metadata := &fakeMetadata{err: errors.New("upload rejected")}
	ctx, _ := testContext(t, tokens, metadata)

	err := RunSteps(ctx, DefaultSteps())
	require.NoError(t, err)

	assert.Contains(t, tokens.calls, "transfer "+testMint+" "+testRecipient+" 800000")
	require.Len(t, ctx.State.Warnings, 1)
	assert.Contains(t, ctx.State.Warnings[0], "upload rejected")
}

func TestRunStepsSkipsSelfTransfer(t *testing.T) {
	tokens := &fakeTokens{}
	metadata := &fakeMetadata{}
	ctx, obs := testContext(t, tokens, metadata)
	ctx.Config.Token.Recipient = testWallet

	err := RunSteps(ctx, DefaultSteps())
	require.NoError(t, err)

	for _, call := range tokens.calls {
		assert.NotContains(t, call, "transfer")
	}
	assert.Zero(t, ctx.State.TransferredSupply)
	assert.Len(t, obs.byType(EventStepSkipped), 1)
}

func TestRunStepsTransferFailureIsBestEffort(t *testing.T) {
	tokens := &fakeTokens{transferErr: errors.New("recipient rejected")}
	metadata := &fakeMetadata{}
	ctx, _ := testContext(t, tokens, metadata)

	err := RunSteps(ctx, DefaultSteps())
	require.NoError(t, err)
	assert.Zero(t, ctx.State.TransferredSupply)
	require.Len(t, ctx.State.Warnings, 1)
	assert.Contains(t, ctx.State.Warnings[0], "recipient rejected")
}
