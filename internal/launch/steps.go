package launch

import (
	"fmt"
)

// Step keys, stable identifiers for observers and the TUI.
const (
	KeyCreateMint      = "create-mint"
	KeyHoldingAccount  = "holding-account"
	KeyMintSupply      = "mint-supply"
	KeyLockIssuance    = "lock-issuance"
	KeyPublishMetadata = "publish-metadata"
	KeyTransferSupply  = "transfer-supply"
)

// DefaultSteps returns the launch sequence in its fixed order.
func DefaultSteps() []Step {
	return []Step{
		createMintStep{},
		holdingAccountStep{},
		mintSupplyStep{},
		lockIssuanceStep{},
		publishMetadataStep{},
		transferSupplyStep{},
	}
}

// createMintStep provisions the mint itself. Everything after depends on
// the address it produces.
type createMintStep struct{}

func (createMintStep) Name() string   { return "Create token" }
func (createMintStep) Key() string    { return KeyCreateMint }
func (createMintStep) Critical() bool { return true }

func (createMintStep) Run(ctx *Context) error {
	mint, err := ctx.Tokens.CreateToken(ctx, ctx.Config.Token.Decimals)
	if err != nil {
		return err
	}
	ctx.State.MintAddress = mint
	ctx.Observer.Printf("Token address: %s", mint)
	return nil
}

// holdingAccountStep creates the creator's account for the new mint.
type holdingAccountStep struct{}

func (holdingAccountStep) Name() string   { return "Create holding account" }
func (holdingAccountStep) Key() string    { return KeyHoldingAccount }
func (holdingAccountStep) Critical() bool { return true }

func (holdingAccountStep) Run(ctx *Context) error {
	account, err := ctx.Tokens.CreateAccount(ctx, ctx.State.MintAddress)
	if err != nil {
		return err
	}
	ctx.State.HoldingAccount = account
	return nil
}

// mintSupplyStep issues the full supply into the holding account.
type mintSupplyStep struct{}

func (mintSupplyStep) Name() string   { return "Mint supply" }
func (mintSupplyStep) Key() string    { return KeyMintSupply }
func (mintSupplyStep) Critical() bool { return true }

func (mintSupplyStep) Run(ctx *Context) error {
	return ctx.Tokens.MintTo(ctx, ctx.State.MintAddress, ctx.Config.Token.TotalSupply)
}

// lockIssuanceStep removes the mint authority so no further units can
// ever be created. Best-effort: a failure leaves the supply mintable but
// does not abort the launch.
type lockIssuanceStep struct{}

func (lockIssuanceStep) Name() string   { return "Lock issuance" }
func (lockIssuanceStep) Key() string    { return KeyLockIssuance }
func (lockIssuanceStep) Critical() bool { return false }

func (lockIssuanceStep) Run(ctx *Context) error {
	return ctx.Tokens.DisableMinting(ctx, ctx.State.MintAddress)
}

// publishMetadataStep writes the metadata file and publishes it on
// chain. The token details come from the session on the context, never
// from ambient state.
type publishMetadataStep struct{}

func (publishMetadataStep) Name() string   { return "Publish metadata" }
func (publishMetadataStep) Key() string    { return KeyPublishMetadata }
func (publishMetadataStep) Critical() bool { return false }

func (publishMetadataStep) Run(ctx *Context) error {
	path, err := WriteMetadataFile(ctx.WorkDir, ctx.Config.Token)
	if err != nil {
		return err
	}
	ctx.State.MetadataPath = path

	return ctx.Metadata.CreateMetadata(ctx, ctx.State.MintAddress, path, string(ctx.Config.Network))
}

// transferSupplyStep sends the circulating portion to the recipient. The
// locked remainder stays in the holding account.
type transferSupplyStep struct{}

func (transferSupplyStep) Name() string   { return "Transfer supply" }
func (transferSupplyStep) Key() string    { return KeyTransferSupply }
func (transferSupplyStep) Critical() bool { return false }

func (transferSupplyStep) Run(ctx *Context) error {
	recipient := ctx.Config.Token.Recipient
	if recipient == ctx.State.WalletAddress {
		return fmt.Errorf("%w: recipient is the creator's own wallet", ErrSkipped)
	}

	amount := ctx.Config.Token.CirculatingSupply
	if err := ctx.Tokens.Transfer(ctx, ctx.State.MintAddress, recipient, amount); err != nil {
		return err
	}
	ctx.State.TransferredSupply = amount
	return nil
}
