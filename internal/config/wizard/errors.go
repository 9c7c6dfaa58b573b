package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errNameRequired     = errors.New("token name is required")
	errNameTooLong      = errors.New("token name must be at most 32 characters")
	errSymbolInvalid    = errors.New("symbol must be 1-10 uppercase letters or digits")
	errKeypairNotFound  = errors.New("that file doesn't exist, check the path and try again")
	errRecipientInvalid = errors.New("enter a base58 wallet address, or leave empty for your own wallet")
)
