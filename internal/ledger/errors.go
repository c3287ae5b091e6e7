package ledger

import "errors"

// Every error aborts the whole invocation with no partial state change. Callers
// retry, if at all, with corrected inputs.
var (
	// Policy violations: deterministic, caller-facing.
	ErrMintingPaused      = errors.New("minting is currently paused")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidShare       = errors.New("invalid share percentage")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidStrategyData = errors.New("invalid strategy data")

	// Balance or pool cannot cover the requested amount.
	ErrInsufficientFunds = errors.New("insufficient funds in treasury")
	ErrNoProfits         = errors.New("no profits available for distribution")

	// Lifecycle.
	ErrNotInitialized     = errors.New("not initialized")
	ErrAlreadyInitialized = errors.New("already initialized")
	ErrDuplicateRecord    = errors.New("record already exists at derived address")
	ErrNotFound           = errors.New("record not found")
)
