package handlers

import (
	"errors"
	"net/http"

	"strategymint/internal/ledger"
	"strategymint/pkg/utils"
)

// statusFor maps a ledger error onto the HTTP status the API reports.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrNotInitialized),
		errors.Is(err, ledger.ErrAlreadyInitialized),
		errors.Is(err, ledger.ErrMintingPaused),
		errors.Is(err, ledger.ErrDuplicateRecord):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidShare),
		errors.Is(err, ledger.ErrInvalidStrategyData),
		errors.Is(err, ledger.ErrNoProfits),
		errors.Is(err, ledger.ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, utils.ErrArithmeticOverflow),
		errors.Is(err, utils.ErrArithmeticUnderflow):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
