package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"strategymint/internal/ledger"
	"strategymint/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ledger.ErrNotFound, http.StatusNotFound},
		{ledger.ErrNotInitialized, http.StatusConflict},
		{ledger.ErrAlreadyInitialized, http.StatusConflict},
		{ledger.ErrMintingPaused, http.StatusConflict},
		{ledger.ErrDuplicateRecord, http.StatusConflict},
		{ledger.ErrUnauthorized, http.StatusForbidden},
		{ledger.ErrInvalidAmount, http.StatusBadRequest},
		{ledger.ErrInvalidShare, http.StatusBadRequest},
		{ledger.ErrInvalidStrategyData, http.StatusBadRequest},
		{ledger.ErrNoProfits, http.StatusBadRequest},
		{ledger.ErrInsufficientFunds, http.StatusBadRequest},
		{utils.ErrArithmeticOverflow, http.StatusInternalServerError},
		{utils.ErrArithmeticUnderflow, http.StatusInternalServerError},
		{errors.New("database down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), "error: %v", tc.err)
	}

	// Wrapped errors map the same way
	wrapped := fmt.Errorf("mint strategy: %w", ledger.ErrMintingPaused)
	assert.Equal(t, http.StatusConflict, statusFor(wrapped))
}
