package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedAdd(t *testing.T) {
	t.Run("Normal Addition", func(t *testing.T) {
		sum, err := CheckedAdd(100, 250)
		require.NoError(t, err)
		assert.Equal(t, uint64(350), sum)
	})

	t.Run("Overflow Aborts", func(t *testing.T) {
		_, err := CheckedAdd(math.MaxUint64, 1)
		assert.ErrorIs(t, err, ErrArithmeticOverflow)

		_, err = CheckedAdd(math.MaxUint64-1, 2)
		assert.ErrorIs(t, err, ErrArithmeticOverflow)
	})

	t.Run("Max Boundary", func(t *testing.T) {
		sum, err := CheckedAdd(math.MaxUint64-1, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxUint64), sum)
	})
}

func TestCheckedSub(t *testing.T) {
	t.Run("Normal Subtraction", func(t *testing.T) {
		diff, err := CheckedSub(1000, 250)
		require.NoError(t, err)
		assert.Equal(t, uint64(750), diff)
	})

	t.Run("Underflow Aborts", func(t *testing.T) {
		_, err := CheckedSub(0, 1)
		assert.ErrorIs(t, err, ErrArithmeticUnderflow)

		_, err = CheckedSub(100, 101)
		assert.ErrorIs(t, err, ErrArithmeticUnderflow)
	})

	t.Run("Zero Result", func(t *testing.T) {
		diff, err := CheckedSub(42, 42)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), diff)
	})
}

func TestShareOf(t *testing.T) {
	t.Run("Quarter Share", func(t *testing.T) {
		share, err := ShareOf(1000, 2500)
		require.NoError(t, err)
		assert.Equal(t, uint64(250), share)
	})

	t.Run("Full Share", func(t *testing.T) {
		share, err := ShareOf(123456789, 10000)
		require.NoError(t, err)
		assert.Equal(t, uint64(123456789), share)
	})

	t.Run("Floor Rounding", func(t *testing.T) {
		// 999 * 1 / 10000 = 0.0999 -> 0
		share, err := ShareOf(999, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), share)

		// 15000 * 3333 / 10000 = 4999.5 -> 4999
		share, err = ShareOf(15000, 3333)
		require.NoError(t, err)
		assert.Equal(t, uint64(4999), share)
	})

	t.Run("Widened Intermediate", func(t *testing.T) {
		// amount * bps overflows 64 bits; the 128-bit intermediate must not.
		amount := uint64(10_000_000_000_000_000_000)
		share, err := ShareOf(amount, 9999)
		require.NoError(t, err)
		assert.Equal(t, amount/10000*9999, share)
	})

	t.Run("Share Above Denominator Rejected", func(t *testing.T) {
		_, err := ShareOf(1000, 10001)
		assert.ErrorIs(t, err, ErrArithmeticOverflow)
	})
}
