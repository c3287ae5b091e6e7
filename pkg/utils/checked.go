package utils

import (
	"errors"
	"math/bits"
)

// Basis points denominator for proportional share computation.
const BpsDenominator = 10000

var (
	ErrArithmeticOverflow  = errors.New("arithmetic overflow")
	ErrArithmeticUnderflow = errors.New("arithmetic underflow")
)

// CheckedAdd returns a + b, failing instead of wrapping.
func CheckedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrArithmeticOverflow
	}
	return sum, nil
}

// CheckedSub returns a - b, failing instead of wrapping.
func CheckedSub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, ErrArithmeticUnderflow
	}
	return diff, nil
}

// ShareOf returns floor(amount * shareBps / 10000) using a 128-bit intermediate so
// the multiplication cannot overflow. The quotient always fits in 64 bits when
// shareBps <= 10000.
func ShareOf(amount uint64, shareBps uint16) (uint64, error) {
	if shareBps > BpsDenominator {
		return 0, ErrArithmeticOverflow
	}
	hi, lo := bits.Mul64(amount, uint64(shareBps))
	quo, _ := bits.Div64(hi, lo, BpsDenominator)
	return quo, nil
}
