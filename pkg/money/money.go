// Package money provides a fixed-point monetary value object.
//
// Invariants:
//   - Amount is always stored as an int64 count of the smallest unit (cents).
//   - Arithmetic never goes through binary floating point.
//   - Decimal strings at the API boundary carry at most two fractional digits.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Scale is the number of decimal places carried by a Money value.
const Scale = 2

var (
	// ErrInvalidAmount is returned when a decimal string cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrTooManyDecimals is returned when an amount carries sub-cent precision.
	ErrTooManyDecimals = errors.New("amount has more than two decimal places")

	// ErrOverflow is returned when an operation exceeds the int64 range.
	ErrOverflow = errors.New("amount exceeds maximum representable value")
)

// Money is a monetary value in minor units (cents).
type Money struct {
	cents int64
}

// Zero is the zero monetary value.
var Zero = Money{}

// FromCents builds a Money from a count of minor units.
func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// Parse converts a decimal string such as "100.00" into a Money.
// It rejects malformed input and sub-cent precision.
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, ErrInvalidAmount
	}
	shifted := d.Shift(Scale)
	if !shifted.IsInteger() {
		return Zero, ErrTooManyDecimals
	}
	if !shifted.BigInt().IsInt64() {
		return Zero, ErrOverflow
	}
	return Money{cents: shifted.IntPart()}, nil
}

// MustParse is Parse for test fixtures and constants; it panics on error.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Cents returns the value in minor units.
func (m Money) Cents() int64 { return m.cents }

// IsPositive reports whether the value is strictly greater than zero.
func (m Money) IsPositive() bool { return m.cents > 0 }

// IsNegative reports whether the value is strictly less than zero.
func (m Money) IsNegative() bool { return m.cents < 0 }

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool { return m.cents < other.cents }

// Add returns m + other, failing on int64 overflow.
func (m Money) Add(other Money) (Money, error) {
	sum := m.cents + other.cents
	if (other.cents > 0 && sum < m.cents) || (other.cents < 0 && sum > m.cents) {
		return Zero, ErrOverflow
	}
	return Money{cents: sum}, nil
}

// Sub returns m - other, failing on int64 overflow.
func (m Money) Sub(other Money) (Money, error) {
	diff := m.cents - other.cents
	if (other.cents < 0 && diff < m.cents) || (other.cents > 0 && diff > m.cents) {
		return Zero, ErrOverflow
	}
	return Money{cents: diff}, nil
}

// String renders the value with exactly two decimal places, e.g. "100.00".
func (m Money) String() string {
	return decimal.New(m.cents, -Scale).StringFixed(Scale)
}
