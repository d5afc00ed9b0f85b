package kernel

import (
	"fmt"
	"math"

	"foodcourt/internal/pkg/errs"
)

// Money is a value object that represents a monetary amount in a single
// implicit currency. Amounts are held as integer cents so that arithmetic
// over line items, fees, and discounts never accumulates floating-point error.
//
// Rounding to two decimals happens only at the boundaries: when converting
// from a float (MoneyFromFloat) and when taking a percentage (Percent).
// All other operations are exact integer arithmetic.
//
// The zero value is a valid amount of zero. Money is immutable and safe
// for concurrent use.
//
// Example usage:
//
//	price := kernel.NewMoney(1250)            // $12.50
//	fee := kernel.MoneyFromFloat(5.99)        // $5.99
//	total := price.Add(fee)                   // $18.49
//	discount := total.Percent(10)             // $1.85 (rounded half up)
type Money struct {
	cents int64
}

// NewMoney creates a Money from an amount of cents.
func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// MoneyFromFloat creates a Money from a float amount of whole currency units,
// rounding half away from zero to the nearest cent. This is the only place a
// float enters monetary math; everything downstream stays in integer cents.
func MoneyFromFloat(amount float64) Money {
	return Money{cents: int64(math.Round(amount * 100))}
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in whole currency units.
// Intended for display and serialization boundaries only.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns the difference of two amounts. The result may be negative;
// callers that must not go below zero clamp with FloorZero.
func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// MulInt returns the amount multiplied by an integer factor.
func (m Money) MulInt(factor int) Money {
	return Money{cents: m.cents * int64(factor)}
}

// Percent returns the given percentage of the amount, rounded half away
// from zero to the nearest cent.
func (m Money) Percent(p float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * p / 100))}
}

// Min returns the smaller of two amounts.
func (m Money) Min(other Money) Money {
	if other.cents < m.cents {
		return other
	}
	return m
}

// FloorZero returns the amount, or zero if the amount is negative.
func (m Money) FloorZero() Money {
	if m.cents < 0 {
		return Money{}
	}
	return m
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.cents < 0
}

// LessThan reports whether the amount is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimals, e.g. "35.99" or "-2.50".
func (m Money) String() string {
	sign := ""
	cents := m.cents
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ValidateNonNegative returns an error if the amount is below zero.
// Used by constructors of objects whose amounts must not be negative,
// such as item prices and minimum order values.
func (m Money) ValidateNonNegative(paramName string) error {
	if m.cents < 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is negative", m))
	}
	return nil
}
