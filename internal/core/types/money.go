// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors. Internal amounts
// keep full precision; rounding to 2 decimals happens at display time only.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewMoneyFromInt creates a Money value from whole currency units.
func NewMoneyFromInt(n int64) Money {
	return decimal.NewFromInt(n)
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// Round2 rounds to 2 decimal places (half up). Display use only.
func Round2(m Money) Money {
	return m.Round(2)
}

// FormatEUR renders a monetary value as €X.XX with exactly 2 decimals.
func FormatEUR(m Money) string {
	return "€" + m.StringFixed(2)
}

// FormatQuantity renders a quantity without trailing zeros (2 → "2", 2.50 → "2.5").
func FormatQuantity(m Money) string {
	return m.String()
}

// Percent applies a percentage rate to an amount: amount * rate / 100.
func Percent(amount, rate Money) Money {
	return amount.Mul(rate).Div(decimal.NewFromInt(100))
}
