package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits persisted for amounts.
const MoneyScale = 2

// MaxAmount is the largest value a NUMERIC(14, 2) amount or balance column holds.
var MaxAmount = decimal.RequireFromString("999999999999.99")

// ErrInvalidAmount is returned by ParseAmount for unparsable, non-finite, non-positive or oversized input.
var ErrInvalidAmount = errors.New("amount must be a finite number greater than zero and at most 999,999,999,999.99")

// ParseAmount converts raw user input into a positive amount rounded to MoneyScale.
// Example: "12.345" returns 12.35, "0.004" returns ErrInvalidAmount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	amount = amount.Round(MoneyScale)
	if !amount.IsPositive() || amount.GreaterThan(MaxAmount) {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}
