// Package money holds the bounds every stored amount must respect. Amount
// columns are decimal(15,2).
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

const Scale = 2

// Limit is the exclusive upper bound of a decimal(15,2) column.
var Limit = decimal.New(1, 13)

var (
	ErrScale    = errors.New("amount must have at most 2 decimal places")
	ErrTooLarge = errors.New("amount must be less than 10000000000000")
)

// HasScale reports whether d carries no digits beyond cents.
func HasScale(d decimal.Decimal) bool { return d.Equal(d.Round(Scale)) }

func InRange(d decimal.Decimal) bool { return d.Abs().LessThan(Limit) }

// Check returns ErrScale or ErrTooLarge when d cannot be stored exactly.
func Check(d decimal.Decimal) error {
	if !HasScale(d) {
		return ErrScale
	}
	if !InRange(d) {
		return ErrTooLarge
	}
	return nil
}
