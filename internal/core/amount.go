// Package core provides the domain model for spending entry: categories,
// spending records, and amount parsing.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a user-entered amount string into an exact decimal.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. The
// value is kept exact and its sign and magnitude are not restricted; only
// empty or malformed input is rejected.
//
// Examples:
//
//	ParseAmount("42.5") -> 42.5, nil
//	ParseAmount("42,5") -> 42.5, nil
//	ParseAmount("abc")  -> 0, ErrInvalidAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}
