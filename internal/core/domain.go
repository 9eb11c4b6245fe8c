package core

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

type (
	// Category is a spending category users file records under.
	Category struct {
		Name string
	}

	// Spending is a single spending record. ID and RecordedAt stay zero
	// until the record has been persisted.
	Spending struct {
		ID         int64
		Amount     decimal.Decimal
		Category   string
		RecordedAt time.Time
	}
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrEmptyCategory       = errors.New("empty category")
	ErrEmptyCategoryName   = errors.New("empty category name")
	ErrInvalidCategoryName = errors.New("invalid category name")
)

// Validate checks that the name is non-empty and strictly alphanumeric:
// letters and digits only, no spaces or punctuation. Any Unicode letter or
// digit counts.
func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategoryName
	}
	if !isAlphanumeric(c.Name) {
		return ErrInvalidCategoryName
	}
	return nil
}

func (s Spending) Validate() error {
	if strings.TrimSpace(s.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return len(s) > 0
}
