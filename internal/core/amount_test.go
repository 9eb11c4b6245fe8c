package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "integer", input: "42", want: "42"},
		{name: "decimal dot", input: "42.5", want: "42.5"},
		{name: "decimal comma", input: "42,5", want: "42.5"},
		{name: "two decimals", input: "12.34", want: "12.34"},
		{name: "leading and trailing spaces", input: " 12.34 ", want: "12.34"},
		{name: "zero", input: "0", want: "0"},
		{name: "negative", input: "-3.25", want: "-3.25"},
		{name: "fraction only", input: ".5", want: "0.5"},
		{name: "trailing zero", input: "10.50", want: "10.5"},
		{name: "empty", input: "", wantErr: true},
		{name: "spaces only", input: "   ", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "mixed", input: "12a", wantErr: true},
		{name: "two separators", input: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) = %s, want error", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			}
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Fatalf("ParseAmount(%q) = %s, want %s", tt.input, got, want)
			}
		})
	}
}

func TestParseAmountKeepsExactValue(t *testing.T) {
	got, err := ParseAmount("0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "0.1" {
		t.Fatalf("expected exact 0.1, got %s", got.String())
	}
}
