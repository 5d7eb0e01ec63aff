package services

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect float64
	}{
		{"plain integer", "100", 100},
		{"plain decimal", "1234.56", 1234.56},
		{"empty string", "", 0},
		{"whitespace only", "   ", 0},
		{"currency glyph suffix", "250.00 ₺", 250},
		{"currency glyph prefix", "₺ 99.90", 99.9},
		{"comma decimal", "12,5", 12.5},
		{"turkish grouping", "1.234,56", 1234.56},
		{"grouped with glyph", "1.234.567,89 ₺", 1234567.89},
		{"zero", "0.00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if err != nil {
				t.Fatalf("ParseAmount(%q) error = %v", tt.input, err)
			}
			if got != tt.expect {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestParseAmount_FormatErrors(t *testing.T) {
	inputs := []string{"abc", "12abc", "1..2", "--5", "-100", "12,34,56"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseAmount(input)
			if err == nil {
				t.Fatalf("ParseAmount(%q) expected error", input)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Errorf("ParseAmount(%q) error = %T, want *FormatError", input, err)
			}
			if fe.Input != input {
				t.Errorf("FormatError.Input = %q, want %q", fe.Input, input)
			}
		})
	}
}

func TestParseAmount_RoundTripsFormatTRY(t *testing.T) {
	for _, v := range []float64{0, 1, 999.99, 1400, 1234567.89} {
		got, err := ParseAmount(FormatTRY(v))
		if err != nil {
			t.Fatalf("ParseAmount(FormatTRY(%v)) error = %v", v, err)
		}
		if got != v {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
}
