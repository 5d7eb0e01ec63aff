package services

import (
	"fmt"
	"math"
	"strings"
)

// Round2 rounds an amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatCell renders an amount the way table cells store it: plain two
// decimals, no grouping, no glyph.
func FormatCell(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatTRY formats an amount in Turkish lira notation: dot-grouped
// thousands, comma decimals, trailing lira sign (e.g. "1.234.567,89 ₺").
// The result always includes exactly 2 decimal places.
func FormatTRY(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := groupThousands(intPart) + "," + decPart + " " + CurrencyGlyph
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts dots into an integer string every 3 digits from
// the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "." + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "." + result
}
