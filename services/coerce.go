package services

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrencyGlyph is the lira sign tolerated (and emitted) around amounts.
const CurrencyGlyph = "₺"

// FormatError reports a cell whose text could not be coerced to an amount.
// Callers decide whether that aborts the operation or degrades to zero.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid amount %q", e.Input)
}

// ParseAmount coerces cell text to a non-negative amount. The currency glyph
// and surrounding whitespace are stripped, an empty cell reads as zero, and
// Turkish separators ("1.234,56") are accepted alongside the plain form.
func ParseAmount(text string) (float64, error) {
	s := strings.ReplaceAll(text, CurrencyGlyph, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(normalizeSeparators(s), 64)
	if err != nil || v < 0 {
		return 0, &FormatError{Input: text}
	}
	return v, nil
}

// normalizeSeparators rewrites Turkish decimal notation into the form
// strconv understands. With both separators present the dots are grouping;
// a lone comma is the decimal mark.
func normalizeSeparators(s string) string {
	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		s = strings.ReplaceAll(s, ".", "")
		return strings.Replace(s, ",", ".", 1)
	case hasComma:
		if strings.Count(s, ",") == 1 {
			return strings.Replace(s, ",", ".", 1)
		}
	}
	return s
}
