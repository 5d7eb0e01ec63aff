package services

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultUnit is the unit a freshly added line item starts with.
const DefaultUnit = "Adet"

// ErrNoSelection is returned by DeleteRows when nothing is selected. It is
// surfaced to the operator as a warning, never as a failure.
var ErrNoSelection = errors.New("no rows selected")

// MaterialColumn identifies a line item cell by name rather than position.
type MaterialColumn int

const (
	ColDescription MaterialColumn = iota
	ColUnit
	ColQty
	ColUnitPrice
	ColTotal
)

// LineItem is one material/labor row of the quote. Cells are kept as text:
// the operator types into them directly, and malformed entries must survive
// verbatim into the rendered document instead of being silently zeroed.
type LineItem struct {
	Description string
	Unit        string
	Qty         string
	UnitPrice   string
	Total       string
}

// LineItemTable owns the ordered material rows of a quote.
type LineItemTable struct {
	rows []LineItem
}

// NewLineItemTable builds a table over existing rows (e.g. loaded from the
// record store). The slice is copied; the table owns its rows exclusively.
func NewLineItemTable(rows []LineItem) *LineItemTable {
	t := &LineItemTable{rows: make([]LineItem, len(rows))}
	copy(t.rows, rows)
	return t
}

// Rows returns a snapshot copy of the current rows.
func (t *LineItemTable) Rows() []LineItem {
	out := make([]LineItem, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len returns the number of rows.
func (t *LineItemTable) Len() int {
	return len(t.rows)
}

// AddRow appends a fresh row with the form defaults:
// one unit ("Adet") at price zero.
func (t *LineItemTable) AddRow() LineItem {
	row := LineItem{
		Description: "",
		Unit:        DefaultUnit,
		Qty:         "1",
		UnitPrice:   "0.00",
		Total:       "0.00",
	}
	t.rows = append(t.rows, row)
	return row
}

// DeleteRows removes the rows at the selected indices. An empty selection
// returns ErrNoSelection and leaves the table untouched. Out-of-range
// indices are ignored.
func (t *LineItemTable) DeleteRows(selection []int) error {
	if len(selection) == 0 {
		return ErrNoSelection
	}

	idx := make([]int, 0, len(selection))
	seen := make(map[int]bool, len(selection))
	for _, i := range selection {
		if i >= 0 && i < len(t.rows) && !seen[i] {
			idx = append(idx, i)
			seen[i] = true
		}
	}
	// Delete back to front so earlier indices stay valid.
	sort.Sort(sort.Reverse(sort.IntSlice(idx)))
	for _, i := range idx {
		t.rows = append(t.rows[:i], t.rows[i+1:]...)
	}
	return nil
}

// EditCell stores text into the named cell. Description and unit are kept
// verbatim, as is a direct edit of the total cell. Editing quantity or unit
// price recomputes Total = round(qty × price, 2); if either cell fails to
// coerce, Total falls back to "0.00" rather than failing the edit.
func (t *LineItemTable) EditCell(row int, col MaterialColumn, text string) error {
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("line item row %d out of range", row)
	}
	it := &t.rows[row]

	switch col {
	case ColDescription:
		it.Description = text
	case ColUnit:
		it.Unit = text
	case ColTotal:
		it.Total = text
	case ColQty, ColUnitPrice:
		if col == ColQty {
			it.Qty = text
		} else {
			it.UnitPrice = text
		}
		qty, qtyErr := ParseAmount(it.Qty)
		price, priceErr := ParseAmount(it.UnitPrice)
		if qtyErr != nil || priceErr != nil {
			it.Total = "0.00"
		} else {
			it.Total = FormatCell(Round2(qty * price))
		}
	default:
		return fmt.Errorf("unknown material column %d", col)
	}
	return nil
}

// Totals recomputes the quote totals from the current rows.
func (t *LineItemTable) Totals() QuoteTotals {
	return CalcQuoteTotals(t.rows)
}
