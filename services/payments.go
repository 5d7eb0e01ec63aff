package services

import (
	"fmt"
	"log"
	"sort"
	"time"
)

// DateLayout is the day.month.year format used in installment date cells.
const DateLayout = "02.01.2006"

// PaymentColumn identifies an installment cell by name.
type PaymentColumn int

const (
	PayColDate PaymentColumn = iota
	PayColTotalDue
	PayColReceived
	PayColRemaining
)

// Installment is one payment plan row. Like line items, cells are text.
type Installment struct {
	Date      string
	TotalDue  string
	Received  string
	Remaining string
}

// editState tracks where an edit of a payment cell currently is: committing
// a received amount moves Editing into BalanceCascading, which recomputes
// the remaining balance and may append a follow-up row before returning to
// Idle.
type editState int

const (
	stateIdle editState = iota
	stateEditing
	stateBalanceCascading
)

// CascadeResult reports what a received-amount edit did to the plan.
type CascadeResult struct {
	// Remaining is the formatted balance written into the edited row,
	// empty when no cascade ran.
	Remaining string
	// Overpaid is set when the received amount exceeded the total due:
	// the remaining cell was clamped to zero and the operator must be
	// warned.
	Overpaid bool
	// Appended is set when a follow-up installment carrying the unpaid
	// remainder was added after the last row.
	Appended bool
}

// PaymentPlan owns the ordered installment rows of a quote.
type PaymentPlan struct {
	rows  []Installment
	state editState
}

// NewPaymentPlan builds a plan over existing rows. The slice is copied.
func NewPaymentPlan(rows []Installment) *PaymentPlan {
	p := &PaymentPlan{rows: make([]Installment, len(rows))}
	copy(p.rows, rows)
	return p
}

// Rows returns a snapshot copy of the current rows.
func (p *PaymentPlan) Rows() []Installment {
	out := make([]Installment, len(p.rows))
	copy(out, p.rows)
	return out
}

// Len returns the number of rows.
func (p *PaymentPlan) Len() int {
	return len(p.rows)
}

// AddRow appends a fresh installment dated now with zero amounts.
func (p *PaymentPlan) AddRow(now time.Time) Installment {
	row := Installment{
		Date:      now.Format(DateLayout),
		TotalDue:  "0.00",
		Received:  "0.00",
		Remaining: "0.00",
	}
	p.rows = append(p.rows, row)
	return row
}

// DeleteRows removes the rows at the selected indices. An empty selection
// returns ErrNoSelection. Rows are never removed any other way.
func (p *PaymentPlan) DeleteRows(selection []int) error {
	if len(selection) == 0 {
		return ErrNoSelection
	}

	idx := make([]int, 0, len(selection))
	seen := make(map[int]bool, len(selection))
	for _, i := range selection {
		if i >= 0 && i < len(p.rows) && !seen[i] {
			idx = append(idx, i)
			seen[i] = true
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(idx)))
	for _, i := range idx {
		p.rows = append(p.rows[:i], p.rows[i+1:]...)
	}
	return nil
}

// EditCell stores text into the named cell. Only committing a received
// amount triggers the balance cascade; date and total due edits are stored
// verbatim with no recomputation of the remaining balance. A coercion
// failure inside the cascade is logged and aborts that edit without
// touching other cells.
func (p *PaymentPlan) EditCell(row int, col PaymentColumn, text string, now time.Time) (CascadeResult, error) {
	if row < 0 || row >= len(p.rows) {
		return CascadeResult{}, fmt.Errorf("installment row %d out of range", row)
	}
	in := &p.rows[row]

	p.state = stateEditing
	defer func() { p.state = stateIdle }()

	switch col {
	case PayColDate:
		in.Date = text
	case PayColTotalDue:
		in.TotalDue = text
	case PayColRemaining:
		in.Remaining = text
	case PayColReceived:
		in.Received = text
		p.state = stateBalanceCascading
		rows, res, err := ApplyReceivedAmountEdit(p.rows, row, now)
		if err != nil {
			// Bad input must not desynchronize other rows.
			log.Printf("payment plan: cascade aborted for row %d: %v", row, err)
			return CascadeResult{}, nil
		}
		p.rows = rows
		return res, nil
	default:
		return CascadeResult{}, fmt.Errorf("unknown payment column %d", col)
	}
	return CascadeResult{}, nil
}

// ApplyReceivedAmountEdit runs the balance cascade for the row whose
// received cell was just committed, returning the new plan rows. It is pure
// so the cascade is testable without any UI or store:
//
//  1. remaining = totalDue − received
//  2. remaining < 0 clamps to 0 and flags the overpayment; total due and
//     received stay as entered, only the remaining cell is forced
//  3. remaining > 0 on the last row appends a follow-up installment dated
//     now carrying the remainder forward
//
// A received amount of zero leaves the plan untouched. Coercion failures
// return an error with the input rows unchanged.
func ApplyReceivedAmountEdit(rows []Installment, row int, now time.Time) ([]Installment, CascadeResult, error) {
	if row < 0 || row >= len(rows) {
		return rows, CascadeResult{}, fmt.Errorf("installment row %d out of range", row)
	}

	received, err := ParseAmount(rows[row].Received)
	if err != nil {
		return rows, CascadeResult{}, fmt.Errorf("received amount: %w", err)
	}
	if received == 0 {
		return rows, CascadeResult{}, nil
	}

	totalDue, err := ParseAmount(rows[row].TotalDue)
	if err != nil {
		return rows, CascadeResult{}, fmt.Errorf("total due: %w", err)
	}

	out := make([]Installment, len(rows))
	copy(out, rows)

	res := CascadeResult{}
	remaining := totalDue - received
	if remaining < 0 {
		res.Overpaid = true
		remaining = 0
	}
	res.Remaining = FormatCell(remaining)
	out[row].Remaining = res.Remaining

	if remaining > 0 && row == len(out)-1 {
		out = append(out, Installment{
			Date:      now.Format(DateLayout),
			TotalDue:  FormatCell(remaining),
			Received:  "0.00",
			Remaining: FormatCell(remaining),
		})
		res.Appended = true
	}

	return out, res, nil
}
