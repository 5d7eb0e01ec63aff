package services

import (
	"errors"
	"testing"
)

func TestLineItemTable_AddRowDefaults(t *testing.T) {
	table := NewLineItemTable(nil)
	row := table.AddRow()

	want := LineItem{Description: "", Unit: "Adet", Qty: "1", UnitPrice: "0.00", Total: "0.00"}
	if row != want {
		t.Errorf("AddRow() = %+v, want %+v", row, want)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestLineItemTable_EditRecomputesTotal(t *testing.T) {
	tests := []struct {
		name      string
		qty       string
		unitPrice string
		expect    string
	}{
		{"integers", "2", "150", "300.00"},
		{"decimals", "2.5", "100.50", "251.25"},
		{"empty qty counts as zero", "", "500", "0.00"},
		{"glyph in price", "3", "10,50 ₺", "31.50"},
		{"rounding to two decimals", "3", "0.333", "1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewLineItemTable(nil)
			table.AddRow()
			if err := table.EditCell(0, ColQty, tt.qty); err != nil {
				t.Fatalf("edit qty: %v", err)
			}
			if err := table.EditCell(0, ColUnitPrice, tt.unitPrice); err != nil {
				t.Fatalf("edit unit price: %v", err)
			}
			if got := table.Rows()[0].Total; got != tt.expect {
				t.Errorf("Total = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestLineItemTable_CoercionFailureZeroesTotal(t *testing.T) {
	table := NewLineItemTable(nil)
	table.AddRow()
	table.EditCell(0, ColQty, "2")
	table.EditCell(0, ColUnitPrice, "150")

	if err := table.EditCell(0, ColQty, "not a number"); err != nil {
		t.Fatalf("edit should not fail on bad input: %v", err)
	}

	row := table.Rows()[0]
	if row.Qty != "not a number" {
		t.Errorf("Qty = %q, want the raw text kept", row.Qty)
	}
	if row.Total != "0.00" {
		t.Errorf("Total = %q, want \"0.00\"", row.Total)
	}
}

func TestLineItemTable_VerbatimColumns(t *testing.T) {
	table := NewLineItemTable(nil)
	table.AddRow()

	table.EditCell(0, ColDescription, "Alçıpan tavan işçiliği")
	table.EditCell(0, ColUnit, "m²")
	table.EditCell(0, ColTotal, "elden ödendi")

	row := table.Rows()[0]
	if row.Description != "Alçıpan tavan işçiliği" || row.Unit != "m²" {
		t.Errorf("verbatim columns changed: %+v", row)
	}
	if row.Total != "elden ödendi" {
		t.Errorf("manual total edit not kept verbatim: %q", row.Total)
	}
}

func TestLineItemTable_DeleteRows(t *testing.T) {
	table := NewLineItemTable(nil)
	for i := 0; i < 3; i++ {
		table.AddRow()
	}
	table.EditCell(0, ColDescription, "first")
	table.EditCell(1, ColDescription, "second")
	table.EditCell(2, ColDescription, "third")

	if err := table.DeleteRows([]int{0, 2}); err != nil {
		t.Fatalf("DeleteRows() error = %v", err)
	}
	rows := table.Rows()
	if len(rows) != 1 || rows[0].Description != "second" {
		t.Errorf("unexpected rows after delete: %+v", rows)
	}
}

func TestLineItemTable_DeleteEmptySelection(t *testing.T) {
	table := NewLineItemTable(nil)
	table.AddRow()

	err := table.DeleteRows(nil)
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("DeleteRows(nil) error = %v, want ErrNoSelection", err)
	}
	if table.Len() != 1 {
		t.Errorf("table changed on empty selection: %d rows", table.Len())
	}
}

func TestLineItemTable_EditOutOfRange(t *testing.T) {
	table := NewLineItemTable(nil)
	if err := table.EditCell(0, ColQty, "1"); err == nil {
		t.Fatal("expected error editing an empty table")
	}
}

func TestLineItemTable_TotalInvariantAfterEveryEdit(t *testing.T) {
	table := NewLineItemTable(nil)
	table.AddRow()

	edits := []struct {
		col  MaterialColumn
		text string
	}{
		{ColQty, "4"},
		{ColUnitPrice, "12.25"},
		{ColQty, "10"},
		{ColUnitPrice, "0.10"},
	}

	for _, e := range edits {
		if err := table.EditCell(0, e.col, e.text); err != nil {
			t.Fatalf("edit: %v", err)
		}
		row := table.Rows()[0]
		qty, _ := ParseAmount(row.Qty)
		price, _ := ParseAmount(row.UnitPrice)
		if want := FormatCell(Round2(qty * price)); row.Total != want {
			t.Errorf("after edit %+v: Total = %q, want %q", e, row.Total, want)
		}
	}
}
