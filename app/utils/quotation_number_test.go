package utils

import (
	"testing"

	"github.com/phanumatwang/finance-dashboard/app/models"
)

func TestParseRevision(t *testing.T) {
	tests := []struct {
		in   string
		base string
		rev  int
	}{
		{"QT-2026-014", "QT-2026-014", 0},
		{"QT-2026-014-R1", "QT-2026-014", 1},
		{"QT-2026-014-R12", "QT-2026-014", 12},
		{"qt-2026-014-r3", "qt-2026-014", 3},
		{"  QT-7 ", "QT-7", 0},
		{"", "", 0},
	}
	for _, tt := range tests {
		base, rev := ParseRevision(tt.in)
		if base != tt.base || rev != tt.rev {
			t.Errorf("ParseRevision(%q) = (%q, %d), want (%q, %d)", tt.in, base, rev, tt.base, tt.rev)
		}
	}
}

func TestNextRevisionNumber(t *testing.T) {
	if got := NextRevisionNumber("QT-2026-014"); got != "QT-2026-014-R1" {
		t.Errorf("first revision = %q, want QT-2026-014-R1", got)
	}
	if got := NextRevisionNumber("QT-2026-014-R1"); got != "QT-2026-014-R2" {
		t.Errorf("second revision = %q, want QT-2026-014-R2", got)
	}
}

func items(rows ...models.QuotationItem) []models.QuotationItem { return rows }

func TestHasContentChangedIgnoresNote(t *testing.T) {
	original := &models.Quotation{
		Items:      items(models.QuotationItem{Name: "Tiles", Qty: 10, Unit: "box", UnitPriceCents: 45000}),
		VatPercent: 7,
		Note:       "deliver by Friday",
	}
	current := &models.Quotation{
		Items:      items(models.QuotationItem{Name: " Tiles ", Qty: 10, Unit: "box", UnitPriceCents: 45000}),
		VatPercent: 7,
		Note:       "deliver by Monday",
	}
	if HasContentChanged(original, current) {
		t.Error("note change alone should not require a revision")
	}
}

func TestHasContentChangedDetectsPriceEdit(t *testing.T) {
	original := &models.Quotation{
		Items: items(models.QuotationItem{Name: "Tiles", Qty: 10, UnitPriceCents: 45000}),
	}
	current := &models.Quotation{
		Items: items(models.QuotationItem{Name: "Tiles", Qty: 10, UnitPriceCents: 47000}),
	}
	if !HasContentChanged(original, current) {
		t.Error("unit price change should require a revision")
	}
}

func TestHasContentChangedDetectsDiscountAndVat(t *testing.T) {
	original := &models.Quotation{DiscountPercent: 0, VatPercent: 7}
	withDiscount := &models.Quotation{DiscountPercent: 5, VatPercent: 7}
	withoutVat := &models.Quotation{DiscountPercent: 0, VatPercent: 0}

	if !HasContentChanged(original, withDiscount) {
		t.Error("discount change should require a revision")
	}
	if !HasContentChanged(original, withoutVat) {
		t.Error("vat change should require a revision")
	}
}

func TestHasContentChangedDetectsAddedLine(t *testing.T) {
	original := &models.Quotation{
		Items: items(models.QuotationItem{Name: "Tiles", Qty: 10, UnitPriceCents: 45000}),
	}
	current := &models.Quotation{
		Items: items(
			models.QuotationItem{Name: "Tiles", Qty: 10, UnitPriceCents: 45000},
			models.QuotationItem{Name: "Grout", Qty: 2, UnitPriceCents: 12000},
		),
	}
	if !HasContentChanged(original, current) {
		t.Error("added line should require a revision")
	}
}
