package quotations

import (
	"testing"

	"github.com/phanumatwang/finance-dashboard/app/models"
)

func TestComputeTotalsPlain(t *testing.T) {
	q := &models.Quotation{
		Items: []models.QuotationItem{
			{Name: "Tiles", Qty: 10, UnitPriceCents: 45000},
			{Name: "Grout", Qty: 2, UnitPriceCents: 12000},
		},
		VatPercent: 7,
	}
	ComputeTotals(q)

	if q.SubtotalCents != 474000 {
		t.Errorf("subtotal = %d, want 474000", q.SubtotalCents)
	}
	if q.DiscountCents != 0 {
		t.Errorf("discount = %d, want 0", q.DiscountCents)
	}
	if q.VatCents != 33180 {
		t.Errorf("vat = %d, want 33180", q.VatCents)
	}
	if q.TotalCents != 507180 {
		t.Errorf("total = %d, want 507180", q.TotalCents)
	}
}

func TestComputeTotalsDiscountBeforeVat(t *testing.T) {
	q := &models.Quotation{
		Items: []models.QuotationItem{
			{Name: "Labour", Qty: 1, UnitPriceCents: 1000000},
		},
		DiscountPercent: 10,
		VatPercent:      7,
	}
	ComputeTotals(q)

	if q.DiscountCents != 100000 {
		t.Errorf("discount = %d, want 100000", q.DiscountCents)
	}
	// VAT on 9000.00, not 10000.00.
	if q.VatCents != 63000 {
		t.Errorf("vat = %d, want 63000", q.VatCents)
	}
	if q.TotalCents != 963000 {
		t.Errorf("total = %d, want 963000", q.TotalCents)
	}
}

func TestComputeTotalsFractionalQtyRounds(t *testing.T) {
	q := &models.Quotation{
		Items: []models.QuotationItem{
			{Name: "Paint", Qty: 2.5, UnitPriceCents: 33333},
		},
	}
	ComputeTotals(q)

	// 2.5 * 333.33 = 833.325, rounds to 833.33.
	if q.SubtotalCents != 83333 {
		t.Errorf("subtotal = %d, want 83333", q.SubtotalCents)
	}
	if q.TotalCents != 83333 {
		t.Errorf("total = %d, want 83333", q.TotalCents)
	}
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	q := &models.Quotation{VatPercent: 7}
	ComputeTotals(q)
	if q.SubtotalCents != 0 || q.TotalCents != 0 {
		t.Errorf("empty quotation totals = %d/%d, want 0/0", q.SubtotalCents, q.TotalCents)
	}
}
