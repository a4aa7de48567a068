package quotations

import (
	"math"

	"github.com/phanumatwang/finance-dashboard/app/models"
)

// ComputeTotals derives the monetary columns of a quotation from its line
// items. Discount applies to the subtotal, VAT to the discounted amount.
// Each stage rounds half away from zero to whole cents.
func ComputeTotals(q *models.Quotation) {
	var subtotal int64
	for _, it := range q.Items {
		subtotal += int64(math.Round(it.Qty * float64(it.UnitPriceCents)))
	}
	q.SubtotalCents = subtotal
	q.DiscountCents = int64(math.Round(float64(subtotal) * q.DiscountPercent / 100))
	afterDiscount := subtotal - q.DiscountCents
	q.VatCents = int64(math.Round(float64(afterDiscount) * q.VatPercent / 100))
	q.TotalCents = afterDiscount + q.VatCents
}
