package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/phanumatwang/finance-dashboard/app/models"
)

var revisionPattern = regexp.MustCompile(`(?i)^(.*?)(?:-R(\d+))?$`)

// ParseRevision splits a quotation number into its base and revision count.
// "QT-2026-014" is revision 0 of itself; "QT-2026-014-R2" is revision 2.
func ParseRevision(number string) (base string, rev int) {
	number = strings.TrimSpace(number)
	m := revisionPattern.FindStringSubmatch(number)
	if m == nil {
		return number, 0
	}
	base = m[1]
	if base == "" {
		base = number
	}
	if m[2] != "" {
		rev, _ = strconv.Atoi(m[2])
	}
	return base, rev
}

// NextRevisionNumber returns the number the next revision should carry.
func NextRevisionNumber(number string) string {
	base, rev := ParseRevision(number)
	return fmt.Sprintf("%s-R%d", base, rev+1)
}

// NormalizeItems trims the fields that matter for revision comparison.
func NormalizeItems(items []models.QuotationItem) []models.QuotationItem {
	out := make([]models.QuotationItem, len(items))
	for i, it := range items {
		out[i] = models.QuotationItem{
			Name:           strings.TrimSpace(it.Name),
			Unit:           strings.TrimSpace(it.Unit),
			Qty:            it.Qty,
			UnitPriceCents: it.UnitPriceCents,
		}
	}
	return out
}

// HasContentChanged reports whether an edit needs a new revision number.
// Only the priced content counts: items, discount and VAT percentages.
// Note text and customer details can change without bumping the revision.
func HasContentChanged(original, current *models.Quotation) bool {
	a := NormalizeItems(original.Items)
	b := NormalizeItems(current.Items)
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return original.DiscountPercent != current.DiscountPercent ||
		original.VatPercent != current.VatPercent
}
