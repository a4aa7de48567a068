package payroll

import (
	"fmt"
	"math"
)

// Amounts are carried as integer cents (satang) end-to-end; these helpers
// exist only for the HTTP boundary where clients send and read baht.

// ToCents converts a major-unit amount to integer cents, rounding half away
// from zero (math.Round). Applied uniformly at every boundary conversion.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts integer cents back to a major-unit amount.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// FormatCents renders cents as a plain "1234.50" string for descriptions.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%.2f", FromCents(cents))
}

func clampNonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
