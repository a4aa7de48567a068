package models

import "time"

// QuotationItem is one line of a quotation. UnitPriceCents is integer cents.
type QuotationItem struct {
	Name           string  `json:"name" validate:"required"`
	Qty            float64 `json:"qty" validate:"gt=0"`
	Unit           string  `json:"unit"`
	UnitPriceCents int64   `json:"unit_price_cents" validate:"gte=0"`
}

// Quotation is a priced offer to a customer. Totals are derived from the
// items plus discount and VAT percentages and stored denormalized, the way
// the original kept them for PDF rendering. Revisions get a "-Rn" suffix
// on Number instead of mutating the stored row.
type Quotation struct {
	ID              string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Number          string          `json:"number" gorm:"not null;uniqueIndex" validate:"required"`
	CustomerID      string          `json:"customer_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Items           []QuotationItem `json:"items" gorm:"type:jsonb"`
	Note            string          `json:"note" gorm:"type:text"`
	SubtotalCents   int64           `json:"subtotal_cents" gorm:"column:subtotal;not null;type:bigint"`
	DiscountPercent float64         `json:"discount_percent" gorm:"default:0" validate:"gte=0,lte=100"`
	DiscountCents   int64           `json:"discount_cents" gorm:"column:discount_amount;type:bigint"`
	VatPercent      float64         `json:"vat_percent" gorm:"default:7" validate:"gte=0,lte=100"`
	VatCents        int64           `json:"vat_cents" gorm:"column:vat_amount;type:bigint"`
	TotalCents      int64           `json:"total_cents" gorm:"column:total;not null;type:bigint"`
	Status          QuotationStatus `json:"status" gorm:"not null;type:varchar(10);default:'draft'"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;references:ID"`
}
