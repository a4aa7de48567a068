package models

import "time"

// WageRecord is one employee's earnings entry for one work date.
// WageCents is fixed at creation; PaidCents only ever grows and never
// exceeds WageCents. All amounts are integer cents (satang).
type WageRecord struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Employee    string     `json:"employee" gorm:"column:created_by;not null;index" validate:"required"`
	Date        time.Time  `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Description string     `json:"description" gorm:"type:text"`
	WageCents   int64      `json:"wage_cents" gorm:"column:wage_amount;not null;type:bigint" validate:"gte=0"`
	PaidCents   int64      `json:"paid_cents" gorm:"column:paid_amount;not null;type:bigint;default:0" validate:"gte=0"`
	Status      WageStatus `json:"status" gorm:"not null;type:varchar(20);default:'pending'"`
	FileURL     string     `json:"file_url,omitempty" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// RemainderCents returns the unpaid portion of the record, clamped at zero
// to guard against data anomalies where paid overshoots wage.
func (r *WageRecord) RemainderCents() int64 {
	rem := r.WageCents - r.PaidCents
	if rem < 0 {
		return 0
	}
	return rem
}
