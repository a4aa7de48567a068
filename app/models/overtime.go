package models

import "time"

// OvertimeRequest is a worker's request for overtime pay, priced at the
// worker's daily wage divided by eight hours. Approval inserts a matching
// approved wage record so the amount flows into payroll allocation.
type OvertimeRequest struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	RequestedBy string         `json:"requested_by" gorm:"not null;index" validate:"required"`
	Date        time.Time      `json:"date" gorm:"not null;type:date" validate:"required"`
	Hours       float64        `json:"hours" gorm:"not null" validate:"required,gt=0"`
	Reason      string         `json:"reason" gorm:"type:text" validate:"required"`
	AmountCents int64          `json:"amount_cents" gorm:"column:ot_amount;not null;type:bigint" validate:"gte=0"`
	Status      OvertimeStatus `json:"status" gorm:"not null;type:varchar(10);default:'pending'"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
}
