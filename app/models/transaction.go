package models

import "time"

// Transaction is one bookkeeping entry: income or expense. Payroll payouts
// append one expense transaction per allocation run as the audit trail.
type Transaction struct {
	ID          string              `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Date        time.Time           `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Category    TransactionCategory `json:"category" gorm:"not null;type:varchar(10)" validate:"required,oneof=income expense"`
	Description string              `json:"description" gorm:"type:text"`
	AmountCents int64               `json:"amount_cents" gorm:"column:amount;not null;type:bigint" validate:"required,gt=0"`
	Status      TransactionStatus   `json:"status" gorm:"not null;type:varchar(10);default:'pending'"`
	FileURL     string              `json:"file_url,omitempty" gorm:"type:text"`
	CreatedBy   string              `json:"created_by" gorm:"index"`
	CreatedAt   time.Time           `json:"created_at" gorm:"autoCreateTime"`
}
