package models

import "time"

// Customer is a CRM contact that quotations are issued against.
type Customer struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	Tel       string    `json:"tel" gorm:"type:varchar(30)" validate:"required"`
	Address   string    `json:"address" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
