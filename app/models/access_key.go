package models

import "time"

// AccessKey maps a shared-secret login key to an employee identity.
// The key itself is stored bcrypt-hashed; DailyWageCents seeds new
// time-tracking submissions for that employee.
type AccessKey struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	KeyHash        string    `json:"-" gorm:"not null"`
	Name           string    `json:"name" gorm:"not null;uniqueIndex" validate:"required"`
	Role           string    `json:"role" gorm:"not null;type:varchar(20)" validate:"required,oneof=user admin superadmin"`
	DailyWageCents int64     `json:"daily_wage_cents" gorm:"column:daily_wage;not null;type:bigint;default:0"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Caller is the authenticated identity attached to every request by the
// auth middleware. Handlers read it from fiber Locals instead of any
// ambient global state.
type Caller struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	DailyWageCents int64  `json:"daily_wage_cents"`
}

// IsAdmin reports whether the caller can review and pay.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin || c.Role == RoleSuperadmin
}
