package models

import "time"

// Setting holds per-user preferences. Currently only the monthly spending
// limit, one row per user.
type Setting struct {
	UserID        string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	SpendingLimit int64     `gorm:"type:bigint;not null" json:"spending_limit"`
	UpdatedAt     time.Time `json:"updated_at"`
}
