package entity

import (
	"time"
)

// ConfirmationCode is the emailed signup code, stored hashed. The latest
// unexpired code for a user wins.
type ConfirmationCode struct {
	BaseSimple
	UserID    int64     `db:"user_id"`
	CodeHash  string    `db:"code_hash"`
	ExpiresAt time.Time `db:"expires_at"`
}
