package models

import (
	"time"

	"github.com/google/uuid"
)

// Account statuses
const (
	AccountActive      = "active"
	AccountDeactivated = "deactivated"
)

// AccountDB represents a wallet account row in the database.
// One account per user; the fiat equivalent is never stored,
// it is recomputed from the token balance on read.
type AccountDB struct {
	UserID         uuid.UUID `json:"user_id" db:"user_id"`                 // Owner of the account, primary key
	TokenBalance   float64   `json:"token_balance" db:"token_balance"`     // Current token balance, never negative
	TotalWithdrawn float64   `json:"total_withdrawn" db:"total_withdrawn"` // Cumulative tokens withdrawn, monotonically non-decreasing
	Status         string    `json:"status" db:"status"`                   // active or deactivated
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Timestamp when the account was created
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`           // Timestamp of the last balance change
}
