package models

import (
	"time"

	"github.com/google/uuid"
)

// Ledger entry directions
const (
	DirectionCredit = "credit"
	DirectionDebit  = "debit"
)

// Ledger entry statuses
const (
	LedgerCompleted = "completed"
	LedgerFailed    = "failed"
)

// LedgerEntryDB represents an immutable row in the append-only ledger.
// Invariant: for every account, sum(credits) - sum(debits) over entries
// with a non-zero token amount equals the current token balance.
type LedgerEntryDB struct {
	EntryID     uuid.UUID `json:"entry_id" db:"entry_id"`         // Primary key
	AccountID   uuid.UUID `json:"account_id" db:"account_id"`     // Account the entry belongs to
	Direction   string    `json:"direction" db:"direction"`       // credit or debit
	TokenAmount float64   `json:"token_amount" db:"token_amount"` // Token amount moved (0 for settlement audit entries)
	FiatAmount  float64   `json:"fiat_amount" db:"fiat_amount"`   // Fiat equivalent at the fixed rate
	Status      string    `json:"status" db:"status"`             // completed or failed
	Description string    `json:"description" db:"description"`   // Human-readable cause
	ReferenceID string    `json:"reference_id" db:"reference_id"` // Unique idempotency key
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Insertion timestamp
}
