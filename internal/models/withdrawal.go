package models

import (
	"time"

	"github.com/google/uuid"
)

// Withdrawal request statuses. A request moves
// pending -> processing -> completed | failed and is never
// mutated again once terminal.
const (
	WithdrawalPending    = "pending"
	WithdrawalProcessing = "processing"
	WithdrawalCompleted  = "completed"
	WithdrawalFailed     = "failed"
)

// Withdrawal methods
const (
	MethodBankTransfer = "bank_transfer"
	MethodUPI          = "upi"
)

// BeneficiaryDetails carries the method-specific payout destination
// supplied when a withdrawal is initiated.
type BeneficiaryDetails struct {
	BankAccountNumber string `json:"bank_account_number,omitempty"` // Required for bank_transfer
	RoutingCode       string `json:"routing_code,omitempty"`        // Required for bank_transfer
	UPIHandle         string `json:"upi_handle,omitempty"`          // Required for upi
}

// WithdrawalRequestDB represents one withdrawal attempt. Tokens are
// debited (locked) when the row is created in pending state; only the
// settlement processor advances the status afterwards.
type WithdrawalRequestDB struct {
	RequestID             uuid.UUID  `json:"request_id" db:"request_id"`                           // Primary key
	AccountID             uuid.UUID  `json:"account_id" db:"account_id"`                           // Account being withdrawn from
	TokenAmount           float64    `json:"token_amount" db:"token_amount"`                       // Tokens debited for this withdrawal
	FiatAmount            float64    `json:"fiat_amount" db:"fiat_amount"`                         // Token amount at the fixed rate
	ProcessingFee         float64    `json:"processing_fee" db:"processing_fee"`                   // Fee deducted from the fiat amount
	NetAmount             float64    `json:"net_amount" db:"net_amount"`                           // Fiat amount paid out after the fee
	Method                string     `json:"method" db:"method"`                                   // bank_transfer or upi
	BankAccountNumber     string     `json:"bank_account_number,omitempty" db:"bank_account_number"` // Beneficiary bank account (bank_transfer)
	RoutingCode           string     `json:"routing_code,omitempty" db:"routing_code"`             // Beneficiary routing code (bank_transfer)
	UPIHandle             string     `json:"upi_handle,omitempty" db:"upi_handle"`                 // Beneficiary UPI handle (upi)
	Status                string     `json:"status" db:"status"`                                   // Lifecycle status
	DebitReferenceID      string     `json:"debit_reference_id" db:"debit_reference_id"`           // Reference of the ledger debit that locked the tokens
	TrackingReferenceID   string     `json:"tracking_reference_id" db:"tracking_reference_id"`     // Gateway tracking id, empty if the gateway call failed
	SettlementReferenceID string     `json:"settlement_reference_id" db:"settlement_reference_id"` // Unique reference of the bank settlement
	Notes                 string     `json:"notes" db:"notes"`                                     // Failure cause or processing remarks
	RequestedAt           time.Time  `json:"requested_at" db:"requested_at"`                       // Creation timestamp
	ProcessedAt           *time.Time `json:"processed_at,omitempty" db:"processed_at"`             // Set when the request reaches a terminal state
	ReversedAt            *time.Time `json:"reversed_at,omitempty" db:"reversed_at"`               // Set when a failed request's tokens were re-credited
}

// Terminal reports whether the request reached a final state.
func (w *WithdrawalRequestDB) Terminal() bool {
	return w.Status == WithdrawalCompleted || w.Status == WithdrawalFailed
}
