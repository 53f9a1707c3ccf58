package models

// TransactionEvent is the message published to Kafka for every
// balance-affecting operation and settlement outcome. Publishing is
// observability only and never gates the operation itself.
type TransactionEvent struct {
	EventID     string  `json:"event_id"`     // Unique identifier of the event
	Timestamp   int64   `json:"timestamp"`    // Unix timestamp (seconds) when the event occurred
	AccountID   string  `json:"account_id"`   // Account the event applies to
	Operation   string  `json:"operation"`    // e.g. "credit", "debit", "withdrawal_initiated", "settlement_completed"
	TokenAmount float64 `json:"token_amount"` // Token amount moved, if any
	FiatAmount  float64 `json:"fiat_amount"`  // Fiat equivalent, if any
	ReferenceID string  `json:"reference_id"` // Ledger or settlement reference
}
