package bank

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when no bank account exists for the given number.
	ErrAccountNotFound = errors.New("bank account not found")
	// ErrAccountInactive is returned when the bank account is deactivated.
	ErrAccountInactive = errors.New("bank account is inactive")
	// ErrMonthlyLimitExceeded is returned when a credit would exceed the monthly transfer limit.
	ErrMonthlyLimitExceeded = errors.New("monthly transfer limit exceeded")
	// ErrInsufficientFunds is returned when a debit exceeds the bank account balance.
	ErrInsufficientFunds = errors.New("insufficient bank account funds")
)

// Account statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Transaction types
const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

// historyRetention caps the per-account transaction history; oldest
// entries are evicted beyond this count.
const historyRetention = 50

// Account is a simulated external bank account.
type Account struct {
	AccountNumber        string    `json:"account_number"`
	RoutingCode          string    `json:"routing_code"`
	HolderName           string    `json:"holder_name"`
	InstitutionName      string    `json:"institution_name"`
	Balance              float64   `json:"balance"`
	MonthlyTransferLimit float64   `json:"monthly_transfer_limit"`
	MonthlyUsed          float64   `json:"monthly_used"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
}

// Transaction is an immutable record of one credit or debit against a
// simulated account. Invariant: BalanceAfter == BalanceBefore + Amount
// for credits and BalanceBefore - Amount for debits.
type Transaction struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	BalanceBefore float64   `json:"balance_before"`
	BalanceAfter  float64   `json:"balance_after"`
	Reference     string    `json:"reference"`
	Description   string    `json:"description"`
	Timestamp     time.Time `json:"timestamp"`
}

// Statement is a windowed aggregation over an account's history.
// OpeningBalance + TotalCredits - TotalDebits == ClosingBalance.
type Statement struct {
	AccountNumber  string        `json:"account_number"`
	WindowDays     int           `json:"window_days"`
	OpeningBalance float64       `json:"opening_balance"`
	ClosingBalance float64       `json:"closing_balance"`
	TotalCredits   float64       `json:"total_credits"`
	TotalDebits    float64       `json:"total_debits"`
	Transactions   []Transaction `json:"transactions"`
}

// Simulator is an in-memory mock of an external bank. State is
// process-local and non-durable: a production port would persist it or
// keep the simulator as a test double.
type Simulator struct {
	mu              sync.Mutex
	seq             int64
	accounts        map[string]*Account
	history         map[string][]Transaction
	monthlyLimit    float64
	startingBalance float64
}

// NewSimulator creates a simulator. Every created account gets the
// given monthly transfer limit and starting balance.
func NewSimulator(monthlyLimit, startingBalance float64) *Simulator {
	return &Simulator{
		accounts:        make(map[string]*Account),
		history:         make(map[string][]Transaction),
		monthlyLimit:    monthlyLimit,
		startingBalance: startingBalance,
	}
}

// CreateAccount allocates an account with a monotonically increasing
// account number and a synthetic routing code.
func (s *Simulator) CreateAccount(ctx context.Context, holderName string) *Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	account := &Account{
		AccountNumber:        fmt.Sprintf("SIMB%010d", s.seq),
		RoutingCode:          fmt.Sprintf("SIMB0%06d", s.seq%1000000),
		HolderName:           holderName,
		InstitutionName:      "Simulated National Bank",
		Balance:              s.startingBalance,
		MonthlyTransferLimit: s.monthlyLimit,
		MonthlyUsed:          0,
		Status:               StatusActive,
		CreatedAt:            time.Now(),
	}
	s.accounts[account.AccountNumber] = account
	return snapshot(account)
}

// Credit adds funds to an account. The balance and monthly-usage
// updates plus the history append happen under one lock, so concurrent
// credits against the same account serialize.
func (s *Simulator) Credit(ctx context.Context, accountNumber string, amount float64, reference, description string) (*Transaction, *Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountNumber]
	if !ok {
		return nil, nil, ErrAccountNotFound
	}
	if account.Status != StatusActive {
		return nil, nil, ErrAccountInactive
	}
	if account.MonthlyUsed+amount > account.MonthlyTransferLimit {
		return nil, nil, ErrMonthlyLimitExceeded
	}

	txn := Transaction{
		ID:            uuid.NewString(),
		Type:          TypeCredit,
		Amount:        amount,
		BalanceBefore: account.Balance,
		BalanceAfter:  account.Balance + amount,
		Reference:     reference,
		Description:   description,
		Timestamp:     time.Now(),
	}
	account.Balance += amount
	account.MonthlyUsed += amount
	s.appendHistory(accountNumber, txn)

	return &txn, snapshot(account), nil
}

// Debit removes funds from an account.
func (s *Simulator) Debit(ctx context.Context, accountNumber string, amount float64, reference, description string) (*Transaction, *Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountNumber]
	if !ok {
		return nil, nil, ErrAccountNotFound
	}
	if account.Status != StatusActive {
		return nil, nil, ErrAccountInactive
	}
	if amount > account.Balance {
		return nil, nil, ErrInsufficientFunds
	}

	txn := Transaction{
		ID:            uuid.NewString(),
		Type:          TypeDebit,
		Amount:        amount,
		BalanceBefore: account.Balance,
		BalanceAfter:  account.Balance - amount,
		Reference:     reference,
		Description:   description,
		Timestamp:     time.Now(),
	}
	account.Balance -= amount
	s.appendHistory(accountNumber, txn)

	return &txn, snapshot(account), nil
}

// GetAccount returns a snapshot of an account.
func (s *Simulator) GetAccount(ctx context.Context, accountNumber string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountNumber]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return snapshot(account), nil
}

// Deactivate marks an account inactive; further credits and debits
// fail with ErrAccountInactive.
func (s *Simulator) Deactivate(ctx context.Context, accountNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountNumber]
	if !ok {
		return ErrAccountNotFound
	}
	account.Status = StatusInactive
	return nil
}

// ResetMonthlyUsage zeroes every account's monthly usage counter.
// Meant to be called at the start of a billing month.
func (s *Simulator) ResetMonthlyUsage(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		account.MonthlyUsed = 0
	}
}

// GetTransactionHistory returns up to limit transactions, newest first.
func (s *Simulator) GetTransactionHistory(ctx context.Context, accountNumber string, limit int) ([]Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[accountNumber]; !ok {
		return nil, ErrAccountNotFound
	}

	history := s.history[accountNumber]
	if limit <= 0 || limit > len(history) {
		limit = len(history)
	}

	// history is stored oldest first; return newest first
	out := make([]Transaction, 0, limit)
	for i := len(history) - 1; i >= len(history)-limit; i-- {
		out = append(out, history[i])
	}
	return out, nil
}

// GenerateStatement aggregates the transactions inside the window and
// works backward from the current balance to the opening balance, so
// OpeningBalance + TotalCredits - TotalDebits == ClosingBalance holds.
func (s *Simulator) GenerateStatement(ctx context.Context, accountNumber string, windowDays int) (*Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountNumber]
	if !ok {
		return nil, ErrAccountNotFound
	}

	cutoff := time.Now().AddDate(0, 0, -windowDays)
	stmt := &Statement{
		AccountNumber:  accountNumber,
		WindowDays:     windowDays,
		ClosingBalance: account.Balance,
	}

	for _, txn := range s.history[accountNumber] {
		if txn.Timestamp.Before(cutoff) {
			continue
		}
		stmt.Transactions = append(stmt.Transactions, txn)
		switch txn.Type {
		case TypeCredit:
			stmt.TotalCredits += txn.Amount
		case TypeDebit:
			stmt.TotalDebits += txn.Amount
		}
	}

	stmt.OpeningBalance = stmt.ClosingBalance - stmt.TotalCredits + stmt.TotalDebits
	return stmt, nil
}

func (s *Simulator) appendHistory(accountNumber string, txn Transaction) {
	history := append(s.history[accountNumber], txn)
	if len(history) > historyRetention {
		history = history[len(history)-historyRetention:]
	}
	s.history[accountNumber] = history
}

func snapshot(account *Account) *Account {
	copied := *account
	return &copied
}
