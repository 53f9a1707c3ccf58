package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/Atulkumarjha/JusPay-sub000/internal/logger"
	"github.com/Atulkumarjha/JusPay-sub000/internal/models"
)

var (
	// ErrInvalidAmount is returned when a credit, debit, or withdrawal amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientBalance is returned when a debit exceeds the current token balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrAccountNotFound is returned when the user has no active wallet account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrBelowMinimumNet is returned when the fiat payout after the fee is under the configured floor.
	ErrBelowMinimumNet = errors.New("net amount below minimum withdrawal")
	// ErrMissingBeneficiaryDetails is returned when the method-specific payout fields are absent.
	ErrMissingBeneficiaryDetails = errors.New("missing beneficiary details")
	// ErrWithdrawalNotFound is returned when no withdrawal request exists for the given id.
	ErrWithdrawalNotFound = errors.New("withdrawal request not found")
	// ErrInvalidWithdrawalState is returned when a request is not in the state a transition requires.
	ErrInvalidWithdrawalState = errors.New("withdrawal request is not in a valid state for this operation")
)

// AccountWriter defines balance mutation operations.
type AccountWriter interface {
	SaveCredit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error) // Atomically increases the balance, returns the new balance
	SaveDebit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error)  // Atomically decreases the balance if sufficient, returns the new balance
	AddWithdrawn(ctx context.Context, userID uuid.UUID, tokenAmount float64) error     // Bumps the cumulative withdrawn counter
}

// AccountReader defines account read operations.
type AccountReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.AccountDB, error) // Returns the account, nil when absent
}

// LedgerWriter appends entries to the append-only ledger.
type LedgerWriter interface {
	Save(ctx context.Context, entry models.LedgerEntryDB) error
}

// LedgerReader lists ledger entries for an account.
type LedgerReader interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]models.LedgerEntryDB, error)
}

// WithdrawalWriter defines withdrawal request write operations.
type WithdrawalWriter interface {
	Save(ctx context.Context, w models.WithdrawalRequestDB) error
	MarkProcessing(ctx context.Context, requestID uuid.UUID) (bool, error)                         // pending -> processing check-and-set
	MarkCompleted(ctx context.Context, requestID uuid.UUID, trackingRef, settlementRef string) error
	MarkFailed(ctx context.Context, requestID uuid.UUID, trackingRef, notes string) error
	MarkReversed(ctx context.Context, requestID uuid.UUID) (bool, error) // at-most-once reversal marker
}

// WithdrawalReader defines withdrawal request read operations.
type WithdrawalReader interface {
	GetByID(ctx context.Context, requestID uuid.UUID) (*models.WithdrawalRequestDB, error) // Returns the request, nil when absent
}

// BalanceCache caches token balances.
type BalanceCache interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (float64, error)
	SetBalance(ctx context.Context, userID uuid.UUID, balance float64) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// TxRunner runs a function inside one atomic storage transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// WalletService owns the balance invariants: credit, debit, conversion
// and fee arithmetic, and withdrawal-request creation.
type WalletService struct {
	accounts         AccountWriter
	reader           AccountReader
	ledger           LedgerWriter
	ledgerReader     LedgerReader
	withdrawals      WithdrawalWriter
	withdrawalReader WithdrawalReader
	cache            BalanceCache
	tx               TxRunner
	kafkaWriter      KafkaWriter
	conv             Converter
}

// NewWalletService creates a new WalletService.
func NewWalletService(
	accounts AccountWriter,
	reader AccountReader,
	ledger LedgerWriter,
	ledgerReader LedgerReader,
	withdrawals WithdrawalWriter,
	withdrawalReader WithdrawalReader,
	cache BalanceCache,
	tx TxRunner,
	kafkaWriter KafkaWriter,
	conv Converter,
) *WalletService {
	return &WalletService{
		accounts:         accounts,
		reader:           reader,
		ledger:           ledger,
		ledgerReader:     ledgerReader,
		withdrawals:      withdrawals,
		withdrawalReader: withdrawalReader,
		cache:            cache,
		tx:               tx,
		kafkaWriter:      kafkaWriter,
		conv:             conv,
	}
}

// publishEvent publishes a transaction event to Kafka. Failures are
// logged and never propagated.
func (s *WalletService) publishEvent(ctx context.Context, event models.TransactionEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}
	publishEvent(ctx, s.kafkaWriter, event)
}

// publishEvent marshals and writes one event; shared by the wallet and
// settlement services.
func publishEvent(ctx context.Context, writer KafkaWriter, event models.TransactionEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ReferenceID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

// invalidateBalance drops the cached balance after a write. Best effort.
func (s *WalletService) invalidateBalance(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Errorw("failed to invalidate balance cache", "userID", userID, "error", err)
	}
}

// applyCredit performs the balance update and ledger insert for a
// credit. Must run inside a transaction context.
func (s *WalletService) applyCredit(ctx context.Context, userID uuid.UUID, amount float64, description, referenceID string) (float64, error) {
	balance, err := s.accounts.SaveCredit(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrAccountNotFound
		}
		return 0, err
	}

	entry := models.LedgerEntryDB{
		EntryID:     uuid.New(),
		AccountID:   userID,
		Direction:   models.DirectionCredit,
		TokenAmount: amount,
		FiatAmount:  s.conv.TokenToFiat(amount),
		Status:      models.LedgerCompleted,
		Description: description,
		ReferenceID: referenceID,
	}
	if err := s.ledger.Save(ctx, entry); err != nil {
		return 0, err
	}
	return balance, nil
}

// applyDebit performs the conditional balance update and ledger insert
// for a debit. The balance check happens inside the same statement as
// the write, so concurrent debits cannot overdraw. Must run inside a
// transaction context.
func (s *WalletService) applyDebit(ctx context.Context, userID uuid.UUID, amount float64, description, referenceID string) (float64, error) {
	balance, err := s.accounts.SaveDebit(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrInsufficientBalance
		}
		return 0, err
	}

	entry := models.LedgerEntryDB{
		EntryID:     uuid.New(),
		AccountID:   userID,
		Direction:   models.DirectionDebit,
		TokenAmount: amount,
		FiatAmount:  s.conv.TokenToFiat(amount),
		Status:      models.LedgerCompleted,
		Description: description,
		ReferenceID: referenceID,
	}
	if err := s.ledger.Save(ctx, entry); err != nil {
		return 0, err
	}
	return balance, nil
}

// Credit adds tokens to a user's balance and appends a ledger entry as
// one atomic unit.
func (s *WalletService) Credit(ctx context.Context, userID uuid.UUID, amount float64, description string) (newBalance, fiatEquivalent float64, referenceID string, err error) {
	if amount <= 0 {
		return 0, 0, "", ErrInvalidAmount
	}

	referenceID = uuid.NewString()
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		newBalance, txErr = s.applyCredit(ctx, userID, amount, description, referenceID)
		return txErr
	})
	if err != nil {
		logger.Log.Errorw("failed to credit account", "userID", userID, "amount", amount, "error", err)
		return 0, 0, "", err
	}

	s.invalidateBalance(ctx, userID)
	s.publishEvent(ctx, models.TransactionEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		AccountID:   userID.String(),
		Operation:   "credit",
		TokenAmount: amount,
		FiatAmount:  s.conv.TokenToFiat(amount),
		ReferenceID: referenceID,
	})

	return newBalance, s.conv.TokenToFiat(newBalance), referenceID, nil
}

// Debit removes tokens from a user's balance and appends a ledger
// entry as one atomic unit. Fails with ErrInsufficientBalance when the
// amount exceeds the current balance.
func (s *WalletService) Debit(ctx context.Context, userID uuid.UUID, amount float64, description string) (newBalance, fiatEquivalent float64, referenceID string, err error) {
	if amount <= 0 {
		return 0, 0, "", ErrInvalidAmount
	}

	referenceID = uuid.NewString()
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		newBalance, txErr = s.applyDebit(ctx, userID, amount, description, referenceID)
		return txErr
	})
	if err != nil {
		logger.Log.Errorw("failed to debit account", "userID", userID, "amount", amount, "error", err)
		return 0, 0, "", err
	}

	s.invalidateBalance(ctx, userID)
	s.publishEvent(ctx, models.TransactionEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		AccountID:   userID.String(),
		Operation:   "debit",
		TokenAmount: amount,
		FiatAmount:  s.conv.TokenToFiat(amount),
		ReferenceID: referenceID,
	})

	return newBalance, s.conv.TokenToFiat(newBalance), referenceID, nil
}

// GetBalance returns the token balance and its fiat equivalent at the
// fixed rate. The fiat value is always recomputed from the balance.
func (s *WalletService) GetBalance(ctx context.Context, userID uuid.UUID) (tokens, fiatEquivalent float64, err error) {
	if s.cache != nil {
		if balance, cacheErr := s.cache.GetBalance(ctx, userID); cacheErr == nil {
			return balance, s.conv.TokenToFiat(balance), nil
		}
	}

	account, err := s.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get account", "userID", userID, "error", err)
		return 0, 0, err
	}
	if account == nil {
		return 0, 0, ErrAccountNotFound
	}

	if s.cache != nil {
		if cacheErr := s.cache.SetBalance(ctx, userID, account.TokenBalance); cacheErr != nil {
			logger.Log.Errorw("failed to cache balance", "userID", userID, "error", cacheErr)
		}
	}

	return account.TokenBalance, s.conv.TokenToFiat(account.TokenBalance), nil
}

// GetLedger returns the newest ledger entries for a user, newest first.
func (s *WalletService) GetLedger(ctx context.Context, userID uuid.UUID, limit int) ([]models.LedgerEntryDB, error) {
	if limit <= 0 {
		limit = 50
	}
	entries, err := s.ledgerReader.ListByAccount(ctx, userID, limit)
	if err != nil {
		logger.Log.Errorw("failed to list ledger entries", "userID", userID, "error", err)
		return nil, err
	}
	return entries, nil
}

// InitiateWithdrawal validates a withdrawal, debits the tokens, and
// creates the pending request row. Debit and request creation commit
// together: tokens are never locked without a traceable request.
func (s *WalletService) InitiateWithdrawal(ctx context.Context, userID uuid.UUID, tokenAmount float64, method string, beneficiary models.BeneficiaryDetails) (*models.WithdrawalRequestDB, error) {
	if tokenAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	switch method {
	case models.MethodBankTransfer:
		if beneficiary.BankAccountNumber == "" || beneficiary.RoutingCode == "" {
			return nil, ErrMissingBeneficiaryDetails
		}
	case models.MethodUPI:
		if beneficiary.UPIHandle == "" {
			return nil, ErrMissingBeneficiaryDetails
		}
	default:
		return nil, ErrMissingBeneficiaryDetails
	}

	fiatAmount := s.conv.TokenToFiat(tokenAmount)
	fee := s.conv.Fee(fiatAmount)
	netAmount := fiatAmount - fee
	if netAmount < s.conv.MinNetAmount {
		return nil, ErrBelowMinimumNet
	}

	request := models.WithdrawalRequestDB{
		RequestID:         uuid.New(),
		AccountID:         userID,
		TokenAmount:       tokenAmount,
		FiatAmount:        fiatAmount,
		ProcessingFee:     fee,
		NetAmount:         netAmount,
		Method:            method,
		BankAccountNumber: beneficiary.BankAccountNumber,
		RoutingCode:       beneficiary.RoutingCode,
		UPIHandle:         beneficiary.UPIHandle,
		Status:            models.WithdrawalPending,
		DebitReferenceID:  uuid.NewString(),
		RequestedAt:       time.Now(),
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, txErr := s.applyDebit(ctx, userID, tokenAmount, "withdrawal request "+request.RequestID.String(), request.DebitReferenceID); txErr != nil {
			return txErr
		}
		return s.withdrawals.Save(ctx, request)
	})
	if err != nil {
		logger.Log.Errorw("failed to initiate withdrawal", "userID", userID, "tokenAmount", tokenAmount, "error", err)
		return nil, err
	}

	s.invalidateBalance(ctx, userID)
	s.publishEvent(ctx, models.TransactionEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		AccountID:   userID.String(),
		Operation:   "withdrawal_initiated",
		TokenAmount: tokenAmount,
		FiatAmount:  netAmount,
		ReferenceID: request.DebitReferenceID,
	})

	return &request, nil
}

// GetWithdrawal returns a withdrawal request by id.
func (s *WalletService) GetWithdrawal(ctx context.Context, requestID uuid.UUID) (*models.WithdrawalRequestDB, error) {
	request, err := s.withdrawalReader.GetByID(ctx, requestID)
	if err != nil {
		logger.Log.Errorw("failed to get withdrawal request", "requestID", requestID, "error", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrWithdrawalNotFound
	}
	return request, nil
}

// ReconcileFailed re-credits the tokens of a failed withdrawal and
// appends a reversal ledger entry. The reversal happens at most once
// per request; it is driven by an operator or a reconciliation job,
// never by the settlement processor itself.
func (s *WalletService) ReconcileFailed(ctx context.Context, requestID uuid.UUID) (newBalance float64, err error) {
	request, err := s.withdrawalReader.GetByID(ctx, requestID)
	if err != nil {
		return 0, err
	}
	if request == nil {
		return 0, ErrWithdrawalNotFound
	}
	if request.Status != models.WithdrawalFailed {
		return 0, ErrInvalidWithdrawalState
	}

	referenceID := uuid.NewString()
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		reversed, txErr := s.withdrawals.MarkReversed(ctx, requestID)
		if txErr != nil {
			return txErr
		}
		if !reversed {
			return ErrInvalidWithdrawalState
		}

		newBalance, txErr = s.applyCredit(ctx, request.AccountID, request.TokenAmount,
			"reversal of failed withdrawal "+requestID.String(), referenceID)
		return txErr
	})
	if err != nil {
		logger.Log.Errorw("failed to reconcile withdrawal", "requestID", requestID, "error", err)
		return 0, err
	}

	s.invalidateBalance(ctx, request.AccountID)
	s.publishEvent(ctx, models.TransactionEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		AccountID:   request.AccountID.String(),
		Operation:   "withdrawal_reversed",
		TokenAmount: request.TokenAmount,
		ReferenceID: referenceID,
	})

	return newBalance, nil
}
