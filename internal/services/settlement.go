package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/Atulkumarjha/JusPay-sub000/internal/bank"
	"github.com/Atulkumarjha/JusPay-sub000/internal/facades"
	"github.com/Atulkumarjha/JusPay-sub000/internal/logger"
	"github.com/Atulkumarjha/JusPay-sub000/internal/models"
)

// BankCreditor credits the external (simulated) bank account.
type BankCreditor interface {
	Credit(ctx context.Context, accountNumber string, amount float64, reference, description string) (*bank.Transaction, *bank.Account, error)
}

// TrackingOrderCreator obtains a tracking reference from the active gateway.
type TrackingOrderCreator interface {
	CreateTrackingOrder(ctx context.Context, order facades.TrackingOrder) (string, error)
}

// SettlementService drives a withdrawal request through
// pending -> processing -> completed | failed, crediting the bank
// account and recording the audit trail.
type SettlementService struct {
	withdrawalReader WithdrawalReader
	withdrawals      WithdrawalWriter
	accounts         AccountWriter
	ledger           LedgerWriter
	bank             BankCreditor
	gateway          TrackingOrderCreator
	tx               TxRunner
	kafkaWriter      KafkaWriter
	gatewayTimeout   time.Duration
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(
	withdrawalReader WithdrawalReader,
	withdrawals WithdrawalWriter,
	accounts AccountWriter,
	ledger LedgerWriter,
	bankCreditor BankCreditor,
	gateway TrackingOrderCreator,
	tx TxRunner,
	kafkaWriter KafkaWriter,
	gatewayTimeout time.Duration,
) *SettlementService {
	if gatewayTimeout <= 0 {
		gatewayTimeout = 5 * time.Second
	}
	return &SettlementService{
		withdrawalReader: withdrawalReader,
		withdrawals:      withdrawals,
		accounts:         accounts,
		ledger:           ledger,
		bank:             bankCreditor,
		gateway:          gateway,
		tx:               tx,
		kafkaWriter:      kafkaWriter,
		gatewayTimeout:   gatewayTimeout,
	}
}

// Process settles one withdrawal request. Re-invoking on a terminal
// request is a no-op returning the stored state, so a retry can never
// credit the bank account twice. A request caught mid-flight in
// processing yields ErrInvalidWithdrawalState.
func (s *SettlementService) Process(ctx context.Context, requestID uuid.UUID) (*models.WithdrawalRequestDB, error) {
	request, err := s.withdrawalReader.GetByID(ctx, requestID)
	if err != nil {
		logger.Log.Errorw("failed to load withdrawal request", "requestID", requestID, "error", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrWithdrawalNotFound
	}
	if request.Terminal() {
		return request, nil
	}
	if request.Status != models.WithdrawalPending {
		return request, ErrInvalidWithdrawalState
	}

	claimed, err := s.withdrawals.MarkProcessing(ctx, requestID)
	if err != nil {
		logger.Log.Errorw("failed to claim withdrawal request", "requestID", requestID, "error", err)
		return nil, err
	}
	if !claimed {
		// Lost the race to a concurrent trigger.
		return s.reload(ctx, requestID)
	}

	trackingID := s.requestTracking(ctx, request)
	settlementRef := settlementReference(trackingID)

	if request.Method == models.MethodBankTransfer {
		description := fmt.Sprintf("withdrawal %s payout", request.RequestID)
		_, _, creditErr := s.bank.Credit(ctx, request.BankAccountNumber, request.NetAmount, settlementRef, description)
		if creditErr != nil {
			return s.fail(ctx, request, trackingID, creditErr)
		}
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Audit entry: the tokens were already debited at initiation,
		// so the token amount here is zero to keep the ledger sum equal
		// to the balance.
		entry := models.LedgerEntryDB{
			EntryID:     uuid.New(),
			AccountID:   request.AccountID,
			Direction:   models.DirectionDebit,
			TokenAmount: 0,
			FiatAmount:  request.NetAmount,
			Status:      models.LedgerCompleted,
			Description: fmt.Sprintf("withdrawal settlement for request %s", request.RequestID),
			ReferenceID: settlementRef,
		}
		if txErr := s.ledger.Save(ctx, entry); txErr != nil {
			return txErr
		}
		if txErr := s.accounts.AddWithdrawn(ctx, request.AccountID, request.TokenAmount); txErr != nil {
			return txErr
		}
		return s.withdrawals.MarkCompleted(ctx, request.RequestID, trackingID, settlementRef)
	})
	if err != nil {
		logger.Log.Errorw("failed to record settlement", "requestID", requestID, "settlementRef", settlementRef, "error", err)
		return nil, err
	}

	s.publishOutcome(ctx, request, "settlement_completed", settlementRef)
	return s.reload(ctx, requestID)
}

// requestTracking asks the gateway manager for a tracking id with a
// bounded timeout. Tracking failures are logged and ignored: tracking
// is observability, not correctness.
func (s *SettlementService) requestTracking(ctx context.Context, request *models.WithdrawalRequestDB) string {
	if s.gateway == nil {
		return ""
	}

	trackCtx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()

	trackingID, err := s.gateway.CreateTrackingOrder(trackCtx, facades.TrackingOrder{
		Amount:   request.NetAmount,
		Currency: "INR",
		Receipt:  request.RequestID.String(),
	})
	if err != nil {
		logger.Log.Warnw("tracking order failed, continuing settlement", "requestID", request.RequestID, "error", err)
		return ""
	}
	return trackingID
}

// fail marks the request failed with the cause in notes. The ledger
// debit stands: compensation is an explicit reconciliation step, never
// automatic.
func (s *SettlementService) fail(ctx context.Context, request *models.WithdrawalRequestDB, trackingID string, cause error) (*models.WithdrawalRequestDB, error) {
	logger.Log.Errorw("settlement failed", "requestID", request.RequestID, "error", cause)

	if err := s.withdrawals.MarkFailed(ctx, request.RequestID, trackingID, cause.Error()); err != nil {
		logger.Log.Errorw("failed to mark withdrawal failed", "requestID", request.RequestID, "error", err)
		return nil, err
	}

	s.publishOutcome(ctx, request, "settlement_failed", "")
	return s.reload(ctx, request.RequestID)
}

func (s *SettlementService) reload(ctx context.Context, requestID uuid.UUID) (*models.WithdrawalRequestDB, error) {
	request, err := s.withdrawalReader.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrWithdrawalNotFound
	}
	return request, nil
}

func (s *SettlementService) publishOutcome(ctx context.Context, request *models.WithdrawalRequestDB, operation, settlementRef string) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.TransactionEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		AccountID:   request.AccountID.String(),
		Operation:   operation,
		TokenAmount: request.TokenAmount,
		FiatAmount:  request.NetAmount,
		ReferenceID: settlementRef,
	}
	publishEvent(ctx, s.kafkaWriter, event)
}

// settlementReference derives a unique settlement reference from the
// tracking id when one exists.
func settlementReference(trackingID string) string {
	if trackingID == "" {
		return fmt.Sprintf("settle_%s", uuid.NewString())
	}
	return fmt.Sprintf("settle_%s", trackingID)
}
