package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/Atulkumarjha/JusPay-sub000/internal/logger"
	"github.com/Atulkumarjha/JusPay-sub000/internal/models"
)

// WithdrawalWriterRepository handles withdrawal request writes.
type WithdrawalWriterRepository struct {
	db *sqlx.DB
}

func NewWithdrawalWriterRepository(db *sqlx.DB) *WithdrawalWriterRepository {
	return &WithdrawalWriterRepository{db: db}
}

// Save inserts a new withdrawal request in pending state.
func (r *WithdrawalWriterRepository) Save(ctx context.Context, w models.WithdrawalRequestDB) error {
	query := `
		INSERT INTO withdrawal_requests
			(request_id, account_id, token_amount, fiat_amount, processing_fee, net_amount,
			 method, bank_account_number, routing_code, upi_handle,
			 status, debit_reference_id, notes, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'pending', $11, '', NOW())
	`
	args := []any{
		w.RequestID, w.AccountID, w.TokenAmount, w.FiatAmount, w.ProcessingFee, w.NetAmount,
		w.Method, w.BankAccountNumber, w.RoutingCode, w.UPIHandle,
		w.DebitReferenceID,
	}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// MarkProcessing performs the pending -> processing transition as a
// conditional update. Returns false when the request was not pending,
// so concurrent settlement triggers cannot both proceed.
func (r *WithdrawalWriterRepository) MarkProcessing(ctx context.Context, requestID uuid.UUID) (bool, error) {
	query := `
		UPDATE withdrawal_requests
		SET status = 'processing'
		WHERE request_id = $1 AND status = 'pending'
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, requestID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// MarkCompleted moves a processing request to its terminal completed
// state, stamping the settlement references and processed_at.
func (r *WithdrawalWriterRepository) MarkCompleted(ctx context.Context, requestID uuid.UUID, trackingRef, settlementRef string) error {
	query := `
		UPDATE withdrawal_requests
		SET status = 'completed', tracking_reference_id = $2, settlement_reference_id = $3, processed_at = NOW()
		WHERE request_id = $1 AND status = 'processing'
	`
	args := []any{requestID, trackingRef, settlementRef}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// MarkFailed moves a processing request to its terminal failed state,
// recording the cause in notes. The ledger debit is left standing for
// reconciliation.
func (r *WithdrawalWriterRepository) MarkFailed(ctx context.Context, requestID uuid.UUID, trackingRef, notes string) error {
	query := `
		UPDATE withdrawal_requests
		SET status = 'failed', tracking_reference_id = $2, notes = $3, processed_at = NOW()
		WHERE request_id = $1 AND status = 'processing'
	`
	args := []any{requestID, trackingRef, notes}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// MarkReversed records that a failed request's tokens were re-credited.
// Conditional on reversed_at being unset, so a reversal can happen at
// most once per request.
func (r *WithdrawalWriterRepository) MarkReversed(ctx context.Context, requestID uuid.UUID) (bool, error) {
	query := `
		UPDATE withdrawal_requests
		SET reversed_at = NOW(), notes = notes || ' | tokens re-credited'
		WHERE request_id = $1 AND status = 'failed' AND reversed_at IS NULL
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, requestID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// WithdrawalReaderRepository handles withdrawal request reads.
type WithdrawalReaderRepository struct {
	db *sqlx.DB
}

func NewWithdrawalReaderRepository(db *sqlx.DB) *WithdrawalReaderRepository {
	return &WithdrawalReaderRepository{db: db}
}

// GetByID retrieves a withdrawal request. Returns (nil, nil) when the
// request does not exist.
func (r *WithdrawalReaderRepository) GetByID(ctx context.Context, requestID uuid.UUID) (*models.WithdrawalRequestDB, error) {
	const query = `
		SELECT request_id, account_id, token_amount, fiat_amount, processing_fee, net_amount,
		       method, bank_account_number, routing_code, upi_handle,
		       status, debit_reference_id, tracking_reference_id, settlement_reference_id,
		       notes, requested_at, processed_at, reversed_at
		FROM withdrawal_requests
		WHERE request_id = $1
	`

	var w models.WithdrawalRequestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &w, query, requestID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID},
		"result", w.Status,
		"error", err,
	)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}
