package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/Atulkumarjha/JusPay-sub000/internal/logger"
	"github.com/Atulkumarjha/JusPay-sub000/internal/models"
)

// AccountWriterRepository handles account write operations
type AccountWriterRepository struct {
	db *sqlx.DB
}

func NewAccountWriterRepository(db *sqlx.DB) *AccountWriterRepository {
	return &AccountWriterRepository{db: db}
}

// Save creates the wallet account for a user with a zero balance.
// Safe to call twice: an existing account is left untouched.
func (r *AccountWriterRepository) Save(ctx context.Context, userID uuid.UUID) error {
	query := `
		INSERT INTO accounts (user_id, token_balance, total_withdrawn, status, created_at, updated_at)
		VALUES ($1, 0, 0, 'active', NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}

// SaveCredit increases the token balance of an active account in a
// single statement and returns the new balance.
func (r *AccountWriterRepository) SaveCredit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error) {
	query := `
		UPDATE accounts
		SET token_balance = token_balance + $2, updated_at = NOW()
		WHERE user_id = $1 AND status = 'active'
		RETURNING token_balance
	`

	var balance float64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &balance, query, userID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// SaveDebit decreases the token balance in a single conditional
// statement: the balance check and the write happen atomically, so two
// concurrent debits can never overdraw the account. Returns
// sql.ErrNoRows when the balance is too low or the account is missing.
func (r *AccountWriterRepository) SaveDebit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error) {
	query := `
		UPDATE accounts
		SET token_balance = token_balance - $2, updated_at = NOW()
		WHERE user_id = $1 AND status = 'active' AND token_balance >= $2
		RETURNING token_balance
	`

	var balance float64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &balance, query, userID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// AddWithdrawn bumps the cumulative withdrawn counter after a
// settlement completes.
func (r *AccountWriterRepository) AddWithdrawn(ctx context.Context, userID uuid.UUID, tokenAmount float64) error {
	query := `
		UPDATE accounts
		SET total_withdrawn = total_withdrawn + $2, updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, userID, tokenAmount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, tokenAmount},
		"error", err,
	)

	return err
}

// AccountReaderRepository handles account read operations
type AccountReaderRepository struct {
	db *sqlx.DB
}

func NewAccountReaderRepository(db *sqlx.DB) *AccountReaderRepository {
	return &AccountReaderRepository{db: db}
}

// GetByUserID retrieves the account for a user. Returns (nil, nil)
// when the user has no account.
func (r *AccountReaderRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.AccountDB, error) {
	const query = `
		SELECT user_id, token_balance, total_withdrawn, status, created_at, updated_at
		FROM accounts
		WHERE user_id = $1
	`

	var account models.AccountDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &account, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", account,
		"error", err,
	)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}
