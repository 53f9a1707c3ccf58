package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/Atulkumarjha/JusPay-sub000/internal/logger"
	"github.com/Atulkumarjha/JusPay-sub000/internal/models"
)

// LedgerWriterRepository appends entries to the append-only ledger.
type LedgerWriterRepository struct {
	db *sqlx.DB
}

func NewLedgerWriterRepository(db *sqlx.DB) *LedgerWriterRepository {
	return &LedgerWriterRepository{db: db}
}

// Save inserts a ledger entry. Entries are never updated or deleted;
// the unique reference_id rejects duplicate writes on retry.
func (r *LedgerWriterRepository) Save(ctx context.Context, entry models.LedgerEntryDB) error {
	query := `
		INSERT INTO ledger_entries
			(entry_id, account_id, direction, token_amount, fiat_amount, status, description, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	args := []any{
		entry.EntryID, entry.AccountID, entry.Direction,
		entry.TokenAmount, entry.FiatAmount, entry.Status,
		entry.Description, entry.ReferenceID,
	}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// LedgerReaderRepository handles ledger read operations
type LedgerReaderRepository struct {
	db *sqlx.DB
}

func NewLedgerReaderRepository(db *sqlx.DB) *LedgerReaderRepository {
	return &LedgerReaderRepository{db: db}
}

// ListByAccount returns the newest entries for an account, newest first.
func (r *LedgerReaderRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]models.LedgerEntryDB, error) {
	const query = `
		SELECT entry_id, account_id, direction, token_amount, fiat_amount, status, description, reference_id, created_at
		FROM ledger_entries
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var entries []models.LedgerEntryDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &entries, query, accountID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, limit},
		"result", len(entries),
		"error", err,
	)

	return entries, err
}
