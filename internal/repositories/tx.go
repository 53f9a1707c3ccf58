package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/Atulkumarjha/JusPay-sub000/internal/logger"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// InjectTx stores a transaction in the context
func InjectTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext retrieves the transaction from the context. Returns nil if not present.
func TxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// TxRunner executes a function inside a database transaction. The
// transaction is injected into the context so that repositories pick
// it up; nested calls join the transaction already in flight.
type TxRunner struct {
	db *sqlx.DB
}

func NewTxRunner(db *sqlx.DB) *TxRunner {
	return &TxRunner{db: db}
}

// RunInTx begins a transaction, runs fn with the transaction in the
// context, and commits. Any error from fn rolls back every write made
// inside the scope.
func (r *TxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if TxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(InjectTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return err
	}
	return nil
}

// executor returns the transaction from the context when one is in
// flight, otherwise the plain database handle.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
