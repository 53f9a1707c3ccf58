package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/Atulkumarjha/JusPay-sub000/internal/models"
)

func TestTxRunner_CommitAndRollback(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	accountID := seedAccount(t, db, "alice", 100)

	accounts := NewAccountWriterRepository(db)
	runner := NewTxRunner(db)

	t.Run("commit on success", func(t *testing.T) {
		err := runner.RunInTx(ctx, func(ctx context.Context) error {
			_, txErr := accounts.SaveDebit(ctx, accountID, 30)
			return txErr
		})
		assert.NoError(t, err)
		assert.Equal(t, 70.0, getTokenBalance(t, db, accountID))
	})

	t.Run("rollback on error", func(t *testing.T) {
		err := runner.RunInTx(ctx, func(ctx context.Context) error {
			if _, txErr := accounts.SaveDebit(ctx, accountID, 30); txErr != nil {
				return txErr
			}
			return errors.New("boom")
		})
		assert.EqualError(t, err, "boom")
		// The debit inside the failed scope is gone.
		assert.Equal(t, 70.0, getTokenBalance(t, db, accountID))
	})
}

func TestTxRunner_DebitAndRequestCommitTogether(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	accountID := seedAccount(t, db, "alice", 100)

	accounts := NewAccountWriterRepository(db)
	withdrawals := NewWithdrawalWriterRepository(db)
	runner := NewTxRunner(db)

	request := models.WithdrawalRequestDB{
		RequestID:        uuid.New(),
		AccountID:        accountID,
		TokenAmount:      40,
		FiatAmount:       120,
		ProcessingFee:    2.4,
		NetAmount:        117.6,
		Method:           models.MethodUPI,
		UPIHandle:        "alice@upi",
		DebitReferenceID: "debit-ref-1",
	}

	// Break the request insert with a duplicate primary key on the
	// second run: the debit from that run must roll back with it.
	err := runner.RunInTx(ctx, func(ctx context.Context) error {
		if _, txErr := accounts.SaveDebit(ctx, accountID, 40); txErr != nil {
			return txErr
		}
		return withdrawals.Save(ctx, request)
	})
	assert.NoError(t, err)
	assert.Equal(t, 60.0, getTokenBalance(t, db, accountID))

	err = runner.RunInTx(ctx, func(ctx context.Context) error {
		if _, txErr := accounts.SaveDebit(ctx, accountID, 40); txErr != nil {
			return txErr
		}
		return withdrawals.Save(ctx, request)
	})
	assert.Error(t, err)
	assert.Equal(t, 60.0, getTokenBalance(t, db, accountID))
}

func TestTxRunner_NestedJoinsTransaction(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	accountID := seedAccount(t, db, "alice", 100)

	accounts := NewAccountWriterRepository(db)
	runner := NewTxRunner(db)

	err := runner.RunInTx(ctx, func(ctx context.Context) error {
		if _, txErr := accounts.SaveDebit(ctx, accountID, 10); txErr != nil {
			return txErr
		}
		// The nested scope joins the outer transaction; its error
		// rolls back both debits.
		return runner.RunInTx(ctx, func(ctx context.Context) error {
			if _, txErr := accounts.SaveDebit(ctx, accountID, 10); txErr != nil {
				return txErr
			}
			return errors.New("inner failure")
		})
	})
	assert.EqualError(t, err, "inner failure")
	assert.Equal(t, 100.0, getTokenBalance(t, db, accountID))
}
