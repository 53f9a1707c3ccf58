package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/Atulkumarjha/JusPay-sub000/internal/models"
)

func TestLedgerRepository_SaveAndList(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	accountID := seedAccount(t, db, "alice", 0)

	writer := NewLedgerWriterRepository(db)
	reader := NewLedgerReaderRepository(db)

	for i := 1; i <= 5; i++ {
		entry := models.LedgerEntryDB{
			EntryID:     uuid.New(),
			AccountID:   accountID,
			Direction:   models.DirectionCredit,
			TokenAmount: float64(i),
			FiatAmount:  float64(i) * 3,
			Status:      models.LedgerCompleted,
			Description: fmt.Sprintf("deposit %d", i),
			ReferenceID: uuid.NewString(),
		}
		assert.NoError(t, writer.Save(ctx, entry))
	}

	entries, err := reader.ListByAccount(ctx, accountID, 3)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)

	entries, err = reader.ListByAccount(ctx, accountID, 50)
	assert.NoError(t, err)
	assert.Len(t, entries, 5)

	other, err := reader.ListByAccount(ctx, uuid.New(), 50)
	assert.NoError(t, err)
	assert.Empty(t, other)
}

func TestLedgerRepository_DuplicateReferenceRejected(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	accountID := seedAccount(t, db, "alice", 0)
	writer := NewLedgerWriterRepository(db)

	referenceID := uuid.NewString()
	entry := models.LedgerEntryDB{
		EntryID:     uuid.New(),
		AccountID:   accountID,
		Direction:   models.DirectionCredit,
		TokenAmount: 10,
		FiatAmount:  30,
		Status:      models.LedgerCompleted,
		Description: "deposit",
		ReferenceID: referenceID,
	}
	assert.NoError(t, writer.Save(ctx, entry))

	// Same reference on a second insert must hit the unique constraint.
	entry.EntryID = uuid.New()
	assert.Error(t, writer.Save(ctx, entry))
}

func TestLedgerRepository_BalanceMatchesLedger(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	accountID := seedAccount(t, db, "alice", 0)

	accounts := NewAccountWriterRepository(db)
	ledger := NewLedgerWriterRepository(db)

	write := func(direction string, amount float64) {
		var err error
		if direction == models.DirectionCredit {
			_, err = accounts.SaveCredit(ctx, accountID, amount)
		} else {
			_, err = accounts.SaveDebit(ctx, accountID, amount)
		}
		assert.NoError(t, err)
		assert.NoError(t, ledger.Save(ctx, models.LedgerEntryDB{
			EntryID:     uuid.New(),
			AccountID:   accountID,
			Direction:   direction,
			TokenAmount: amount,
			FiatAmount:  amount * 3,
			Status:      models.LedgerCompleted,
			ReferenceID: uuid.NewString(),
		}))
	}

	write(models.DirectionCredit, 100)
	write(models.DirectionDebit, 40)
	write(models.DirectionCredit, 25)
	write(models.DirectionDebit, 5)

	var sum float64
	err := db.Get(&sum, `
		SELECT COALESCE(SUM(CASE WHEN direction = 'credit' THEN token_amount ELSE -token_amount END), 0)
		FROM ledger_entries WHERE account_id = $1`, accountID)
	assert.NoError(t, err)
	assert.Equal(t, getTokenBalance(t, db, accountID), sum)
}
