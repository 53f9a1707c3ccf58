package bank

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulator_CreateAccount(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulator(100000, 500)

	first := sim.CreateAccount(ctx, "Alice")
	second := sim.CreateAccount(ctx, "Bob")

	assert.Equal(t, "SIMB0000000001", first.AccountNumber)
	assert.Equal(t, "SIMB0000000002", second.AccountNumber)
	assert.Equal(t, 500.0, first.Balance)
	assert.Equal(t, 100000.0, first.MonthlyTransferLimit)
	assert.Equal(t, StatusActive, first.Status)
}

func TestSimulator_CreditAndDebit(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulator(100000, 500)
	account := sim.CreateAccount(ctx, "Alice")

	txn, updated, err := sim.Credit(ctx, account.AccountNumber, 200, "ref_1", "payout")
	require.NoError(t, err)
	assert.Equal(t, TypeCredit, txn.Type)
	assert.Equal(t, 500.0, txn.BalanceBefore)
	assert.Equal(t, 700.0, txn.BalanceAfter)
	assert.Equal(t, 700.0, updated.Balance)
	assert.Equal(t, 200.0, updated.MonthlyUsed)

	txn, updated, err = sim.Debit(ctx, account.AccountNumber, 150, "ref_2", "fee sweep")
	require.NoError(t, err)
	assert.Equal(t, TypeDebit, txn.Type)
	assert.Equal(t, 550.0, txn.BalanceAfter)
	assert.Equal(t, 550.0, updated.Balance)
	// Debits do not consume the monthly transfer limit.
	assert.Equal(t, 200.0, updated.MonthlyUsed)
}

func TestSimulator_MonthlyLimit(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulator(100000, 0)
	account := sim.CreateAccount(ctx, "Alice")

	_, _, err := sim.Credit(ctx, account.AccountNumber, 99000, "ref_1", "bulk payout")
	require.NoError(t, err)

	// 99000 used of 100000: another 2000 must be rejected and leave the
	// balance untouched.
	_, _, err = sim.Credit(ctx, account.AccountNumber, 2000, "ref_2", "over limit")
	assert.Equal(t, ErrMonthlyLimitExceeded, err)

	got, err := sim.GetAccount(ctx, account.AccountNumber)
	require.NoError(t, err)
	assert.Equal(t, 99000.0, got.Balance)
	assert.Equal(t, 99000.0, got.MonthlyUsed)

	// Exactly up to the limit still passes.
	_, updated, err := sim.Credit(ctx, account.AccountNumber, 1000, "ref_3", "tops up limit")
	require.NoError(t, err)
	assert.Equal(t, 100000.0, updated.MonthlyUsed)

	sim.ResetMonthlyUsage(ctx)
	_, updated, err = sim.Credit(ctx, account.AccountNumber, 2000, "ref_4", "new month")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, updated.MonthlyUsed)
}

func TestSimulator_DebitInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulator(100000, 100)
	account := sim.CreateAccount(ctx, "Alice")

	_, _, err := sim.Debit(ctx, account.AccountNumber, 100.01, "ref_1", "over balance")
	assert.Equal(t, ErrInsufficientFunds, err)

	got, err := sim.GetAccount(ctx, account.AccountNumber)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.Balance)
}

func TestSimulator_Deactivate(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulator(100000, 100)
	account := sim.CreateAccount(ctx, "Alice")

	require.NoError(t, sim.Deactivate(ctx, account.AccountNumber))

	_, _, err := sim.Credit(ctx, account.AccountNumber, 10, "ref_1", "after deactivation")
	assert.Equal(t, ErrAccountInactive, err)

	_, _, err = sim.Debit(ctx, account.AccountNumber, 10, "ref_2", "after deactivation")
	assert.Equal(t, ErrAccountInactive, err)
}

func TestSimulator_UnknownAccount(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulator(100000, 100)

	_, _, err := sim.Credit(ctx, "SIMB0000000099", 10, "ref", "nobody home")
	assert.Equal(t, ErrAccountNotFound, err)

	_, err = sim.GetAccount(ctx, "SIMB0000000099")
	assert.Equal(t, ErrAccountNotFound, err)

	_, err = sim.GetTransactionHistory(ctx, "SIMB0000000099", 10)
	assert.Equal(t, ErrAccountNotFound, err)

	_, err = sim.GenerateStatement(ctx, "SIMB0000000099", 30)
	assert.Equal(t, ErrAccountNotFound, err)
}

func TestSimulator_TransactionHistory(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulator(1000000, 0)
	account := sim.CreateAccount(ctx, "Alice")

	for i := 1; i <= 5; i++ {
		_, _, err := sim.Credit(ctx, account.AccountNumber, float64(i), fmt.Sprintf("ref_%d", i), "seed")
		require.NoError(t, err)
	}

	history, err := sim.GetTransactionHistory(ctx, account.AccountNumber, 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	// Newest first.
	assert.Equal(t, "ref_5", history[0].Reference)
	assert.Equal(t, "ref_4", history[1].Reference)
	assert.Equal(t, "ref_3", history[2].Reference)
}

func TestSimulator_HistoryRetentionCap(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulator(1e9, 0)
	account := sim.CreateAccount(ctx, "Alice")

	for i := 1; i <= historyRetention+10; i++ {
		_, _, err := sim.Credit(ctx, account.AccountNumber, 1, fmt.Sprintf("ref_%d", i), "seed")
		require.NoError(t, err)
	}

	history, err := sim.GetTransactionHistory(ctx, account.AccountNumber, 0)
	require.NoError(t, err)
	require.Len(t, history, historyRetention)
	// The oldest entries were evicted; the newest survives at the front.
	assert.Equal(t, fmt.Sprintf("ref_%d", historyRetention+10), history[0].Reference)
	assert.Equal(t, "ref_11", history[len(history)-1].Reference)
}

func TestSimulator_GenerateStatement(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulator(1000000, 500)
	account := sim.CreateAccount(ctx, "Alice")

	_, _, err := sim.Credit(ctx, account.AccountNumber, 300, "ref_1", "payout")
	require.NoError(t, err)
	_, _, err = sim.Debit(ctx, account.AccountNumber, 100, "ref_2", "sweep")
	require.NoError(t, err)

	stmt, err := sim.GenerateStatement(ctx, account.AccountNumber, 30)
	require.NoError(t, err)

	assert.Equal(t, 700.0, stmt.ClosingBalance)
	assert.Equal(t, 300.0, stmt.TotalCredits)
	assert.Equal(t, 100.0, stmt.TotalDebits)
	assert.Equal(t, 500.0, stmt.OpeningBalance)
	assert.Len(t, stmt.Transactions, 2)
	assert.InDelta(t, stmt.ClosingBalance, stmt.OpeningBalance+stmt.TotalCredits-stmt.TotalDebits, 1e-9)
}

func TestSimulator_ConcurrentCredits(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulator(1e9, 0)
	account := sim.CreateAccount(ctx, "Alice")

	const workers = 20
	const perWorker = 50

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_, _, err := sim.Credit(ctx, account.AccountNumber, 1, "ref", "concurrent")
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	got, err := sim.GetAccount(ctx, account.AccountNumber)
	require.NoError(t, err)
	assert.Equal(t, float64(workers*perWorker), got.Balance)
	assert.Equal(t, float64(workers*perWorker), got.MonthlyUsed)
}
