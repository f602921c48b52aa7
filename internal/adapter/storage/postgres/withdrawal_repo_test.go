package postgres

import (
	"context"
	"testing"
	"time"

	"gd-arcade/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWithdrawal() *domain.Withdrawal {
	return &domain.Withdrawal{
		ID:            uuid.New(),
		WalletAddress: testWallet,
		Amount:        domain.GDollars(500),
		Status:        domain.WithdrawalStatusPending,
		RequestedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
}

func withdrawalColumnNames() []string {
	return []string{"id", "wallet_address", "amount", "tx_hash", "status", "failure_reason", "requested_at", "completed_at"}
}

func withdrawalRow(w *domain.Withdrawal) *pgxmock.Rows {
	return pgxmock.NewRows(withdrawalColumnNames()).AddRow(
		w.ID, w.WalletAddress, w.Amount, w.TxHash, w.Status,
		w.FailureReason, w.RequestedAt, w.CompletedAt,
	)
}

func TestWithdrawalRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	w := newTestWithdrawal()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO minigame_withdrawals_log").
		WithArgs(w.ID, w.WalletAddress, w.Amount, w.Status, w.RequestedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	w := newTestWithdrawal()

	mock.ExpectQuery("SELECT .+ FROM minigame_withdrawals_log WHERE id").
		WithArgs(w.ID).
		WillReturnRows(withdrawalRow(w))

	result, err := repo.GetByID(context.Background(), w.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.Amount, result.Amount)
	assert.Equal(t, domain.WithdrawalStatusPending, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_MarkCompleted(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	id := uuid.New()
	completedAt := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE minigame_withdrawals_log").
		WithArgs(domain.WithdrawalStatusCompleted, "0xdeadbeef", completedAt, id, domain.WithdrawalStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	ok, err := repo.MarkCompleted(context.Background(), tx, id, "0xdeadbeef", completedAt)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_MarkFailed_AlreadyFinalized(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	id := uuid.New()
	completedAt := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE minigame_withdrawals_log").
		WithArgs(domain.WithdrawalStatusFailed, "bridge rejected", completedAt, id, domain.WithdrawalStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	ok, err := repo.MarkFailed(context.Background(), tx, id, "bridge rejected", completedAt)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepo_ListByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWithdrawalRepo(mock)
	w := newTestWithdrawal()

	mock.ExpectQuery("SELECT .+ FROM minigame_withdrawals_log").
		WithArgs(testWallet, 20, 0).
		WillReturnRows(withdrawalRow(w))

	withdrawals, err := repo.ListByWallet(context.Background(), testWallet, 20, 0)
	require.NoError(t, err)
	require.Len(t, withdrawals, 1)
	assert.Equal(t, w.ID, withdrawals[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
