package postgres

import (
	"context"
	"testing"
	"time"

	"gd-arcade/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGameDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func TestDailyLimitRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDailyLimitRepo(mock)

	rows := pgxmock.NewRows([]string{"id", "wallet_address", "game_type", "game_date", "plays_today", "earned_today"}).
		AddRow(int64(7), testWallet, domain.GameTypeCrash, testGameDate, 5, domain.GDollars(120))

	mock.ExpectQuery("SELECT .+ FROM daily_game_limits").
		WithArgs(testWallet, domain.GameTypeCrash, testGameDate).
		WillReturnRows(rows)

	limit, err := repo.Get(context.Background(), testWallet, domain.GameTypeCrash, testGameDate)
	require.NoError(t, err)
	require.NotNil(t, limit)
	assert.Equal(t, 5, limit.PlaysToday)
	assert.Equal(t, domain.GDollars(120), limit.EarnedToday)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyLimitRepo_Get_NoPlaysYet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDailyLimitRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM daily_game_limits").
		WithArgs(testWallet, domain.GameTypeCrash, testGameDate).
		WillReturnRows(pgxmock.NewRows([]string{"id", "wallet_address", "game_type", "game_date", "plays_today", "earned_today"}))

	limit, err := repo.Get(context.Background(), testWallet, domain.GameTypeCrash, testGameDate)
	require.NoError(t, err)
	assert.Nil(t, limit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyLimitRepo_ReservePlay(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDailyLimitRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO daily_game_limits").
		WithArgs(testWallet, domain.GameTypeCrash, testGameDate, 20).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	reserved, err := repo.ReservePlay(context.Background(), tx, testWallet, domain.GameTypeCrash, testGameDate, 20)
	require.NoError(t, err)
	assert.True(t, reserved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyLimitRepo_ReservePlay_CapReached(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDailyLimitRepo(mock)

	// DO UPDATE ... WHERE plays_today < max matched nothing
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO daily_game_limits").
		WithArgs(testWallet, domain.GameTypeCrash, testGameDate, 20).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	reserved, err := repo.ReservePlay(context.Background(), tx, testWallet, domain.GameTypeCrash, testGameDate, 20)
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyLimitRepo_AddEarned(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDailyLimitRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE daily_game_limits").
		WithArgs(domain.GDollars(169), testWallet, domain.GameTypeCrash, testGameDate).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.AddEarned(context.Background(), tx, testWallet, domain.GameTypeCrash, testGameDate, domain.GDollars(169))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
