package service

import (
	"context"
	"testing"

	"gd-arcade/internal/core/domain"
	"gd-arcade/internal/core/ports"
	"gd-arcade/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reportingServiceDeps struct {
	balanceRepo    *mocks.MockBalanceRepository
	depositRepo    *mocks.MockDepositRepository
	sessionRepo    *mocks.MockSessionRepository
	withdrawalRepo *mocks.MockWithdrawalRepository
}

func setupReportingService(t *testing.T) (*ReportingServiceImpl, reportingServiceDeps) {
	ctrl := gomock.NewController(t)
	deps := reportingServiceDeps{
		balanceRepo:    mocks.NewMockBalanceRepository(ctrl),
		depositRepo:    mocks.NewMockDepositRepository(ctrl),
		sessionRepo:    mocks.NewMockSessionRepository(ctrl),
		withdrawalRepo: mocks.NewMockWithdrawalRepository(ctrl),
	}
	svc := NewReportingService(
		deps.balanceRepo, deps.depositRepo, deps.sessionRepo, deps.withdrawalRepo,
		domain.GDollars(10), zerolog.Nop(),
	)
	return svc, deps
}

func TestReportingService_GetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("existing balance", func(t *testing.T) {
		svc, deps := setupReportingService(t)
		deps.balanceRepo.EXPECT().GetByWallet(ctx, testWallet).Return(&domain.Balance{
			WalletAddress:  testWallet,
			Available:      domain.GDollars(250),
			TotalWithdrawn: domain.GDollars(40),
		}, nil)

		snap, err := svc.GetBalance(ctx, testWallet)
		require.NoError(t, err)
		assert.Equal(t, domain.GDollars(250), snap.Available)
		assert.Equal(t, domain.GDollars(40), snap.TotalWithdrawn)
		assert.True(t, snap.CanWithdraw)
	})

	t.Run("wallet with no deposits reads as zero", func(t *testing.T) {
		svc, deps := setupReportingService(t)
		deps.balanceRepo.EXPECT().GetByWallet(ctx, testWallet).Return(nil, nil)

		snap, err := svc.GetBalance(ctx, testWallet)
		require.NoError(t, err)
		assert.Equal(t, domain.Amount(0), snap.Available)
		assert.False(t, snap.CanWithdraw)
	})

	t.Run("below the withdrawal minimum", func(t *testing.T) {
		svc, deps := setupReportingService(t)
		deps.balanceRepo.EXPECT().GetByWallet(ctx, testWallet).Return(&domain.Balance{
			WalletAddress: testWallet,
			Available:     domain.GDollars(5),
		}, nil)

		snap, err := svc.GetBalance(ctx, testWallet)
		require.NoError(t, err)
		assert.False(t, snap.CanWithdraw)
	})
}

func TestReportingService_GetHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all three streams", func(t *testing.T) {
		svc, deps := setupReportingService(t)
		deps.sessionRepo.EXPECT().ListByWallet(ctx, testWallet, 10, 0).
			Return([]domain.GameSession{{SessionID: "GAME-3F2A9C01"}}, nil)
		deps.depositRepo.EXPECT().ListByWallet(ctx, testWallet, 10, 0).
			Return([]domain.Deposit{{TxHash: testTxHash}}, nil)
		deps.withdrawalRepo.EXPECT().ListByWallet(ctx, testWallet, 10, 0).
			Return([]domain.Withdrawal{{ID: uuid.New()}}, nil)

		history, err := svc.GetHistory(ctx, testWallet, 10, 0)
		require.NoError(t, err)
		assert.Len(t, history.Sessions, 1)
		assert.Len(t, history.Deposits, 1)
		assert.Len(t, history.Withdrawals, 1)
	})

	t.Run("out-of-range paging falls back to defaults", func(t *testing.T) {
		svc, deps := setupReportingService(t)
		deps.sessionRepo.EXPECT().ListByWallet(ctx, testWallet, 20, 0).Return(nil, nil)
		deps.depositRepo.EXPECT().ListByWallet(ctx, testWallet, 20, 0).Return(nil, nil)
		deps.withdrawalRepo.EXPECT().ListByWallet(ctx, testWallet, 20, 0).Return(nil, nil)

		_, err := svc.GetHistory(ctx, testWallet, 500, -3)
		require.NoError(t, err)
	})
}

func TestReportingService_GetGameStats(t *testing.T) {
	ctx := context.Background()
	svc, deps := setupReportingService(t)
	deps.sessionRepo.EXPECT().StatsByWallet(ctx, testWallet).Return([]ports.GameStats{
		{GameType: domain.GameTypeCrash, TotalPlays: 12, BestScore: 310},
	}, nil)

	stats, err := svc.GetGameStats(ctx, testWallet)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(12), stats[0].TotalPlays)
}

func TestReportingService_GetWithdrawal(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("own withdrawal", func(t *testing.T) {
		svc, deps := setupReportingService(t)
		deps.withdrawalRepo.EXPECT().GetByID(ctx, id).
			Return(&domain.Withdrawal{ID: id, WalletAddress: testWallet}, nil)

		w, err := svc.GetWithdrawal(ctx, testWallet, id)
		require.NoError(t, err)
		assert.Equal(t, id, w.ID)
	})

	t.Run("foreign withdrawal reads as not found", func(t *testing.T) {
		svc, deps := setupReportingService(t)
		deps.withdrawalRepo.EXPECT().GetByID(ctx, id).
			Return(&domain.Withdrawal{ID: id, WalletAddress: "0x2222222222222222222222222222222222222222"}, nil)

		_, err := svc.GetWithdrawal(ctx, testWallet, id)
		assertAppError(t, err, "WDR_003")
	})

	t.Run("missing withdrawal", func(t *testing.T) {
		svc, deps := setupReportingService(t)
		deps.withdrawalRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)

		_, err := svc.GetWithdrawal(ctx, testWallet, id)
		assertAppError(t, err, "WDR_003")
	})
}
