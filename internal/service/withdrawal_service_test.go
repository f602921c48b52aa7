package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gd-arcade/internal/core/domain"
	"gd-arcade/internal/core/ports"
	"gd-arcade/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type withdrawalServiceDeps struct {
	withdrawalRepo *mocks.MockWithdrawalRepository
	balanceRepo    *mocks.MockBalanceRepository
	payout         *mocks.MockPayoutClient
	transactor     *mocks.MockDBTransactor
}

func setupWithdrawalService(t *testing.T) (*WithdrawalServiceImpl, withdrawalServiceDeps) {
	ctrl := gomock.NewController(t)
	deps := withdrawalServiceDeps{
		withdrawalRepo: mocks.NewMockWithdrawalRepository(ctrl),
		balanceRepo:    mocks.NewMockBalanceRepository(ctrl),
		payout:         mocks.NewMockPayoutClient(ctrl),
		transactor:     mocks.NewMockDBTransactor(ctrl),
	}
	svc := NewWithdrawalService(
		deps.withdrawalRepo, deps.balanceRepo, deps.payout, deps.transactor,
		domain.GDollars(10), domain.GDollars(1000), zerolog.Nop(),
	)
	svc.now = func() time.Time { return testNow }
	return svc, deps
}

func pendingWithdrawal(id uuid.UUID, amount domain.Amount) *domain.Withdrawal {
	return &domain.Withdrawal{
		ID:            id,
		WalletAddress: testWallet,
		Amount:        amount,
		Status:        domain.WithdrawalStatusPending,
		RequestedAt:   testNow,
	}
}

func TestWithdrawalService_Request(t *testing.T) {
	ctx := context.Background()
	amount := domain.GDollars(50)

	t.Run("bridge transfer succeeds", func(t *testing.T) {
		svc, deps := setupWithdrawalService(t)
		const bridgeTx = "0xbridge01"

		deps.transactor.EXPECT().Begin(ctx).Return(mockTx{}, nil).Times(2)
		deps.balanceRepo.EXPECT().GetForUpdate(ctx, gomock.Any(), testWallet).
			Return(&domain.Balance{WalletAddress: testWallet, Available: domain.GDollars(500), TotalWithdrawn: domain.GDollars(100)}, nil)
		deps.balanceRepo.EXPECT().
			ApplyWithdrawal(ctx, gomock.Any(), testWallet, domain.GDollars(450), domain.GDollars(150), testNow).
			Return(nil)

		var withdrawalID uuid.UUID
		deps.withdrawalRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgx.Tx, w *domain.Withdrawal) error {
				withdrawalID = w.ID
				assert.Equal(t, domain.WithdrawalStatusPending, w.Status)
				assert.Equal(t, amount, w.Amount)
				return nil
			})
		deps.payout.EXPECT().
			Transfer(ctx, testWallet, amount, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ domain.Amount, reference string) (string, error) {
				assert.Equal(t, withdrawalID.String(), reference)
				return bridgeTx, nil
			})
		deps.withdrawalRepo.EXPECT().GetByID(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
				return pendingWithdrawal(id, amount), nil
			})
		deps.withdrawalRepo.EXPECT().
			MarkCompleted(ctx, gomock.Any(), gomock.Any(), bridgeTx, testNow).
			Return(true, nil)

		w, err := svc.Request(ctx, testWallet, amount)
		require.NoError(t, err)

		assert.Equal(t, domain.WithdrawalStatusCompleted, w.Status)
		require.NotNil(t, w.TxHash)
		assert.Equal(t, bridgeTx, *w.TxHash)
	})

	t.Run("bridge rejection refunds the debit", func(t *testing.T) {
		svc, deps := setupWithdrawalService(t)

		deps.transactor.EXPECT().Begin(ctx).Return(mockTx{}, nil).Times(2)
		deps.balanceRepo.EXPECT().GetForUpdate(ctx, gomock.Any(), testWallet).
			Return(&domain.Balance{WalletAddress: testWallet, Available: domain.GDollars(500), TotalWithdrawn: domain.GDollars(100)}, nil)
		deps.balanceRepo.EXPECT().
			ApplyWithdrawal(ctx, gomock.Any(), testWallet, domain.GDollars(450), domain.GDollars(150), testNow).
			Return(nil)
		deps.withdrawalRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
		deps.payout.EXPECT().Transfer(ctx, testWallet, amount, gomock.Any()).
			Return("", &ports.PayoutRejectedError{Reason: "recipient blocked"})

		// failAndRefund path
		deps.withdrawalRepo.EXPECT().GetByID(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
				return pendingWithdrawal(id, amount), nil
			})
		deps.withdrawalRepo.EXPECT().
			MarkFailed(ctx, gomock.Any(), gomock.Any(), "recipient blocked", testNow).
			Return(true, nil)
		deps.balanceRepo.EXPECT().GetForUpdate(ctx, gomock.Any(), testWallet).
			Return(&domain.Balance{WalletAddress: testWallet, Available: domain.GDollars(450), TotalWithdrawn: domain.GDollars(150)}, nil)
		deps.balanceRepo.EXPECT().
			ApplyWithdrawal(ctx, gomock.Any(), testWallet, domain.GDollars(500), domain.GDollars(100), testNow).
			Return(nil)

		_, err := svc.Request(ctx, testWallet, amount)
		assertAppError(t, err, "WDR_004")
	})

	t.Run("unknown bridge outcome leaves the withdrawal pending", func(t *testing.T) {
		svc, deps := setupWithdrawalService(t)

		deps.transactor.EXPECT().Begin(ctx).Return(mockTx{}, nil)
		deps.balanceRepo.EXPECT().GetForUpdate(ctx, gomock.Any(), testWallet).
			Return(&domain.Balance{WalletAddress: testWallet, Available: domain.GDollars(500)}, nil)
		deps.balanceRepo.EXPECT().
			ApplyWithdrawal(ctx, gomock.Any(), testWallet, domain.GDollars(450), domain.GDollars(50), testNow).
			Return(nil)
		deps.withdrawalRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
		deps.payout.EXPECT().Transfer(ctx, testWallet, amount, gomock.Any()).
			Return("", errors.New("bridge timeout"))

		w, err := svc.Request(ctx, testWallet, amount)
		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalStatusPending, w.Status)
		assert.Nil(t, w.TxHash)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		svc, deps := setupWithdrawalService(t)
		deps.transactor.EXPECT().Begin(ctx).Return(mockTx{}, nil)
		deps.balanceRepo.EXPECT().GetForUpdate(ctx, gomock.Any(), testWallet).
			Return(&domain.Balance{WalletAddress: testWallet, Available: domain.GDollars(20)}, nil)

		_, err := svc.Request(ctx, testWallet, amount)
		assertAppError(t, err, "BAL_001")
	})

	t.Run("below minimum", func(t *testing.T) {
		svc, _ := setupWithdrawalService(t)
		_, err := svc.Request(ctx, testWallet, domain.GDollars(5))
		assertAppError(t, err, "WDR_001")
	})

	t.Run("above maximum", func(t *testing.T) {
		svc, _ := setupWithdrawalService(t)
		_, err := svc.Request(ctx, testWallet, domain.GDollars(5000))
		assertAppError(t, err, "WDR_002")
	})
}

func TestWithdrawalService_MarkCompleted(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("finalizes a pending withdrawal", func(t *testing.T) {
		svc, deps := setupWithdrawalService(t)
		deps.withdrawalRepo.EXPECT().GetByID(ctx, id).Return(pendingWithdrawal(id, domain.GDollars(50)), nil)
		deps.transactor.EXPECT().Begin(ctx).Return(mockTx{}, nil)
		deps.withdrawalRepo.EXPECT().MarkCompleted(ctx, gomock.Any(), id, "0xdone", testNow).Return(true, nil)

		w, err := svc.MarkCompleted(ctx, id, "0xdone")
		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalStatusCompleted, w.Status)
		require.NotNil(t, w.CompletedAt)
		assert.Equal(t, testNow, *w.CompletedAt)
	})

	t.Run("not found", func(t *testing.T) {
		svc, deps := setupWithdrawalService(t)
		deps.withdrawalRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)

		_, err := svc.MarkCompleted(ctx, id, "0xdone")
		assertAppError(t, err, "WDR_003")
	})

	t.Run("already finalized", func(t *testing.T) {
		svc, deps := setupWithdrawalService(t)
		deps.withdrawalRepo.EXPECT().GetByID(ctx, id).Return(pendingWithdrawal(id, domain.GDollars(50)), nil)
		deps.transactor.EXPECT().Begin(ctx).Return(mockTx{}, nil)
		deps.withdrawalRepo.EXPECT().MarkCompleted(ctx, gomock.Any(), id, "0xdone", testNow).Return(false, nil)

		_, err := svc.MarkCompleted(ctx, id, "0xdone")
		assertAppError(t, err, "WDR_005")
	})
}

func TestWithdrawalService_MarkFailed(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	amount := domain.GDollars(50)

	t.Run("fails and refunds", func(t *testing.T) {
		svc, deps := setupWithdrawalService(t)
		deps.withdrawalRepo.EXPECT().GetByID(ctx, id).Return(pendingWithdrawal(id, amount), nil)
		deps.transactor.EXPECT().Begin(ctx).Return(mockTx{}, nil)
		deps.withdrawalRepo.EXPECT().MarkFailed(ctx, gomock.Any(), id, "bridge reversal", testNow).Return(true, nil)
		deps.balanceRepo.EXPECT().GetForUpdate(ctx, gomock.Any(), testWallet).
			Return(&domain.Balance{WalletAddress: testWallet, Available: domain.GDollars(450), TotalWithdrawn: domain.GDollars(150)}, nil)
		deps.balanceRepo.EXPECT().
			ApplyWithdrawal(ctx, gomock.Any(), testWallet, domain.GDollars(500), domain.GDollars(100), testNow).
			Return(nil)

		w, err := svc.MarkFailed(ctx, id, "bridge reversal")
		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalStatusFailed, w.Status)
		require.NotNil(t, w.FailureReason)
		assert.Equal(t, "bridge reversal", *w.FailureReason)
	})

	t.Run("refund applied at most once", func(t *testing.T) {
		svc, deps := setupWithdrawalService(t)
		deps.withdrawalRepo.EXPECT().GetByID(ctx, id).Return(pendingWithdrawal(id, amount), nil)
		deps.transactor.EXPECT().Begin(ctx).Return(mockTx{}, nil)
		deps.withdrawalRepo.EXPECT().MarkFailed(ctx, gomock.Any(), id, "bridge reversal", testNow).Return(false, nil)

		_, err := svc.MarkFailed(ctx, id, "bridge reversal")
		assertAppError(t, err, "WDR_005")
	})

	t.Run("not found", func(t *testing.T) {
		svc, deps := setupWithdrawalService(t)
		deps.withdrawalRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)

		_, err := svc.MarkFailed(ctx, id, "bridge reversal")
		assertAppError(t, err, "WDR_003")
	})
}
