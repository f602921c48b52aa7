package service

import (
	"context"
	"fmt"

	"gd-arcade/internal/core/domain"
	"gd-arcade/internal/core/ports"
	"gd-arcade/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReportingServiceImpl implements ports.ReportingService with read-only
// queries; nothing here takes locks.
type ReportingServiceImpl struct {
	balanceRepo    ports.BalanceRepository
	depositRepo    ports.DepositRepository
	sessionRepo    ports.SessionRepository
	withdrawalRepo ports.WithdrawalRepository
	minWithdrawal  domain.Amount
	log            zerolog.Logger
}

// NewReportingService creates a new ReportingServiceImpl.
func NewReportingService(
	balanceRepo ports.BalanceRepository,
	depositRepo ports.DepositRepository,
	sessionRepo ports.SessionRepository,
	withdrawalRepo ports.WithdrawalRepository,
	minWithdrawal domain.Amount,
	log zerolog.Logger,
) *ReportingServiceImpl {
	return &ReportingServiceImpl{
		balanceRepo:    balanceRepo,
		depositRepo:    depositRepo,
		sessionRepo:    sessionRepo,
		withdrawalRepo: withdrawalRepo,
		minWithdrawal:  minWithdrawal,
		log:            log,
	}
}

// GetBalance returns the wallet's balance view. Wallets with no deposits
// yet read as zero rather than not found.
func (s *ReportingServiceImpl) GetBalance(ctx context.Context, wallet string) (*ports.BalanceSnapshot, error) {
	balance, err := s.balanceRepo.GetByWallet(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get balance: %w", err))
	}
	if balance == nil {
		balance = domain.ZeroBalance(wallet)
	}

	return &ports.BalanceSnapshot{
		WalletAddress:   wallet,
		Available:       balance.Available,
		TotalWithdrawn:  balance.TotalWithdrawn,
		LastDepositDate: balance.LastDepositDate,
		CanWithdraw:     balance.Available >= s.minWithdrawal,
	}, nil
}

// GetHistory returns the wallet's recent sessions, deposits, and
// withdrawals, each independently paginated by the same limit/offset.
func (s *ReportingServiceImpl) GetHistory(ctx context.Context, wallet string, limit, offset int) (*ports.WalletHistory, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	sessions, err := s.sessionRepo.ListByWallet(ctx, wallet, limit, offset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list sessions: %w", err))
	}
	deposits, err := s.depositRepo.ListByWallet(ctx, wallet, limit, offset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list deposits: %w", err))
	}
	withdrawals, err := s.withdrawalRepo.ListByWallet(ctx, wallet, limit, offset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list withdrawals: %w", err))
	}

	return &ports.WalletHistory{
		Sessions:    sessions,
		Deposits:    deposits,
		Withdrawals: withdrawals,
	}, nil
}

// GetGameStats returns per-game aggregates for the wallet.
func (s *ReportingServiceImpl) GetGameStats(ctx context.Context, wallet string) ([]ports.GameStats, error) {
	stats, err := s.sessionRepo.StatsByWallet(ctx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("session stats: %w", err))
	}
	return stats, nil
}

// GetWithdrawal returns one withdrawal, scoped to the requesting wallet.
func (s *ReportingServiceImpl) GetWithdrawal(ctx context.Context, wallet string, id uuid.UUID) (*domain.Withdrawal, error) {
	w, err := s.withdrawalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get withdrawal: %w", err))
	}
	if w == nil || w.WalletAddress != wallet {
		return nil, apperror.ErrWithdrawalNotFound()
	}
	return w, nil
}
