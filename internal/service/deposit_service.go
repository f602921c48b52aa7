package service

import (
	"context"
	"fmt"
	"time"

	"gd-arcade/internal/core/domain"
	"gd-arcade/internal/core/ports"
	"gd-arcade/pkg/apperror"

	"github.com/rs/zerolog"
)

const depositSeenTTL = 48 * time.Hour

// DepositServiceImpl implements ports.DepositService. Deposits arrive from
// the on-chain watcher already verified; this service makes recording them
// idempotent on tx hash and enforces the per-day crediting cap.
type DepositServiceImpl struct {
	depositRepo ports.DepositRepository
	balanceRepo ports.BalanceRepository
	cache       ports.DepositCache
	transactor  ports.DBTransactor
	minimum     domain.Amount
	dailyMax    domain.Amount
	log         zerolog.Logger

	now func() time.Time
}

// NewDepositService creates a new DepositServiceImpl.
func NewDepositService(
	depositRepo ports.DepositRepository,
	balanceRepo ports.BalanceRepository,
	cache ports.DepositCache,
	transactor ports.DBTransactor,
	minimum, dailyMax domain.Amount,
	log zerolog.Logger,
) *DepositServiceImpl {
	return &DepositServiceImpl{
		depositRepo: depositRepo,
		balanceRepo: balanceRepo,
		cache:       cache,
		transactor:  transactor,
		minimum:     minimum,
		dailyMax:    dailyMax,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Record credits a verified deposit exactly once. The Redis check is a
// fast path only; the tx_hash unique constraint is authoritative.
func (s *DepositServiceImpl) Record(ctx context.Context, req ports.RecordDepositRequest) (*domain.Deposit, error) {
	if !domain.ValidWalletAddress(req.WalletAddress) {
		return nil, apperror.ErrInvalidWalletAddress()
	}
	if req.TxHash == "" {
		return nil, apperror.Validation("tx_hash is required")
	}
	if req.Amount < s.minimum {
		return nil, apperror.ErrDepositBelowMinimum(s.minimum.String())
	}

	// Layer 1: Redis duplicate check
	seen, err := s.cache.Seen(ctx, req.TxHash)
	if err != nil {
		s.log.Warn().Err(err).Str("tx_hash", req.TxHash).Msg("redis deposit check failed, falling through to DB")
	}
	if seen {
		return nil, apperror.ErrDuplicateDeposit()
	}

	depositDate := gameDate(req.DepositDate)
	if req.DepositDate.IsZero() {
		depositDate = gameDate(s.now())
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock the wallet's balance row first so concurrent deposits for the
	// same wallet serialize before the cap check reads the day's sum.
	if err := s.balanceRepo.EnsureAndLock(ctx, dbTx, req.WalletAddress); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}

	// Daily crediting cap, counted against already-recorded deposits.
	sum, err := s.depositRepo.SumForDate(ctx, dbTx, req.WalletAddress, depositDate)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum deposits: %w", err))
	}
	if sum+req.Amount > s.dailyMax {
		return nil, apperror.ErrDailyDepositLimitExceeded(s.dailyMax.String())
	}

	deposit := &domain.Deposit{
		WalletAddress: req.WalletAddress,
		Amount:        req.Amount,
		TxHash:        req.TxHash,
		DepositDate:   depositDate,
		CreatedAt:     s.now(),
	}

	// Layer 2: DB unique constraint on tx_hash (authoritative)
	inserted, err := s.depositRepo.Insert(ctx, dbTx, deposit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("insert deposit: %w", err))
	}
	if !inserted {
		return nil, apperror.ErrDuplicateDeposit()
	}

	if err := s.balanceRepo.CreditDeposit(ctx, dbTx, req.WalletAddress, req.Amount, depositDate); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit balance: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Post-process: remember the tx hash in Redis (best-effort)
	if err := s.cache.MarkSeen(ctx, req.TxHash, depositSeenTTL); err != nil {
		s.log.Warn().Err(err).Str("tx_hash", req.TxHash).Msg("failed to cache deposit tx hash")
	}

	s.log.Info().
		Str("wallet", req.WalletAddress).
		Str("tx_hash", req.TxHash).
		Str("amount", req.Amount.String()).
		Msg("deposit recorded")

	return deposit, nil
}
