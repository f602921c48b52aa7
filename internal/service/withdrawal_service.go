package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gd-arcade/internal/core/domain"
	"gd-arcade/internal/core/ports"
	"gd-arcade/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WithdrawalServiceImpl implements ports.WithdrawalService. The balance is
// debited and the pending row committed BEFORE the bridge is called, so a
// crash mid-payout can never double-spend: the worst case is a pending
// withdrawal waiting for reconciliation.
type WithdrawalServiceImpl struct {
	withdrawalRepo ports.WithdrawalRepository
	balanceRepo    ports.BalanceRepository
	payout         ports.PayoutClient
	transactor     ports.DBTransactor
	minimum        domain.Amount
	maximum        domain.Amount
	log            zerolog.Logger

	now func() time.Time
}

// NewWithdrawalService creates a new WithdrawalServiceImpl.
func NewWithdrawalService(
	withdrawalRepo ports.WithdrawalRepository,
	balanceRepo ports.BalanceRepository,
	payout ports.PayoutClient,
	transactor ports.DBTransactor,
	minimum, maximum domain.Amount,
	log zerolog.Logger,
) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		withdrawalRepo: withdrawalRepo,
		balanceRepo:    balanceRepo,
		payout:         payout,
		transactor:     transactor,
		minimum:        minimum,
		maximum:        maximum,
		log:            log,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Request debits the balance, records a pending withdrawal, then asks the
// bridge to transfer. A definitive bridge rejection refunds the debit; any
// other bridge failure leaves the withdrawal pending.
func (s *WithdrawalServiceImpl) Request(ctx context.Context, wallet string, amount domain.Amount) (*domain.Withdrawal, error) {
	if amount < s.minimum {
		return nil, apperror.ErrWithdrawalBelowMinimum(s.minimum.String())
	}
	if amount > s.maximum {
		return nil, apperror.ErrWithdrawalAboveMaximum(s.maximum.String())
	}

	now := s.now()
	withdrawal := &domain.Withdrawal{
		ID:            uuid.New(),
		WalletAddress: wallet,
		Amount:        amount,
		Status:        domain.WithdrawalStatusPending,
		RequestedAt:   now,
	}

	// Phase 1: debit + pending row, committed before the bridge call.
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	balance, err := s.balanceRepo.GetForUpdate(ctx, dbTx, wallet)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if balance == nil || balance.Available < amount {
		return nil, apperror.ErrInsufficientFunds()
	}

	if err := s.balanceRepo.ApplyWithdrawal(ctx, dbTx, wallet, balance.Available-amount, balance.TotalWithdrawn+amount, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit balance: %w", err))
	}
	if err := s.withdrawalRepo.Create(ctx, dbTx, withdrawal); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create withdrawal: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Phase 2: bridge transfer.
	txHash, err := s.payout.Transfer(ctx, wallet, amount, withdrawal.ID.String())
	if err != nil {
		var rejected *ports.PayoutRejectedError
		if errors.As(err, &rejected) {
			// Definitive rejection: refund the debit.
			if _, failErr := s.failAndRefund(ctx, withdrawal.ID, rejected.Reason); failErr != nil {
				s.log.Error().Err(failErr).
					Str("withdrawal_id", withdrawal.ID.String()).
					Msg("failed to refund rejected withdrawal, left pending")
				return withdrawal, nil
			}
			s.log.Warn().
				Str("withdrawal_id", withdrawal.ID.String()).
				Str("reason", rejected.Reason).
				Msg("withdrawal rejected by bridge, balance refunded")
			return nil, apperror.ErrPayoutFailed(rejected.Reason)
		}

		// Unknown outcome (timeout, 5xx): the transfer may still land on
		// chain, so the withdrawal stays pending for reconciliation.
		s.log.Warn().Err(err).
			Str("withdrawal_id", withdrawal.ID.String()).
			Msg("bridge outcome unknown, withdrawal left pending")
		return withdrawal, nil
	}

	completed, err := s.MarkCompleted(ctx, withdrawal.ID, txHash)
	if err != nil {
		s.log.Error().Err(err).
			Str("withdrawal_id", withdrawal.ID.String()).
			Str("tx_hash", txHash).
			Msg("failed to finalize completed withdrawal, left pending")
		return withdrawal, nil
	}

	s.log.Info().
		Str("withdrawal_id", withdrawal.ID.String()).
		Str("wallet", wallet).
		Str("amount", amount.String()).
		Str("tx_hash", txHash).
		Msg("withdrawal completed")

	return completed, nil
}

// MarkCompleted finalizes a pending withdrawal with its on-chain tx hash.
// Called directly after a synchronous bridge success and by the bridge's
// async confirmation callback; both paths are idempotent on status.
func (s *WithdrawalServiceImpl) MarkCompleted(ctx context.Context, id uuid.UUID, txHash string) (*domain.Withdrawal, error) {
	existing, err := s.withdrawalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get withdrawal: %w", err))
	}
	if existing == nil {
		return nil, apperror.ErrWithdrawalNotFound()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := s.now()
	ok, err := s.withdrawalRepo.MarkCompleted(ctx, dbTx, id, txHash, now)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark completed: %w", err))
	}
	if !ok {
		return nil, apperror.ErrWithdrawalAlreadyFinalized()
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	existing.Status = domain.WithdrawalStatusCompleted
	existing.TxHash = &txHash
	existing.CompletedAt = &now
	return existing, nil
}

// MarkFailed finalizes a pending withdrawal as failed and refunds the
// debited amount. The status transition and the refund share one
// transaction, so the refund is applied at most once.
func (s *WithdrawalServiceImpl) MarkFailed(ctx context.Context, id uuid.UUID, reason string) (*domain.Withdrawal, error) {
	return s.failAndRefund(ctx, id, reason)
}

func (s *WithdrawalServiceImpl) failAndRefund(ctx context.Context, id uuid.UUID, reason string) (*domain.Withdrawal, error) {
	existing, err := s.withdrawalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get withdrawal: %w", err))
	}
	if existing == nil {
		return nil, apperror.ErrWithdrawalNotFound()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := s.now()
	ok, err := s.withdrawalRepo.MarkFailed(ctx, dbTx, id, reason, now)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark failed: %w", err))
	}
	if !ok {
		return nil, apperror.ErrWithdrawalAlreadyFinalized()
	}

	// Refund the optimistic debit.
	balance, err := s.balanceRepo.GetForUpdate(ctx, dbTx, existing.WalletAddress)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if balance == nil {
		return nil, apperror.InternalError(fmt.Errorf("balance row missing for wallet with withdrawal"))
	}
	if err := s.balanceRepo.ApplyWithdrawal(ctx, dbTx, existing.WalletAddress, balance.Available+existing.Amount, balance.TotalWithdrawn-existing.Amount, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("refund balance: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("withdrawal_id", id.String()).
		Str("wallet", existing.WalletAddress).
		Str("reason", reason).
		Msg("withdrawal failed, balance refunded")

	existing.Status = domain.WithdrawalStatusFailed
	existing.FailureReason = &reason
	existing.CompletedAt = &now
	return existing, nil
}
