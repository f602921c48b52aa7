package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gd-arcade/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WithdrawalRepo implements ports.WithdrawalRepository on minigame_withdrawals_log.
type WithdrawalRepo struct {
	pool Pool
}

// NewWithdrawalRepo creates a new WithdrawalRepo.
func NewWithdrawalRepo(pool Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

const withdrawalColumns = `id, wallet_address, amount, tx_hash, status,
	failure_reason, requested_at, completed_at`

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	w := &domain.Withdrawal{}
	err := row.Scan(
		&w.ID, &w.WalletAddress, &w.Amount, &w.TxHash, &w.Status,
		&w.FailureReason, &w.RequestedAt, &w.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}

// Create inserts a pending withdrawal within the debit transaction.
func (r *WithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	query := `INSERT INTO minigame_withdrawals_log (id, wallet_address, amount, status, requested_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, w.ID, w.WalletAddress, w.Amount, w.Status, w.RequestedAt)
	if err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

// GetByID fetches a withdrawal. Returns nil if absent.
func (r *WithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM minigame_withdrawals_log WHERE id = $1`

	w, err := scanWithdrawal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get withdrawal: %w", err)
	}
	return w, nil
}

// MarkCompleted finalizes a pending withdrawal with the payout tx hash.
func (r *WithdrawalRepo) MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, txHash string, completedAt time.Time) (bool, error) {
	query := `UPDATE minigame_withdrawals_log
		SET status = $1, tx_hash = $2, completed_at = $3
		WHERE id = $4 AND status = $5`

	tag, err := tx.Exec(ctx, query,
		domain.WithdrawalStatusCompleted, txHash, completedAt,
		id, domain.WithdrawalStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("mark withdrawal completed: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkFailed finalizes a pending withdrawal as failed.
func (r *WithdrawalRepo) MarkFailed(ctx context.Context, tx pgx.Tx, id uuid.UUID, reason string, completedAt time.Time) (bool, error) {
	query := `UPDATE minigame_withdrawals_log
		SET status = $1, failure_reason = $2, completed_at = $3
		WHERE id = $4 AND status = $5`

	tag, err := tx.Exec(ctx, query,
		domain.WithdrawalStatusFailed, reason, completedAt,
		id, domain.WithdrawalStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("mark withdrawal failed: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByWallet returns the wallet's withdrawals, newest first.
func (r *WithdrawalRepo) ListByWallet(ctx context.Context, wallet string, limit, offset int) ([]domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM minigame_withdrawals_log
		WHERE wallet_address = $1
		ORDER BY requested_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, wallet, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var w domain.Withdrawal
		err := rows.Scan(
			&w.ID, &w.WalletAddress, &w.Amount, &w.TxHash, &w.Status,
			&w.FailureReason, &w.RequestedAt, &w.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}
