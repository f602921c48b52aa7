package postgres

import (
	"context"
	"fmt"
	"time"

	"gd-arcade/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// DepositRepo implements ports.DepositRepository on minigame_deposits_log.
type DepositRepo struct {
	pool Pool
}

// NewDepositRepo creates a new DepositRepo.
func NewDepositRepo(pool Pool) *DepositRepo {
	return &DepositRepo{pool: pool}
}

// Insert appends a deposit record. The tx_hash unique constraint makes
// crediting idempotent: a duplicate returns false without error.
func (r *DepositRepo) Insert(ctx context.Context, tx pgx.Tx, d *domain.Deposit) (bool, error) {
	query := `INSERT INTO minigame_deposits_log (wallet_address, amount, tx_hash, deposit_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (tx_hash) DO NOTHING`

	tag, err := tx.Exec(ctx, query, d.WalletAddress, d.Amount, d.TxHash, d.DepositDate, d.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("insert deposit: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ExistsByTxHash reports whether a deposit with this tx hash was recorded.
func (r *DepositRepo) ExistsByTxHash(ctx context.Context, txHash string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM minigame_deposits_log WHERE tx_hash = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, txHash).Scan(&exists); err != nil {
		return false, fmt.Errorf("deposit exists: %w", err)
	}
	return exists, nil
}

// SumForDate returns the wallet's cumulative deposits on a calendar date.
// Callers enforcing the daily cap must hold the wallet's balance row lock
// so the sum cannot change between the check and the insert.
func (r *DepositRepo) SumForDate(ctx context.Context, tx pgx.Tx, wallet string, date time.Time) (domain.Amount, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM minigame_deposits_log
		WHERE wallet_address = $1 AND deposit_date = $2`

	var sum domain.Amount
	if err := tx.QueryRow(ctx, query, wallet, date).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum deposits for date: %w", err)
	}
	return sum, nil
}

// ListByWallet returns the wallet's deposits, newest first.
func (r *DepositRepo) ListByWallet(ctx context.Context, wallet string, limit, offset int) ([]domain.Deposit, error) {
	query := `SELECT id, wallet_address, amount, tx_hash, deposit_date, created_at
		FROM minigame_deposits_log
		WHERE wallet_address = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, wallet, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list deposits: %w", err)
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		var d domain.Deposit
		if err := rows.Scan(&d.ID, &d.WalletAddress, &d.Amount, &d.TxHash, &d.DepositDate, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan deposit: %w", err)
		}
		deposits = append(deposits, d)
	}
	return deposits, rows.Err()
}
