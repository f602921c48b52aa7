package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gd-arcade/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// BalanceRepo implements ports.BalanceRepository on minigame_balances.
type BalanceRepo struct {
	pool Pool
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

const balanceColumns = `wallet_address, available_balance, total_withdrawn,
	last_deposit_date, last_withdrawal_at, created_at, updated_at`

func scanBalance(row pgx.Row) (*domain.Balance, error) {
	b := &domain.Balance{}
	err := row.Scan(
		&b.WalletAddress, &b.Available, &b.TotalWithdrawn,
		&b.LastDepositDate, &b.LastWithdrawalAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

// GetByWallet fetches a balance row (non-locking read). Returns nil if the
// wallet has never deposited.
func (r *BalanceRepo) GetByWallet(ctx context.Context, wallet string) (*domain.Balance, error) {
	query := `SELECT ` + balanceColumns + ` FROM minigame_balances WHERE wallet_address = $1`

	b, err := scanBalance(r.pool.QueryRow(ctx, query, wallet))
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return b, nil
}

// GetForUpdate fetches a balance row with pessimistic locking.
// This MUST be called within a transaction.
func (r *BalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, wallet string) (*domain.Balance, error) {
	query := `SELECT ` + balanceColumns + ` FROM minigame_balances WHERE wallet_address = $1 FOR UPDATE`

	b, err := scanBalance(tx.QueryRow(ctx, query, wallet))
	if err != nil {
		return nil, fmt.Errorf("get balance for update: %w", err)
	}
	return b, nil
}

// EnsureAndLock creates the balance row if the wallet has none and takes its
// row lock. The no-op conflict update still locks the existing row, so
// concurrent transactions on the same wallet serialize here.
// This MUST be called within a transaction.
func (r *BalanceRepo) EnsureAndLock(ctx context.Context, tx pgx.Tx, wallet string) error {
	query := `INSERT INTO minigame_balances (wallet_address, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		ON CONFLICT (wallet_address) DO UPDATE SET wallet_address = EXCLUDED.wallet_address`

	if _, err := tx.Exec(ctx, query, wallet); err != nil {
		return fmt.Errorf("ensure balance row: %w", err)
	}
	return nil
}

// CreditDeposit adds a verified deposit to the wallet balance, creating the
// row on first deposit.
func (r *BalanceRepo) CreditDeposit(ctx context.Context, tx pgx.Tx, wallet string, amount domain.Amount, depositDate time.Time) error {
	query := `INSERT INTO minigame_balances (wallet_address, available_balance, total_withdrawn, last_deposit_date, created_at, updated_at)
		VALUES ($1, $2, 0, $3, NOW(), NOW())
		ON CONFLICT (wallet_address) DO UPDATE SET
			available_balance = minigame_balances.available_balance + EXCLUDED.available_balance,
			last_deposit_date = EXCLUDED.last_deposit_date,
			updated_at = NOW()`

	_, err := tx.Exec(ctx, query, wallet, amount, depositDate)
	if err != nil {
		return fmt.Errorf("credit deposit: %w", err)
	}
	return nil
}

// SetAvailable writes a new available balance computed under the row lock.
func (r *BalanceRepo) SetAvailable(ctx context.Context, tx pgx.Tx, wallet string, available domain.Amount) error {
	query := `UPDATE minigame_balances SET available_balance = $1, updated_at = NOW() WHERE wallet_address = $2`

	tag, err := tx.Exec(ctx, query, available, wallet)
	if err != nil {
		return fmt.Errorf("set available balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("balance row not found: %s", wallet)
	}
	return nil
}

// ApplyWithdrawal writes the post-withdrawal balance and withdrawn total.
func (r *BalanceRepo) ApplyWithdrawal(ctx context.Context, tx pgx.Tx, wallet string, available, totalWithdrawn domain.Amount, at time.Time) error {
	query := `UPDATE minigame_balances
		SET available_balance = $1, total_withdrawn = $2, last_withdrawal_at = $3, updated_at = NOW()
		WHERE wallet_address = $4`

	tag, err := tx.Exec(ctx, query, available, totalWithdrawn, at, wallet)
	if err != nil {
		return fmt.Errorf("apply withdrawal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("balance row not found: %s", wallet)
	}
	return nil
}
