package ports

import (
	"context"
	"time"

	"gd-arcade/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BalanceRepository defines persistence operations for wallet balances.
// Methods accepting pgx.Tx are used inside transaction blocks so that all
// read-then-write balance mutations hold a row lock on the wallet.
type BalanceRepository interface {
	GetByWallet(ctx context.Context, wallet string) (*domain.Balance, error)
	// GetForUpdate locks the balance row. Returns nil if the wallet has no
	// balance row yet. MUST be called within a transaction.
	GetForUpdate(ctx context.Context, tx pgx.Tx, wallet string) (*domain.Balance, error)
	// EnsureAndLock creates the wallet's balance row if absent and takes its
	// row lock, serializing concurrent same-wallet transactions. MUST be
	// called within a transaction.
	EnsureAndLock(ctx context.Context, tx pgx.Tx, wallet string) error
	// CreditDeposit adds amount to the wallet's available balance, creating
	// the row on first deposit, and stamps last_deposit_date.
	CreditDeposit(ctx context.Context, tx pgx.Tx, wallet string, amount domain.Amount, depositDate time.Time) error
	// SetAvailable writes a new available balance computed under lock.
	SetAvailable(ctx context.Context, tx pgx.Tx, wallet string, available domain.Amount) error
	// ApplyWithdrawal writes the post-withdrawal available balance and
	// cumulative withdrawn total.
	ApplyWithdrawal(ctx context.Context, tx pgx.Tx, wallet string, available, totalWithdrawn domain.Amount, at time.Time) error
}

// DepositRepository defines persistence for the append-only deposit log.
type DepositRepository interface {
	// Insert appends a deposit record. Returns false without error if the tx
	// hash was already recorded.
	Insert(ctx context.Context, tx pgx.Tx, d *domain.Deposit) (bool, error)
	ExistsByTxHash(ctx context.Context, txHash string) (bool, error)
	// SumForDate returns the wallet's cumulative deposits on a calendar date.
	SumForDate(ctx context.Context, tx pgx.Tx, wallet string, date time.Time) (domain.Amount, error)
	ListByWallet(ctx context.Context, wallet string, limit, offset int) ([]domain.Deposit, error)
}

// SessionRepository defines persistence for game sessions.
type SessionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, s *domain.GameSession) error
	GetByID(ctx context.Context, sessionID string) (*domain.GameSession, error)
	// Complete transitions in_progress -> completed. Returns false if the
	// session was already completed (check-and-set, only one caller wins).
	Complete(ctx context.Context, tx pgx.Tx, sessionID string, score int, earned domain.Amount, gameData []byte, completedAt time.Time) (bool, error)
	ListByWallet(ctx context.Context, wallet string, limit, offset int) ([]domain.GameSession, error)
	StatsByWallet(ctx context.Context, wallet string) ([]GameStats, error)
}

// GameStats aggregates a wallet's history for one game type.
type GameStats struct {
	GameType     domain.GameType `json:"game_type"`
	TotalPlays   int64           `json:"total_plays"`
	TotalWagered domain.Amount   `json:"total_wagered"`
	TotalEarned  domain.Amount   `json:"total_earned"`
	BestScore    int             `json:"best_score"`
}

// DailyLimitRepository defines persistence for per-day play counters.
type DailyLimitRepository interface {
	Get(ctx context.Context, wallet string, gameType domain.GameType, date time.Time) (*domain.DailyLimit, error)
	// ReservePlay atomically increments plays_today while it is below
	// maxPlays, creating the row for a new date. Returns false when the
	// daily cap is already spent.
	ReservePlay(ctx context.Context, tx pgx.Tx, wallet string, gameType domain.GameType, date time.Time, maxPlays int) (bool, error)
	AddEarned(ctx context.Context, tx pgx.Tx, wallet string, gameType domain.GameType, date time.Time, earned domain.Amount) error
}

// WithdrawalRepository defines persistence for the withdrawal log.
type WithdrawalRepository interface {
	Create(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error)
	// MarkCompleted / MarkFailed transition pending -> terminal. Both return
	// false if the withdrawal was already finalized.
	MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID, txHash string, completedAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, tx pgx.Tx, id uuid.UUID, reason string, completedAt time.Time) (bool, error)
	ListByWallet(ctx context.Context, wallet string, limit, offset int) ([]domain.Withdrawal, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
