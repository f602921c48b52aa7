package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gd-arcade/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// DailyLimitRepo implements ports.DailyLimitRepository on daily_game_limits.
type DailyLimitRepo struct {
	pool Pool
}

// NewDailyLimitRepo creates a new DailyLimitRepo.
func NewDailyLimitRepo(pool Pool) *DailyLimitRepo {
	return &DailyLimitRepo{pool: pool}
}

// Get fetches the counter row for (wallet, game type, date). Returns nil if
// the wallet has not played that game today.
func (r *DailyLimitRepo) Get(ctx context.Context, wallet string, gameType domain.GameType, date time.Time) (*domain.DailyLimit, error) {
	query := `SELECT id, wallet_address, game_type, game_date, plays_today, earned_today
		FROM daily_game_limits
		WHERE wallet_address = $1 AND game_type = $2 AND game_date = $3`

	l := &domain.DailyLimit{}
	err := r.pool.QueryRow(ctx, query, wallet, gameType, date).Scan(
		&l.ID, &l.WalletAddress, &l.GameType, &l.GameDate, &l.PlaysToday, &l.EarnedToday,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get daily limit: %w", err)
	}
	return l, nil
}

// ReservePlay atomically claims one play slot for the day. The conditional
// upsert guarantees two concurrent sessions cannot both take the last slot.
func (r *DailyLimitRepo) ReservePlay(ctx context.Context, tx pgx.Tx, wallet string, gameType domain.GameType, date time.Time, maxPlays int) (bool, error) {
	query := `INSERT INTO daily_game_limits (wallet_address, game_type, game_date, plays_today, earned_today)
		VALUES ($1, $2, $3, 1, 0)
		ON CONFLICT (wallet_address, game_type, game_date) DO UPDATE
			SET plays_today = daily_game_limits.plays_today + 1
			WHERE daily_game_limits.plays_today < $4`

	tag, err := tx.Exec(ctx, query, wallet, gameType, date, maxPlays)
	if err != nil {
		return false, fmt.Errorf("reserve play: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// AddEarned accumulates session winnings into the day's counter.
func (r *DailyLimitRepo) AddEarned(ctx context.Context, tx pgx.Tx, wallet string, gameType domain.GameType, date time.Time, earned domain.Amount) error {
	query := `UPDATE daily_game_limits
		SET earned_today = earned_today + $1
		WHERE wallet_address = $2 AND game_type = $3 AND game_date = $4`

	_, err := tx.Exec(ctx, query, earned, wallet, gameType, date)
	if err != nil {
		return fmt.Errorf("add earned: %w", err)
	}
	return nil
}
