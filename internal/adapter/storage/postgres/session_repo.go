package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gd-arcade/internal/core/domain"
	"gd-arcade/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// SessionRepo implements ports.SessionRepository on minigame_sessions.
type SessionRepo struct {
	pool Pool
}

// NewSessionRepo creates a new SessionRepo.
func NewSessionRepo(pool Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

const sessionColumns = `session_id, wallet_address, game_type, status, bet_amount,
	outcome_target, score, g_dollar_earned, game_data, started_at, completed_at`

func scanSession(row pgx.Row) (*domain.GameSession, error) {
	s := &domain.GameSession{}
	err := row.Scan(
		&s.SessionID, &s.WalletAddress, &s.GameType, &s.Status, &s.BetAmount,
		&s.OutcomeTarget, &s.Score, &s.GDollarEarned, &s.GameData, &s.StartedAt, &s.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// Create inserts an in_progress session within the bet-debit transaction.
func (r *SessionRepo) Create(ctx context.Context, tx pgx.Tx, s *domain.GameSession) error {
	query := `INSERT INTO minigame_sessions (session_id, wallet_address, game_type, status, bet_amount, outcome_target, game_data, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		s.SessionID, s.WalletAddress, s.GameType, s.Status, s.BetAmount,
		s.OutcomeTarget, s.GameData, s.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID fetches a session. Returns nil if absent.
func (r *SessionRepo) GetByID(ctx context.Context, sessionID string) (*domain.GameSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM minigame_sessions WHERE session_id = $1`

	s, err := scanSession(r.pool.QueryRow(ctx, query, sessionID))
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return s, nil
}

// Complete transitions in_progress -> completed. The status predicate makes
// this a check-and-set: with concurrent callers only the first succeeds.
func (r *SessionRepo) Complete(ctx context.Context, tx pgx.Tx, sessionID string, score int, earned domain.Amount, gameData []byte, completedAt time.Time) (bool, error) {
	query := `UPDATE minigame_sessions
		SET status = $1, score = $2, g_dollar_earned = $3, game_data = COALESCE($4, game_data), completed_at = $5
		WHERE session_id = $6 AND status = $7`

	tag, err := tx.Exec(ctx, query,
		domain.SessionStatusCompleted, score, earned, gameData, completedAt,
		sessionID, domain.SessionStatusInProgress,
	)
	if err != nil {
		return false, fmt.Errorf("complete session: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByWallet returns the wallet's sessions, newest first.
func (r *SessionRepo) ListByWallet(ctx context.Context, wallet string, limit, offset int) ([]domain.GameSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM minigame_sessions
		WHERE wallet_address = $1
		ORDER BY started_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, wallet, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.GameSession
	for rows.Next() {
		var s domain.GameSession
		err := rows.Scan(
			&s.SessionID, &s.WalletAddress, &s.GameType, &s.Status, &s.BetAmount,
			&s.OutcomeTarget, &s.Score, &s.GDollarEarned, &s.GameData, &s.StartedAt, &s.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// StatsByWallet aggregates completed sessions per game type.
func (r *SessionRepo) StatsByWallet(ctx context.Context, wallet string) ([]ports.GameStats, error) {
	query := `SELECT game_type, COUNT(*), COALESCE(SUM(bet_amount), 0), COALESCE(SUM(g_dollar_earned), 0), COALESCE(MAX(score), 0)
		FROM minigame_sessions
		WHERE wallet_address = $1 AND status = $2
		GROUP BY game_type`

	rows, err := r.pool.Query(ctx, query, wallet, domain.SessionStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("session stats: %w", err)
	}
	defer rows.Close()

	var stats []ports.GameStats
	for rows.Next() {
		var st ports.GameStats
		if err := rows.Scan(&st.GameType, &st.TotalPlays, &st.TotalWagered, &st.TotalEarned, &st.BestScore); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}
