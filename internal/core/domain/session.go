package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GameType identifies a wagering minigame.
type GameType string

const (
	GameTypeCrash    GameType = "crash_game"
	GameTypeCoinFlip GameType = "coin_flip"
)

// SessionStatus is the lifecycle state of a game session.
type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
)

// Coin sides for coin_flip. The drawn side is stored as OutcomeTarget.
const (
	CoinSideHeads = 0
	CoinSideTails = 1
)

// GameSession is one wagering round. The bet is debited when the session is
// created; winnings (possibly zero) are credited exactly once on completion.
//
// OutcomeTarget is drawn server-side at session start and never exposed to
// the client before completion: for crash_game it is the crash point in
// hundredths of 1x (169 = 1.69x), for coin_flip the drawn coin side.
type GameSession struct {
	SessionID     string          `json:"session_id"`
	WalletAddress string          `json:"wallet_address"`
	GameType      GameType        `json:"game_type"`
	Status        SessionStatus   `json:"status"`
	BetAmount     Amount          `json:"bet_amount"`
	OutcomeTarget int             `json:"-"`
	Score         *int            `json:"score,omitempty"` // final multiplier in hundredths
	GDollarEarned *Amount         `json:"g_dollar_earned,omitempty"`
	GameData      json.RawMessage `json:"game_data,omitempty"` // client-supplied detail, never trusted for payout
	StartedAt     time.Time       `json:"started_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}

// IsCompleted returns true once the session has paid out.
func (s *GameSession) IsCompleted() bool {
	return s.Status == SessionStatusCompleted
}

// NewSessionID generates a fresh session identifier ("GAME-3F2A9C01").
func NewSessionID() string {
	return "GAME-" + strings.ToUpper(uuid.New().String()[:8])
}

// ParseGameType validates a game type string.
func ParseGameType(s string) (GameType, bool) {
	switch GameType(s) {
	case GameTypeCrash, GameTypeCoinFlip:
		return GameType(s), true
	}
	return "", false
}
