package ports

import (
	"context"
	"time"

	"gd-arcade/internal/core/domain"

	"github.com/google/uuid"
)

// TokenService handles JWT token operations for player wallets.
type TokenService interface {
	Generate(walletAddress string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	WalletAddress string
}

// AuthService exchanges a wallet address for a bearer token. Ownership of
// the address is asserted by the platform's upstream identity layer.
type AuthService interface {
	IssueToken(ctx context.Context, walletAddress string) (string, time.Time, error)
}

// DepositCache is the Redis-layer duplicate-deposit check (fast path). The
// database tx_hash unique constraint remains authoritative.
type DepositCache interface {
	Seen(ctx context.Context, txHash string) (bool, error)
	MarkSeen(ctx context.Context, txHash string, ttl time.Duration) error
}

// PayoutClient talks to the external blockchain bridge that moves G$ for
// withdrawals. Calls must respect ctx deadlines; callers treat a
// *PayoutRejectedError as a definitive failure and anything else as
// unknown-outcome (withdrawal stays pending for reconciliation).
type PayoutClient interface {
	Transfer(ctx context.Context, wallet string, amount domain.Amount, reference string) (txHash string, err error)
}

// PayoutRejectedError indicates the bridge definitively rejected a transfer.
type PayoutRejectedError struct {
	Reason string
}

func (e *PayoutRejectedError) Error() string {
	return "payout rejected: " + e.Reason
}

// GameRules holds the configured bounds for one game type. Multipliers are
// in hundredths of 1x.
type GameRules struct {
	MaxPlaysPerDay int
	MinBet         domain.Amount
	MaxBet         domain.Amount
	MinMultiplier  int // crash_game: lower bound of the crash point draw
	MaxMultiplier  int // crash_game: upper bound of the crash point draw
	WinMultiplier  int // coin_flip: payout multiplier on a win
}

// GameRuleSet maps each supported game type to its rules.
type GameRuleSet map[domain.GameType]GameRules

// --- Service Ports (Business Logic) ---

// GameService is the session manager: it opens wagering sessions, enforces
// daily limits, and resolves outcomes server-side.
type GameService interface {
	CheckEligibility(ctx context.Context, wallet string, gameType domain.GameType) (*domain.Eligibility, error)
	StartSession(ctx context.Context, req StartSessionRequest) (*StartSessionResult, error)
	CompleteSession(ctx context.Context, req CompleteSessionRequest) (*SessionResult, error)
}

// StartSessionRequest holds validated input for opening a session.
type StartSessionRequest struct {
	WalletAddress string
	GameType      domain.GameType
	BetAmount     domain.Amount
	CoinGuess     *int // coin_flip only: CoinSideHeads or CoinSideTails
}

// StartSessionResult is returned when a session opens.
type StartSessionResult struct {
	SessionID string        `json:"session_id"`
	GameType  domain.GameType `json:"game_type"`
	BetAmount domain.Amount `json:"bet_amount"`
	Balance   domain.Amount `json:"available_balance"`
	StartedAt time.Time     `json:"started_at"`
}

// CompleteAction is the client's completion request. The client never
// supplies a multiplier or score; outcomes are computed server-side.
type CompleteAction string

const (
	// ActionCashOut asks to cash out a crash session at receipt time.
	ActionCashOut CompleteAction = "cash_out"
	// ActionBusted acknowledges a crash without cash-out (payout zero).
	ActionBusted CompleteAction = "busted"
	// ActionResolve resolves a coin_flip session.
	ActionResolve CompleteAction = "resolve"
)

// CompleteSessionRequest holds validated input for completing a session.
type CompleteSessionRequest struct {
	SessionID     string
	WalletAddress string
	Action        CompleteAction
	GameData      []byte // opaque client detail, stored but never trusted
}

// SessionResult is the resolved outcome of a session.
type SessionResult struct {
	SessionID      string        `json:"session_id"`
	Won            bool          `json:"won"`
	Score          int           `json:"score"` // multiplier in hundredths
	Winnings       domain.Amount `json:"winnings"`
	Balance        domain.Amount `json:"available_balance"`
	RemainingPlays int           `json:"remaining_plays"`
}

// DepositService records verified on-chain deposits idempotently.
type DepositService interface {
	Record(ctx context.Context, req RecordDepositRequest) (*domain.Deposit, error)
}

// RecordDepositRequest holds validated input from the deposit watcher.
type RecordDepositRequest struct {
	WalletAddress string
	Amount        domain.Amount
	TxHash        string
	DepositDate   time.Time
}

// WithdrawalService processes payout requests against the balance store.
type WithdrawalService interface {
	Request(ctx context.Context, wallet string, amount domain.Amount) (*domain.Withdrawal, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, txHash string) (*domain.Withdrawal, error)
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) (*domain.Withdrawal, error)
}

// ReportingService serves balance and history queries.
type ReportingService interface {
	GetBalance(ctx context.Context, wallet string) (*BalanceSnapshot, error)
	GetHistory(ctx context.Context, wallet string, limit, offset int) (*WalletHistory, error)
	GetGameStats(ctx context.Context, wallet string) ([]GameStats, error)
	GetWithdrawal(ctx context.Context, wallet string, id uuid.UUID) (*domain.Withdrawal, error)
}

// BalanceSnapshot is the balance view returned to clients.
type BalanceSnapshot struct {
	WalletAddress   string        `json:"wallet_address"`
	Available       domain.Amount `json:"available_balance"`
	TotalWithdrawn  domain.Amount `json:"total_withdrawn"`
	LastDepositDate *time.Time    `json:"last_deposit_date,omitempty"`
	CanWithdraw     bool          `json:"can_withdraw"`
}

// WalletHistory bundles a wallet's activity for the history endpoint.
type WalletHistory struct {
	Sessions    []domain.GameSession `json:"sessions"`
	Deposits    []domain.Deposit     `json:"deposits"`
	Withdrawals []domain.Withdrawal  `json:"withdrawals"`
}
