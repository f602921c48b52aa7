package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gd-arcade/internal/core/domain"
	"gd-arcade/internal/core/ports"
	"gd-arcade/pkg/apperror"

	"github.com/rs/zerolog"
)

// coinFlipData is the server-side record of a coin_flip round, stored in
// the session's game_data column.
type coinFlipData struct {
	CoinGuess int  `json:"coin_guess"`
	DrawnSide *int `json:"drawn_side,omitempty"` // revealed at completion
}

// GameServiceImpl implements ports.GameService: it opens wagering
// sessions, enforces daily play limits, and resolves outcomes
// server-side. The outcome target is drawn at session start and never
// leaves the database until the session completes.
type GameServiceImpl struct {
	sessionRepo ports.SessionRepository
	balanceRepo ports.BalanceRepository
	limitRepo   ports.DailyLimitRepository
	transactor  ports.DBTransactor
	rules       ports.GameRuleSet
	log         zerolog.Logger

	// Injection points for deterministic tests.
	now       func() time.Time
	randFloat func() float64
	randIntn  func(n int) int
}

// NewGameService creates a new GameServiceImpl.
func NewGameService(
	sessionRepo ports.SessionRepository,
	balanceRepo ports.BalanceRepository,
	limitRepo ports.DailyLimitRepository,
	transactor ports.DBTransactor,
	rules ports.GameRuleSet,
	log zerolog.Logger,
) *GameServiceImpl {
	return &GameServiceImpl{
		sessionRepo: sessionRepo,
		balanceRepo: balanceRepo,
		limitRepo:   limitRepo,
		transactor:  transactor,
		rules:       rules,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
		randFloat:   secureFloat,
		randIntn:    secureIntn,
	}
}

// gameDate truncates t to its UTC calendar date.
func gameDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckEligibility reports whether the wallet can still play the game today.
func (s *GameServiceImpl) CheckEligibility(ctx context.Context, wallet string, gameType domain.GameType) (*domain.Eligibility, error) {
	rules, ok := s.rules[gameType]
	if !ok {
		return nil, apperror.ErrUnknownGameType(string(gameType))
	}

	limit, err := s.limitRepo.Get(ctx, wallet, gameType, gameDate(s.now()))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get daily limit: %w", err))
	}

	plays := 0
	if limit != nil {
		plays = limit.PlaysToday
	}
	remaining := rules.MaxPlaysPerDay - plays
	if remaining < 0 {
		remaining = 0
	}

	return &domain.Eligibility{
		Allowed:        remaining > 0,
		PlaysToday:     plays,
		RemainingPlays: remaining,
		MaxPlays:       rules.MaxPlaysPerDay,
	}, nil
}

// StartSession opens a wagering session: it reserves a daily play slot,
// debits the bet under a row lock, and draws the session's outcome target.
// Reservation and debit share one transaction, so a failed debit releases
// the slot.
func (s *GameServiceImpl) StartSession(ctx context.Context, req ports.StartSessionRequest) (*ports.StartSessionResult, error) {
	rules, ok := s.rules[req.GameType]
	if !ok {
		return nil, apperror.ErrUnknownGameType(string(req.GameType))
	}
	if req.BetAmount < rules.MinBet || req.BetAmount > rules.MaxBet {
		return nil, apperror.ErrInvalidBet(rules.MinBet.String(), rules.MaxBet.String())
	}

	var gameData []byte
	if req.GameType == domain.GameTypeCoinFlip {
		if req.CoinGuess == nil || (*req.CoinGuess != domain.CoinSideHeads && *req.CoinGuess != domain.CoinSideTails) {
			return nil, apperror.Validation("coin_flip requires a guess of 0 (heads) or 1 (tails)")
		}
		var err error
		gameData, err = json.Marshal(coinFlipData{CoinGuess: *req.CoinGuess})
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("marshal game data: %w", err))
		}
	}

	now := s.now()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Reserve the daily play slot first. The conditional upsert is atomic,
	// so concurrent starts cannot oversubscribe the cap.
	reserved, err := s.limitRepo.ReservePlay(ctx, dbTx, req.WalletAddress, req.GameType, gameDate(now), rules.MaxPlaysPerDay)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reserve play: %w", err))
	}
	if !reserved {
		return nil, apperror.ErrDailyLimitReached()
	}

	// Lock & debit the bet.
	balance, err := s.balanceRepo.GetForUpdate(ctx, dbTx, req.WalletAddress)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if balance == nil || balance.Available < req.BetAmount {
		return nil, apperror.ErrInsufficientFunds()
	}
	newAvailable := balance.Available - req.BetAmount
	if err := s.balanceRepo.SetAvailable(ctx, dbTx, req.WalletAddress, newAvailable); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit bet: %w", err))
	}

	// Draw the outcome now, server-side.
	var target int
	switch req.GameType {
	case domain.GameTypeCrash:
		target = drawCrashPoint(s.randFloat(), rules.MinMultiplier, rules.MaxMultiplier)
	case domain.GameTypeCoinFlip:
		target = s.randIntn(2)
	}

	session := &domain.GameSession{
		SessionID:     domain.NewSessionID(),
		WalletAddress: req.WalletAddress,
		GameType:      req.GameType,
		Status:        domain.SessionStatusInProgress,
		BetAmount:     req.BetAmount,
		OutcomeTarget: target,
		GameData:      gameData,
		StartedAt:     now,
	}
	if err := s.sessionRepo.Create(ctx, dbTx, session); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create session: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("session_id", session.SessionID).
		Str("wallet", req.WalletAddress).
		Str("game_type", string(req.GameType)).
		Str("bet", req.BetAmount.String()).
		Msg("game session started")

	return &ports.StartSessionResult{
		SessionID: session.SessionID,
		GameType:  session.GameType,
		BetAmount: session.BetAmount,
		Balance:   newAvailable,
		StartedAt: session.StartedAt,
	}, nil
}

// CompleteSession resolves a session exactly once. The payout is computed
// from the stored outcome target and the server clock; the client's
// request carries intent only, never a multiplier or score.
func (s *GameServiceImpl) CompleteSession(ctx context.Context, req ports.CompleteSessionRequest) (*ports.SessionResult, error) {
	session, err := s.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get session: %w", err))
	}
	// A foreign wallet's session is indistinguishable from a missing one.
	if session == nil || session.WalletAddress != req.WalletAddress {
		return nil, apperror.ErrSessionNotFound()
	}
	if session.IsCompleted() {
		return nil, apperror.ErrSessionAlreadyCompleted()
	}

	rules := s.rules[session.GameType]
	now := s.now()

	won, score, winnings, gameData, err := s.resolve(session, rules, req, now)
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Check-and-set on status: only one completion wins the race.
	completed, err := s.sessionRepo.Complete(ctx, dbTx, session.SessionID, score, winnings, gameData, now)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("complete session: %w", err))
	}
	if !completed {
		return nil, apperror.ErrSessionAlreadyCompleted()
	}

	// Daily row before balance row, matching the lock order of StartSession.
	limitDate := gameDate(session.StartedAt)
	if winnings > 0 {
		if err := s.limitRepo.AddEarned(ctx, dbTx, session.WalletAddress, session.GameType, limitDate, winnings); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("add earned: %w", err))
		}
	}

	balance, err := s.balanceRepo.GetForUpdate(ctx, dbTx, session.WalletAddress)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if balance == nil {
		return nil, apperror.InternalError(fmt.Errorf("balance row missing for wallet with open session"))
	}
	newAvailable := balance.Available + winnings
	if winnings > 0 {
		if err := s.balanceRepo.SetAvailable(ctx, dbTx, session.WalletAddress, newAvailable); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("credit winnings: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	limit, err := s.limitRepo.Get(ctx, session.WalletAddress, session.GameType, limitDate)
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", session.SessionID).Msg("failed to read daily limit after completion")
	}
	remaining := rules.MaxPlaysPerDay
	if limit != nil {
		remaining = rules.MaxPlaysPerDay - limit.PlaysToday
		if remaining < 0 {
			remaining = 0
		}
	}

	s.log.Info().
		Str("session_id", session.SessionID).
		Str("wallet", session.WalletAddress).
		Bool("won", won).
		Int("score", score).
		Str("winnings", winnings.String()).
		Msg("game session completed")

	return &ports.SessionResult{
		SessionID:      session.SessionID,
		Won:            won,
		Score:          score,
		Winnings:       winnings,
		Balance:        newAvailable,
		RemainingPlays: remaining,
	}, nil
}

// resolve computes the outcome for a completion request.
func (s *GameServiceImpl) resolve(
	session *domain.GameSession,
	rules ports.GameRules,
	req ports.CompleteSessionRequest,
	now time.Time,
) (won bool, score int, winnings domain.Amount, gameData []byte, err error) {
	switch session.GameType {
	case domain.GameTypeCrash:
		switch req.Action {
		case ports.ActionCashOut:
			mult := multiplierAt(now.Sub(session.StartedAt))
			if mult >= session.OutcomeTarget {
				// Cashed out at or past the crash point.
				return false, session.OutcomeTarget, 0, req.GameData, nil
			}
			return true, mult, session.BetAmount.MulHundredths(mult), req.GameData, nil
		case ports.ActionBusted:
			return false, session.OutcomeTarget, 0, req.GameData, nil
		default:
			return false, 0, 0, nil, apperror.Validation("crash_game completion requires action cash_out or busted")
		}

	case domain.GameTypeCoinFlip:
		if req.Action != ports.ActionResolve {
			return false, 0, 0, nil, apperror.Validation("coin_flip completion requires action resolve")
		}
		var data coinFlipData
		if err := json.Unmarshal(session.GameData, &data); err != nil {
			return false, 0, 0, nil, apperror.InternalError(fmt.Errorf("unmarshal coin flip data: %w", err))
		}
		drawn := session.OutcomeTarget
		data.DrawnSide = &drawn
		out, err := json.Marshal(data)
		if err != nil {
			return false, 0, 0, nil, apperror.InternalError(fmt.Errorf("marshal coin flip data: %w", err))
		}
		if data.CoinGuess == drawn {
			return true, rules.WinMultiplier, session.BetAmount.MulHundredths(rules.WinMultiplier), out, nil
		}
		return false, 0, 0, out, nil

	default:
		return false, 0, 0, nil, apperror.ErrUnknownGameType(string(session.GameType))
	}
}
