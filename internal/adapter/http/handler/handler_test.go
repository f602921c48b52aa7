package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gd-arcade/internal/core/domain"
	"gd-arcade/internal/core/ports"
	"gd-arcade/internal/core/ports/mocks"
	"gd-arcade/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testWallet      = "0x1111111111111111111111111111111111111111"
	testInternalKey = "internal-service-key"
	testPlayerToken = "player-bearer-token"
)

type routerMocks struct {
	authSvc       *mocks.MockAuthService
	gameSvc       *mocks.MockGameService
	depositSvc    *mocks.MockDepositService
	withdrawalSvc *mocks.MockWithdrawalService
	reportingSvc  *mocks.MockReportingService
	tokenSvc      *mocks.MockTokenService
}

func setupRouter(t *testing.T) (*gin.Engine, routerMocks) {
	ctrl := gomock.NewController(t)
	m := routerMocks{
		authSvc:       mocks.NewMockAuthService(ctrl),
		gameSvc:       mocks.NewMockGameService(ctrl),
		depositSvc:    mocks.NewMockDepositService(ctrl),
		withdrawalSvc: mocks.NewMockWithdrawalService(ctrl),
		reportingSvc:  mocks.NewMockReportingService(ctrl),
		tokenSvc:      mocks.NewMockTokenService(ctrl),
	}
	router := SetupRouter(RouterDeps{
		AuthSvc:       m.authSvc,
		GameSvc:       m.gameSvc,
		DepositSvc:    m.depositSvc,
		WithdrawalSvc: m.withdrawalSvc,
		ReportingSvc:  m.reportingSvc,
		TokenSvc:      m.tokenSvc,
		InternalKey:   testInternalKey,
		Logger:        zerolog.Nop(),
	})
	return router, m
}

// expectPlayerAuth wires the token validation performed by the JWT middleware.
func (m routerMocks) expectPlayerAuth() {
	m.tokenSvc.EXPECT().Validate(testPlayerToken).
		Return(&ports.TokenClaims{WalletAddress: testWallet}, nil)
}

func perform(router *gin.Engine, method, path, bearer string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, code string) {
	t.Helper()
	var envelope struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, code, envelope.ErrorCode)
}

func TestAuthToken(t *testing.T) {
	t.Run("issues a token", func(t *testing.T) {
		router, m := setupRouter(t)
		expiry := time.Now().Add(24 * time.Hour)
		m.authSvc.EXPECT().IssueToken(gomock.Any(), testWallet).Return("signed-token", expiry, nil)

		w := perform(router, http.MethodPost, "/api/v1/auth/token", "", gin.H{
			"wallet_address": testWallet,
		})

		require.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Equal(t, "signed-token", data["token"])
		assert.Equal(t, float64(expiry.Unix()), data["expiry"])
	})

	t.Run("malformed wallet address", func(t *testing.T) {
		router, _ := setupRouter(t)
		w := perform(router, http.MethodPost, "/api/v1/auth/token", "", gin.H{
			"wallet_address": "0x123",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assertErrorCode(t, w, "AUTH_002")
	})
}

func TestJWTAuth(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		router, _ := setupRouter(t)
		w := perform(router, http.MethodGet, "/api/v1/wallet/balance", "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assertErrorCode(t, w, "AUTH_001")
	})

	t.Run("invalid token", func(t *testing.T) {
		router, m := setupRouter(t)
		m.tokenSvc.EXPECT().Validate("bad-token").Return(nil, errors.New("expired"))

		w := perform(router, http.MethodGet, "/api/v1/wallet/balance", "bad-token", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assertErrorCode(t, w, "AUTH_001")
	})
}

func TestWalletRoutes(t *testing.T) {
	t.Run("balance", func(t *testing.T) {
		router, m := setupRouter(t)
		m.expectPlayerAuth()
		m.reportingSvc.EXPECT().GetBalance(gomock.Any(), testWallet).Return(&ports.BalanceSnapshot{
			WalletAddress: testWallet,
			Available:     domain.GDollars(250),
			CanWithdraw:   true,
		}, nil)

		w := perform(router, http.MethodGet, "/api/v1/wallet/balance", testPlayerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeData(t, w)
		assert.Equal(t, "250", data["available_balance"])
		assert.Equal(t, true, data["can_withdraw"])
	})

	t.Run("history passes paging through", func(t *testing.T) {
		router, m := setupRouter(t)
		m.expectPlayerAuth()
		m.reportingSvc.EXPECT().GetHistory(gomock.Any(), testWallet, 5, 10).
			Return(&ports.WalletHistory{}, nil)

		w := perform(router, http.MethodGet, "/api/v1/wallet/history?limit=5&offset=10", testPlayerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("request withdrawal", func(t *testing.T) {
		router, m := setupRouter(t)
		m.expectPlayerAuth()
		id := uuid.New()
		m.withdrawalSvc.EXPECT().Request(gomock.Any(), testWallet, domain.GDollars(150)).
			Return(&domain.Withdrawal{
				ID:            id,
				WalletAddress: testWallet,
				Amount:        domain.GDollars(150),
				Status:        domain.WithdrawalStatusCompleted,
			}, nil)

		w := perform(router, http.MethodPost, "/api/v1/wallet/withdrawals", testPlayerToken, gin.H{
			"amount": "150",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		data := decodeData(t, w)
		assert.Equal(t, id.String(), data["id"])
		assert.Equal(t, "completed", data["status"])
	})

	t.Run("withdrawal below minimum surfaces WDR_001", func(t *testing.T) {
		router, m := setupRouter(t)
		m.expectPlayerAuth()
		m.withdrawalSvc.EXPECT().Request(gomock.Any(), testWallet, domain.GDollars(5)).
			Return(nil, apperror.ErrWithdrawalBelowMinimum("100"))

		w := perform(router, http.MethodPost, "/api/v1/wallet/withdrawals", testPlayerToken, gin.H{
			"amount": "5",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assertErrorCode(t, w, "WDR_001")
	})

	t.Run("withdrawal lookup with bad id", func(t *testing.T) {
		router, m := setupRouter(t)
		m.expectPlayerAuth()

		w := perform(router, http.MethodGet, "/api/v1/wallet/withdrawals/not-a-uuid", testPlayerToken, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assertErrorCode(t, w, "WDR_003")
	})
}

func TestGameRoutes(t *testing.T) {
	t.Run("eligibility", func(t *testing.T) {
		router, m := setupRouter(t)
		m.expectPlayerAuth()
		m.gameSvc.EXPECT().CheckEligibility(gomock.Any(), testWallet, domain.GameTypeCrash).
			Return(&domain.Eligibility{Allowed: true, RemainingPlays: 18, MaxPlays: 20, PlaysToday: 2}, nil)

		w := perform(router, http.MethodGet, "/api/v1/games/crash_game/eligibility", testPlayerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeData(t, w)
		assert.Equal(t, true, data["can_play"])
		assert.Equal(t, float64(18), data["remaining_plays"])
	})

	t.Run("eligibility with unknown game type", func(t *testing.T) {
		router, m := setupRouter(t)
		m.expectPlayerAuth()

		w := perform(router, http.MethodGet, "/api/v1/games/roulette/eligibility", testPlayerToken, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assertErrorCode(t, w, "GAME_005")
	})

	t.Run("start session", func(t *testing.T) {
		router, m := setupRouter(t)
		m.expectPlayerAuth()
		m.gameSvc.EXPECT().StartSession(gomock.Any(), ports.StartSessionRequest{
			WalletAddress: testWallet,
			GameType:      domain.GameTypeCrash,
			BetAmount:     domain.GDollars(100),
		}).Return(&ports.StartSessionResult{
			SessionID: "GAME-3F2A9C01",
			GameType:  domain.GameTypeCrash,
			BetAmount: domain.GDollars(100),
			Balance:   domain.GDollars(400),
		}, nil)

		w := perform(router, http.MethodPost, "/api/v1/games/sessions", testPlayerToken, gin.H{
			"game_type":  "crash_game",
			"bet_amount": "100",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		data := decodeData(t, w)
		assert.Equal(t, "GAME-3F2A9C01", data["session_id"])
		assert.Equal(t, "400", data["available_balance"])
	})

	t.Run("start session at daily limit", func(t *testing.T) {
		router, m := setupRouter(t)
		m.expectPlayerAuth()
		m.gameSvc.EXPECT().StartSession(gomock.Any(), gomock.Any()).
			Return(nil, apperror.ErrDailyLimitReached())

		w := perform(router, http.MethodPost, "/api/v1/games/sessions", testPlayerToken, gin.H{
			"game_type":  "crash_game",
			"bet_amount": "100",
		})
		require.Equal(t, http.StatusTooManyRequests, w.Code)
		assertErrorCode(t, w, "GAME_002")
	})

	t.Run("complete session", func(t *testing.T) {
		router, m := setupRouter(t)
		m.expectPlayerAuth()
		m.gameSvc.EXPECT().CompleteSession(gomock.Any(), ports.CompleteSessionRequest{
			SessionID:     "GAME-3F2A9C01",
			WalletAddress: testWallet,
			Action:        ports.ActionCashOut,
		}).Return(&ports.SessionResult{
			SessionID:      "GAME-3F2A9C01",
			Won:            true,
			Score:          169,
			Winnings:       domain.GDollars(169),
			Balance:        domain.GDollars(569),
			RemainingPlays: 17,
		}, nil)

		w := perform(router, http.MethodPost, "/api/v1/games/sessions/GAME-3F2A9C01/complete", testPlayerToken, gin.H{
			"action": "cash_out",
		})
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeData(t, w)
		assert.Equal(t, true, data["won"])
		assert.Equal(t, float64(169), data["score"])
		assert.Equal(t, "169", data["winnings"])
	})

	t.Run("complete session with invalid action", func(t *testing.T) {
		router, m := setupRouter(t)
		m.expectPlayerAuth()

		w := perform(router, http.MethodPost, "/api/v1/games/sessions/GAME-3F2A9C01/complete", testPlayerToken, gin.H{
			"action": "teleport",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("stats", func(t *testing.T) {
		router, m := setupRouter(t)
		m.expectPlayerAuth()
		m.reportingSvc.EXPECT().GetGameStats(gomock.Any(), testWallet).
			Return([]ports.GameStats{{GameType: domain.GameTypeCrash, TotalPlays: 7}}, nil)

		w := perform(router, http.MethodGet, "/api/v1/games/stats", testPlayerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestInternalRoutes(t *testing.T) {
	t.Run("missing service key", func(t *testing.T) {
		router, _ := setupRouter(t)
		w := perform(router, http.MethodPost, "/api/v1/internal/deposits", "", gin.H{})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assertErrorCode(t, w, "AUTH_003")
	})

	t.Run("wrong service key", func(t *testing.T) {
		router, _ := setupRouter(t)
		w := perform(router, http.MethodPost, "/api/v1/internal/deposits", "wrong-key", gin.H{})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assertErrorCode(t, w, "AUTH_003")
	})

	t.Run("record deposit", func(t *testing.T) {
		router, m := setupRouter(t)
		depositDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		m.depositSvc.EXPECT().Record(gomock.Any(), ports.RecordDepositRequest{
			WalletAddress: testWallet,
			Amount:        domain.GDollars(150),
			TxHash:        "0xdeadbeef",
			DepositDate:   depositDate,
		}).Return(&domain.Deposit{
			WalletAddress: testWallet,
			Amount:        domain.GDollars(150),
			TxHash:        "0xdeadbeef",
			DepositDate:   depositDate,
		}, nil)

		w := perform(router, http.MethodPost, "/api/v1/internal/deposits", testInternalKey, gin.H{
			"wallet_address": testWallet,
			"amount":         "150",
			"tx_hash":        "0xdeadbeef",
			"deposit_date":   "2026-03-14",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		data := decodeData(t, w)
		assert.Equal(t, "150", data["amount"])
		assert.Equal(t, "2026-03-14", data["deposit_date"])
	})

	t.Run("duplicate deposit surfaces DEP_001", func(t *testing.T) {
		router, m := setupRouter(t)
		m.depositSvc.EXPECT().Record(gomock.Any(), gomock.Any()).
			Return(nil, apperror.ErrDuplicateDeposit())

		w := perform(router, http.MethodPost, "/api/v1/internal/deposits", testInternalKey, gin.H{
			"wallet_address": testWallet,
			"amount":         "150",
			"tx_hash":        "0xdeadbeef",
		})
		require.Equal(t, http.StatusConflict, w.Code)
		assertErrorCode(t, w, "DEP_001")
	})

	t.Run("complete withdrawal callback", func(t *testing.T) {
		router, m := setupRouter(t)
		id := uuid.New()
		m.withdrawalSvc.EXPECT().MarkCompleted(gomock.Any(), id, "0xbridge01").
			Return(&domain.Withdrawal{ID: id, Status: domain.WithdrawalStatusCompleted}, nil)

		w := perform(router, http.MethodPost, "/api/v1/internal/withdrawals/"+id.String()+"/complete", testInternalKey, gin.H{
			"tx_hash": "0xbridge01",
		})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("fail withdrawal callback", func(t *testing.T) {
		router, m := setupRouter(t)
		id := uuid.New()
		m.withdrawalSvc.EXPECT().MarkFailed(gomock.Any(), id, "bridge reversal").
			Return(&domain.Withdrawal{ID: id, Status: domain.WithdrawalStatusFailed}, nil)

		w := perform(router, http.MethodPost, "/api/v1/internal/withdrawals/"+id.String()+"/fail", testInternalKey, gin.H{
			"reason": "bridge reversal",
		})
		require.Equal(t, http.StatusOK, w.Code)
	})
}

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                 { return s.name }
func (s stubChecker) Ping(_ context.Context) error { return s.err }

func TestHealthCheck(t *testing.T) {
	t.Run("all dependencies healthy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := SetupRouter(RouterDeps{
			TokenSvc: mocks.NewMockTokenService(ctrl),
			Logger:   zerolog.Nop(),
			HealthCheckers: []ports.HealthChecker{
				stubChecker{name: "postgres"},
				stubChecker{name: "redis"},
			},
		})

		w := perform(router, http.MethodGet, "/health", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	})

	t.Run("degraded when a dependency is down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := SetupRouter(RouterDeps{
			TokenSvc: mocks.NewMockTokenService(ctrl),
			Logger:   zerolog.Nop(),
			HealthCheckers: []ports.HealthChecker{
				stubChecker{name: "postgres"},
				stubChecker{name: "redis", err: errors.New("connection refused")},
			},
		})

		w := perform(router, http.MethodGet, "/health", "", nil)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	})
}
