package handler

import (
	"gd-arcade/internal/adapter/http/dto"
	"gd-arcade/internal/core/domain"
	"gd-arcade/internal/core/ports"
	"gd-arcade/pkg/apperror"
	"gd-arcade/pkg/response"

	"github.com/gin-gonic/gin"
)

// GameHandler handles game session endpoints.
type GameHandler struct {
	gameSvc      ports.GameService
	reportingSvc ports.ReportingService
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(gameSvc ports.GameService, reportingSvc ports.ReportingService) *GameHandler {
	return &GameHandler{gameSvc: gameSvc, reportingSvc: reportingSvc}
}

// Eligibility handles GET /api/v1/games/:game_type/eligibility.
func (h *GameHandler) Eligibility(c *gin.Context) {
	wallet, ok := walletFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	gameType, ok := domain.ParseGameType(c.Param("game_type"))
	if !ok {
		response.Error(c, apperror.ErrUnknownGameType(c.Param("game_type")))
		return
	}

	eligibility, err := h.gameSvc.CheckEligibility(c.Request.Context(), wallet, gameType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, eligibility)
}

// StartSession handles POST /api/v1/games/sessions.
func (h *GameHandler) StartSession(c *gin.Context) {
	wallet, ok := walletFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	gameType, ok := domain.ParseGameType(req.GameType)
	if !ok {
		response.Error(c, apperror.ErrUnknownGameType(req.GameType))
		return
	}

	result, err := h.gameSvc.StartSession(c.Request.Context(), ports.StartSessionRequest{
		WalletAddress: wallet,
		GameType:      gameType,
		BetAmount:     req.BetAmount,
		CoinGuess:     req.CoinGuess,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// CompleteSession handles POST /api/v1/games/sessions/:session_id/complete.
func (h *GameHandler) CompleteSession(c *gin.Context) {
	wallet, ok := walletFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CompleteSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.gameSvc.CompleteSession(c.Request.Context(), ports.CompleteSessionRequest{
		SessionID:     c.Param("session_id"),
		WalletAddress: wallet,
		Action:        ports.CompleteAction(req.Action),
		GameData:      req.GameData,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// Stats handles GET /api/v1/games/stats.
func (h *GameHandler) Stats(c *gin.Context) {
	wallet, ok := walletFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	stats, err := h.reportingSvc.GetGameStats(c.Request.Context(), wallet)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, stats)
}
