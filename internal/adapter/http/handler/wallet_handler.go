package handler

import (
	"strconv"

	"gd-arcade/internal/adapter/http/dto"
	"gd-arcade/internal/core/ports"
	"gd-arcade/pkg/apperror"
	"gd-arcade/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles balance, history, and withdrawal endpoints.
type WalletHandler struct {
	reportingSvc  ports.ReportingService
	withdrawalSvc ports.WithdrawalService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(reportingSvc ports.ReportingService, withdrawalSvc ports.WithdrawalService) *WalletHandler {
	return &WalletHandler{reportingSvc: reportingSvc, withdrawalSvc: withdrawalSvc}
}

// GetBalance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	wallet, ok := walletFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	snapshot, err := h.reportingSvc.GetBalance(c.Request.Context(), wallet)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, snapshot)
}

// GetHistory handles GET /api/v1/wallet/history.
func (h *WalletHandler) GetHistory(c *gin.Context) {
	wallet, ok := walletFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	history, err := h.reportingSvc.GetHistory(c.Request.Context(), wallet, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, history)
}

// RequestWithdrawal handles POST /api/v1/wallet/withdrawals.
func (h *WalletHandler) RequestWithdrawal(c *gin.Context) {
	wallet, ok := walletFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	withdrawal, err := h.withdrawalSvc.Request(c.Request.Context(), wallet, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, withdrawal)
}

// GetWithdrawal handles GET /api/v1/wallet/withdrawals/:id.
func (h *WalletHandler) GetWithdrawal(c *gin.Context) {
	wallet, ok := walletFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrWithdrawalNotFound())
		return
	}

	withdrawal, err := h.reportingSvc.GetWithdrawal(c.Request.Context(), wallet, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, withdrawal)
}
