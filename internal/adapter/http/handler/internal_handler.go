package handler

import (
	"time"

	"gd-arcade/internal/adapter/http/dto"
	"gd-arcade/internal/core/ports"
	"gd-arcade/pkg/apperror"
	"gd-arcade/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InternalHandler handles the service-to-service routes used by the
// deposit watcher and the payout bridge callbacks.
type InternalHandler struct {
	depositSvc    ports.DepositService
	withdrawalSvc ports.WithdrawalService
}

// NewInternalHandler creates a new InternalHandler.
func NewInternalHandler(depositSvc ports.DepositService, withdrawalSvc ports.WithdrawalService) *InternalHandler {
	return &InternalHandler{depositSvc: depositSvc, withdrawalSvc: withdrawalSvc}
}

// RecordDeposit handles POST /api/v1/internal/deposits.
func (h *InternalHandler) RecordDeposit(c *gin.Context) {
	var req dto.RecordDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var depositDate time.Time
	if req.DepositDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DepositDate)
		if err != nil {
			response.Error(c, apperror.Validation("deposit_date must be YYYY-MM-DD"))
			return
		}
		depositDate = parsed
	}

	deposit, err := h.depositSvc.Record(c.Request.Context(), ports.RecordDepositRequest{
		WalletAddress: req.WalletAddress,
		Amount:        req.Amount,
		TxHash:        req.TxHash,
		DepositDate:   depositDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.DepositResponse{
		WalletAddress: deposit.WalletAddress,
		Amount:        deposit.Amount,
		TxHash:        deposit.TxHash,
		DepositDate:   deposit.DepositDate.Format("2006-01-02"),
	})
}

// CompleteWithdrawal handles POST /api/v1/internal/withdrawals/:id/complete.
func (h *InternalHandler) CompleteWithdrawal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrWithdrawalNotFound())
		return
	}

	var req dto.CompleteWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	withdrawal, err := h.withdrawalSvc.MarkCompleted(c.Request.Context(), id, req.TxHash)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, withdrawal)
}

// FailWithdrawal handles POST /api/v1/internal/withdrawals/:id/fail.
func (h *InternalHandler) FailWithdrawal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrWithdrawalNotFound())
		return
	}

	var req dto.FailWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	withdrawal, err := h.withdrawalSvc.MarkFailed(c.Request.Context(), id, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, withdrawal)
}
