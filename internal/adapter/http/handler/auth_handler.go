package handler

import (
	"net/http"

	"gd-arcade/internal/adapter/http/dto"
	"gd-arcade/internal/adapter/http/middleware"
	"gd-arcade/internal/core/ports"
	"gd-arcade/pkg/apperror"
	"gd-arcade/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles token issuance.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Token handles POST /api/v1/auth/token.
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidWalletAddress())
		return
	}

	token, expiresAt, err := h.authSvc.IssueToken(c.Request.Context(), req.WalletAddress)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TokenResponse{
		Token:  token,
		Expiry: expiresAt.Unix(),
	})
}

// walletFromCtx returns the authenticated wallet address set by JWTAuth.
func walletFromCtx(c *gin.Context) (string, bool) {
	wallet, ok := c.Get(middleware.CtxWalletAddress)
	if !ok {
		return "", false
	}
	s, ok := wallet.(string)
	return s, ok
}

// HealthCheck handles GET /health with a deep dependency check.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
