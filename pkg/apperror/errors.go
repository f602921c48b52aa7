package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Balance (BAL) ----

func ErrInsufficientFunds() *AppError {
	return New("BAL_001", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("BAL_002", "Invalid amount", http.StatusBadRequest)
}

// ---- Game sessions (GAME) ----

func ErrInvalidBet(min, max string) *AppError {
	return New("GAME_001", fmt.Sprintf("Bet must be between %s and %s G$", min, max), http.StatusBadRequest)
}

func ErrDailyLimitReached() *AppError {
	return New("GAME_002", "Daily play limit reached, come back tomorrow", http.StatusTooManyRequests)
}

func ErrSessionNotFound() *AppError {
	return New("GAME_003", "Game session not found", http.StatusNotFound)
}

func ErrSessionAlreadyCompleted() *AppError {
	return New("GAME_004", "Game session already completed", http.StatusConflict)
}

func ErrUnknownGameType(gameType string) *AppError {
	return New("GAME_005", fmt.Sprintf("Unknown game type %q", gameType), http.StatusBadRequest)
}

// ---- Deposits (DEP) ----

func ErrDuplicateDeposit() *AppError {
	return New("DEP_001", "Deposit transaction already recorded", http.StatusConflict)
}

func ErrDepositBelowMinimum(min string) *AppError {
	return New("DEP_002", fmt.Sprintf("Minimum deposit is %s G$", min), http.StatusBadRequest)
}

func ErrDailyDepositLimitExceeded(max string) *AppError {
	return New("DEP_003", fmt.Sprintf("Daily deposit limit of %s G$ exceeded", max), http.StatusUnprocessableEntity)
}

// ---- Withdrawals (WDR) ----

func ErrWithdrawalBelowMinimum(min string) *AppError {
	return New("WDR_001", fmt.Sprintf("Minimum withdrawal is %s G$", min), http.StatusBadRequest)
}

func ErrWithdrawalAboveMaximum(max string) *AppError {
	return New("WDR_002", fmt.Sprintf("Maximum withdrawal is %s G$", max), http.StatusBadRequest)
}

func ErrWithdrawalNotFound() *AppError {
	return New("WDR_003", "Withdrawal not found", http.StatusNotFound)
}

func ErrPayoutFailed(reason string) *AppError {
	return New("WDR_004", fmt.Sprintf("Payout failed: %s", reason), http.StatusBadGateway)
}

func ErrWithdrawalAlreadyFinalized() *AppError {
	return New("WDR_005", "Withdrawal is not pending", http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidWalletAddress() *AppError {
	return New("AUTH_002", "Invalid wallet address", http.StatusBadRequest)
}

func ErrInvalidServiceKey() *AppError {
	return New("AUTH_003", "Invalid service key", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a validation error with a custom message.
func Validation(message string) *AppError {
	return New("BAL_002", message, http.StatusBadRequest)
}
