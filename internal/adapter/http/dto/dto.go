package dto

import (
	"encoding/json"

	"gd-arcade/internal/core/domain"
)

// TokenRequest is the request body for token issuance.
type TokenRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required,wallet_address"`
}

// TokenResponse is the response body for a freshly minted token.
type TokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// StartSessionRequest is the request body for opening a game session.
// Amounts are decimal G$ strings.
type StartSessionRequest struct {
	GameType  string        `json:"game_type" binding:"required"`
	BetAmount domain.Amount `json:"bet_amount" binding:"required"`
	CoinGuess *int          `json:"coin_guess,omitempty"` // coin_flip: 0 heads, 1 tails
}

// CompleteSessionRequest is the request body for completing a session. The
// client states its intent only; the outcome is computed server-side.
type CompleteSessionRequest struct {
	Action   string          `json:"action" binding:"required,oneof=cash_out busted resolve"`
	GameData json.RawMessage `json:"game_data,omitempty"`
}

// WithdrawRequest is the request body for a withdrawal.
type WithdrawRequest struct {
	Amount domain.Amount `json:"amount" binding:"required"`
}

// RecordDepositRequest is the internal request body from the on-chain
// deposit watcher.
type RecordDepositRequest struct {
	WalletAddress string        `json:"wallet_address" binding:"required,wallet_address"`
	Amount        domain.Amount `json:"amount" binding:"required"`
	TxHash        string        `json:"tx_hash" binding:"required,max=100"`
	DepositDate   string        `json:"deposit_date,omitempty"` // "2006-01-02", defaults to today
}

// CompleteWithdrawalRequest is the bridge's confirmation callback body.
type CompleteWithdrawalRequest struct {
	TxHash string `json:"tx_hash" binding:"required,max=100"`
}

// FailWithdrawalRequest is the bridge's failure callback body.
type FailWithdrawalRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// DepositResponse is the response body for a recorded deposit.
type DepositResponse struct {
	WalletAddress string        `json:"wallet_address"`
	Amount        domain.Amount `json:"amount"`
	TxHash        string        `json:"tx_hash"`
	DepositDate   string        `json:"deposit_date"`
}
