package domain

import (
	"time"

	"github.com/google/uuid"
)

// WithdrawalStatus is the lifecycle state of a withdrawal request.
type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
	WithdrawalStatusFailed    WithdrawalStatus = "failed"
)

// Withdrawal is one payout request. The balance is debited optimistically at
// request time and credited back if the external payout fails. TxHash is set
// once the on-chain transfer clears.
type Withdrawal struct {
	ID            uuid.UUID        `json:"id"`
	WalletAddress string           `json:"wallet_address"`
	Amount        Amount           `json:"amount"`
	TxHash        *string          `json:"tx_hash,omitempty"`
	Status        WithdrawalStatus `json:"status"`
	FailureReason *string          `json:"failure_reason,omitempty"`
	RequestedAt   time.Time        `json:"requested_at"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
}

// IsFinal returns true if the withdrawal reached a terminal state.
func (w *Withdrawal) IsFinal() bool {
	return w.Status == WithdrawalStatusCompleted || w.Status == WithdrawalStatusFailed
}
