package domain

import "time"

// Deposit is an immutable record of a verified on-chain deposit. The tx hash
// is globally unique so a deposit can be credited at most once.
type Deposit struct {
	ID            int64     `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	Amount        Amount    `json:"amount"`
	TxHash        string    `json:"tx_hash"`
	DepositDate   time.Time `json:"deposit_date"` // calendar date, UTC midnight
	CreatedAt     time.Time `json:"created_at"`
}
