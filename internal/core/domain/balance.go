package domain

import (
	"regexp"
	"time"
)

// Balance is a wallet's game balance: verified deposits plus net session
// winnings minus withdrawals. One row per wallet address, created lazily on
// first deposit.
type Balance struct {
	WalletAddress    string     `json:"wallet_address"`
	Available        Amount     `json:"available_balance"`
	TotalWithdrawn   Amount     `json:"total_withdrawn"`
	LastDepositDate  *time.Time `json:"last_deposit_date,omitempty"`
	LastWithdrawalAt *time.Time `json:"last_withdrawal_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ZeroBalance returns the implicit balance of a wallet with no deposits yet.
func ZeroBalance(wallet string) *Balance {
	return &Balance{WalletAddress: wallet}
}

var walletAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// ValidWalletAddress reports whether s looks like an EVM wallet address.
func ValidWalletAddress(s string) bool {
	return walletAddressRe.MatchString(s)
}
