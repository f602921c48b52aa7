package domain

import "time"

// DailyLimit tracks plays and earnings for one (wallet, game type, calendar
// date). Date rollover creates a new row rather than resetting counters.
type DailyLimit struct {
	ID            int64     `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	GameType      GameType  `json:"game_type"`
	GameDate      time.Time `json:"game_date"`
	PlaysToday    int       `json:"plays_today"`
	EarnedToday   Amount    `json:"earned_today"`
}

// Eligibility is the answer to "can this wallet play this game today".
type Eligibility struct {
	Allowed        bool `json:"can_play"`
	PlaysToday     int  `json:"plays_today"`
	RemainingPlays int  `json:"remaining_plays"`
	MaxPlays       int  `json:"max_plays"`
}
