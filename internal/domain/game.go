package domain

import "time"

// LineWin is one paying payline
type LineWin struct {
	LineIndex  int        `json:"line_index"`
	SymbolID   string     `json:"symbol_id"`
	Count      int        `json:"count"`
	Positions  []Position `json:"positions"`
	Multiplier float64    `json:"multiplier"`
	Amount     float64    `json:"amount"`
}

// ClusterWin is one paying connected component
type ClusterWin struct {
	ClusterIndex int        `json:"cluster_index"`
	SymbolID     string     `json:"symbol_id"`
	Size         int        `json:"size"`
	Positions    []Position `json:"positions"`
	Multiplier   float64    `json:"multiplier"`
	Amount       float64    `json:"amount"`
}

// NFTDrop describes a direct collectible award
type NFTDrop struct {
	Tier            ShardTier `json:"tier"`
	SymbolID        string    `json:"symbol_id"`
	Collectible     string    `json:"collectible,omitempty"`
	BonusMultiplier float64   `json:"bonus_multiplier"`
	EstimatedValue  float64   `json:"estimated_value"`
	Forced          bool      `json:"forced"`
}

// FreeSpinState tracks a player's bonus round
type FreeSpinState struct {
	Active                bool    `json:"active"`
	Remaining             int     `json:"remaining"`
	TotalAwarded          int     `json:"total_awarded"`
	MultiplierAccumulator float64 `json:"multiplier_accumulator,omitempty"`
}

// RTPDiagnostics exposes the controller view of the spin
type RTPDiagnostics struct {
	Scope      string  `json:"scope"`
	CurrentRTP float64 `json:"current_rtp"`
	TargetRTP  float64 `json:"target_rtp"`
	Spins      int64   `json:"spins"`
	WinChance  float64 `json:"win_chance"`
	Adjustment float64 `json:"adjustment"`
}

// SpinMetadata is the structured payload consumed by presentation layers
type SpinMetadata struct {
	Mode              GridMode        `json:"mode"`
	Volatility        string          `json:"volatility"`
	Tier              SpinOutcomeTier `json:"tier"`
	Grid              Grid            `json:"grid"`
	LineWins          []LineWin       `json:"line_wins,omitempty"`
	ClusterWins       []ClusterWin    `json:"cluster_wins,omitempty"`
	SpecialCount      int             `json:"special_count"`
	BaseWin           float64         `json:"base_win"`
	Multipliers       []int           `json:"multipliers,omitempty"`
	AppliedMultiplier float64         `json:"applied_multiplier"`
	NFTDrop           *NFTDrop        `json:"nft_drop,omitempty"`
	ShardAwards       []ShardAward    `json:"shard_awards,omitempty"`
	FreeSpin          bool            `json:"free_spin"`
	FreeSpins         *FreeSpinState  `json:"free_spins,omitempty"`
	Capped            bool            `json:"capped,omitempty"`
	RTP               RTPDiagnostics  `json:"rtp"`
}

// GameResult is the immutable record of one resolved spin
type GameResult struct {
	GameID     string       `json:"game_id"`
	UserID     string       `json:"user_id"`
	BetAmount  float64      `json:"bet_amount"`
	ResultType ResultType   `json:"result_type"`
	Payout     float64      `json:"payout"`
	Metadata   SpinMetadata `json:"metadata"`
	CreatedAt  time.Time    `json:"created_at"`
}
