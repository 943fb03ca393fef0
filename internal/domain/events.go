package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action>
const (
	// EventTypeSpinCompleted is published after every resolved spin
	EventTypeSpinCompleted = "spin.completed"

	// EventTypeFreeSpinsTriggered is published when a spin awards or retriggers free spins
	EventTypeFreeSpinsTriggered = "freespins.triggered"

	// EventTypeNFTDropped is published when a direct collectible drop hits
	EventTypeNFTDropped = "nft.dropped"

	// EventTypeShardsAwarded is published when shard patterns pay out
	EventTypeShardsAwarded = "shards.awarded"

	// EventTypeShardsRedeemed is published after a successful redemption
	EventTypeShardsRedeemed = "shards.redeemed"
)

// SpinCompletedPayload is the event payload for spin.completed events
type SpinCompletedPayload struct {
	GameID     string          `json:"game_id"`
	UserID     string          `json:"user_id"`
	Mode       GridMode        `json:"mode"`
	Tier       SpinOutcomeTier `json:"tier"`
	BetAmount  float64         `json:"bet_amount"`
	Wagered    float64         `json:"wagered"`
	Payout     float64         `json:"payout"`
	ResultType ResultType      `json:"result_type"`
	FreeSpin   bool            `json:"free_spin"`
	CurrentRTP float64         `json:"current_rtp"`
}

// FreeSpinsTriggeredPayload is the event payload for freespins.triggered events
type FreeSpinsTriggeredPayload struct {
	UserID    string   `json:"user_id"`
	Mode      GridMode `json:"mode"`
	Awarded   int      `json:"awarded"`
	Remaining int      `json:"remaining"`
	Retrigger bool     `json:"retrigger"`
}

// NFTDroppedPayload is the event payload for nft.dropped events
type NFTDroppedPayload struct {
	UserID string   `json:"user_id"`
	GameID string   `json:"game_id"`
	Drop   NFTDrop  `json:"drop"`
	Mode   GridMode `json:"mode"`
}

// ShardsAwardedPayload is the event payload for shards.awarded events
type ShardsAwardedPayload struct {
	UserID string       `json:"user_id"`
	Awards []ShardAward `json:"awards"`
}

// ShardsRedeemedPayload is the event payload for shards.redeemed events
type ShardsRedeemedPayload struct {
	UserID   string    `json:"user_id"`
	Tier     ShardTier `json:"tier"`
	Required int       `json:"required"`
}
