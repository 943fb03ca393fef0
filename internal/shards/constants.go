package shards

// DefaultRedemptionThreshold applies when the bundle leaves it unset
const DefaultRedemptionThreshold = 10

// Log messages
const (
	LogMsgShardsAwarded      = "Shards awarded"
	LogMsgShardsRedeemed     = "Shards redeemed"
	LogMsgRedemptionRejected = "Shard redemption rejected"
)

// Result messages
const (
	MsgRedeemed = "redeemed %d %s shards"
)

// Error context
const (
	ErrContextAddShards    = "failed to add shards"
	ErrContextRedeemShards = "failed to redeem shards"
	ErrContextGetBalance   = "failed to get shard balance"
)
