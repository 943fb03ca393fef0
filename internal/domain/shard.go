package domain

import (
	"fmt"
	"strings"
	"time"
)

// ShardTier ranks collectibles, S highest
type ShardTier string

const (
	ShardTierS ShardTier = "S"
	ShardTierA ShardTier = "A"
	ShardTierB ShardTier = "B"
	ShardTierC ShardTier = "C"
)

// ShardTiers lists tiers from rarest to most common
var ShardTiers = []ShardTier{ShardTierS, ShardTierA, ShardTierB, ShardTierC}

// ParseShardTier validates a tier name, case-insensitive.
func ParseShardTier(s string) (ShardTier, error) {
	t := ShardTier(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range ShardTiers {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShardTier, s)
}

// ShardPattern names a grid shape that can drop shards
type ShardPattern string

const (
	PatternSideCombo      ShardPattern = "side_combo"
	PatternEdgeCombo      ShardPattern = "edge_combo"
	PatternDiagonalPair   ShardPattern = "diagonal_pair"
	PatternClusterOf4     ShardPattern = "cluster_of_4"
	PatternClusterOf5     ShardPattern = "cluster_of_5"
	PatternClusterOf6Plus ShardPattern = "cluster_of_6_plus"
)

// ShardBalance is a player's shard ledger
type ShardBalance struct {
	PlayerID      string            `json:"player_id"`
	Counts        map[ShardTier]int `json:"counts"`
	TotalEarned   int               `json:"total_earned"`
	// TotalRedeemed counts successful redemptions, not shards spent.
	TotalRedeemed int               `json:"total_redeemed"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// NewShardBalance returns an empty balance with every tier present.
func NewShardBalance(playerID string) *ShardBalance {
	counts := make(map[ShardTier]int, len(ShardTiers))
	for _, t := range ShardTiers {
		counts[t] = 0
	}
	return &ShardBalance{PlayerID: playerID, Counts: counts, UpdatedAt: time.Now()}
}

// Clone returns a deep copy.
func (b *ShardBalance) Clone() *ShardBalance {
	c := *b
	c.Counts = make(map[ShardTier]int, len(b.Counts))
	for k, v := range b.Counts {
		c.Counts[k] = v
	}
	return &c
}

// ShardAward credits shards of one tier
type ShardAward struct {
	Tier    ShardTier    `json:"tier" validate:"required,oneof=S A B C"`
	Count   int          `json:"count" validate:"min=1"`
	Pattern ShardPattern `json:"pattern,omitempty"`
}

// RedemptionResult reports a redemption attempt. Insufficient balance is a
// failed result carrying ErrInsufficientShards, not a returned error.
type RedemptionResult struct {
	Success bool          `json:"success"`
	Error   error         `json:"-"`
	Message string        `json:"message,omitempty"`
	Balance *ShardBalance `json:"balance,omitempty"`
}
