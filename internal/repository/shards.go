package repository

import (
	"context"

	"github.com/osse101/SpinForge_Go/internal/domain"
)

// Shards defines the interface for shard ledger storage.
// Implementations apply each call atomically.
type Shards interface {
	GetOrCreateBalance(ctx context.Context, playerID string) (*domain.ShardBalance, error)
	AddShards(ctx context.Context, playerID string, awards []domain.ShardAward) (*domain.ShardBalance, error)
	// RedeemShards debits required shards of one tier, returning
	// domain.ErrInsufficientShards when the balance is too low.
	RedeemShards(ctx context.Context, playerID string, tier domain.ShardTier, required int) (*domain.ShardBalance, error)
}
