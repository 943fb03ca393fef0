package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/repository"
)

// ShardRepository keeps shard balances in memory. Every call holds the
// repository lock, so each operation is atomic.
type ShardRepository struct {
	mu       sync.Mutex
	balances map[string]*domain.ShardBalance
	now      func() time.Time
}

var _ repository.Shards = (*ShardRepository)(nil)

// NewShardRepository creates an empty ledger
func NewShardRepository() *ShardRepository {
	return &ShardRepository{
		balances: make(map[string]*domain.ShardBalance),
		now:      time.Now,
	}
}

func (r *ShardRepository) balance(playerID string) *domain.ShardBalance {
	b, ok := r.balances[playerID]
	if !ok {
		b = domain.NewShardBalance(playerID)
		r.balances[playerID] = b
	}
	return b
}

// GetOrCreateBalance returns a copy of the player's balance
func (r *ShardRepository) GetOrCreateBalance(_ context.Context, playerID string) (*domain.ShardBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.balance(playerID).Clone(), nil
}

// AddShards credits every award and returns the new balance
func (r *ShardRepository) AddShards(_ context.Context, playerID string, awards []domain.ShardAward) (*domain.ShardBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.balance(playerID)
	for _, a := range awards {
		if a.Count < 0 {
			return nil, fmt.Errorf("%w: negative shard count", domain.ErrInvalidInput)
		}
	}
	for _, a := range awards {
		b.Counts[a.Tier] += a.Count
		b.TotalEarned += a.Count
	}
	b.UpdatedAt = r.now()
	return b.Clone(), nil
}

// RedeemShards debits required shards of one tier and counts one redemption.
func (r *ShardRepository) RedeemShards(_ context.Context, playerID string, tier domain.ShardTier, required int) (*domain.ShardBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.balance(playerID)
	if b.Counts[tier] < required {
		return b.Clone(), fmt.Errorf("%w: have %d %s shards, need %d", domain.ErrInsufficientShards, b.Counts[tier], tier, required)
	}
	b.Counts[tier] -= required
	b.TotalRedeemed++
	b.UpdatedAt = r.now()
	return b.Clone(), nil
}
