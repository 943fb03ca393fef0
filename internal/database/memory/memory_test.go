package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinForge_Go/internal/domain"
)

func TestResultRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewResultRepository()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, &domain.GameResult{
			GameID:    fmt.Sprintf("g%d", i),
			UserID:    "alice",
			BetAmount: 1,
			CreatedAt: time.Unix(int64(i), 0),
		}))
	}
	require.NoError(t, repo.Save(ctx, &domain.GameResult{GameID: "other", UserID: "bob", BetAmount: 1}))

	got, err := repo.FindByUserID(ctx, "alice", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "g4", got[0].GameID)
	assert.Equal(t, "g2", got[2].GameID)

	all, err := repo.FindByUserID(ctx, "alice", 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	none, err := repo.FindByUserID(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestResultRepository_Immutable(t *testing.T) {
	ctx := context.Background()
	repo := NewResultRepository()

	require.NoError(t, repo.Save(ctx, &domain.GameResult{GameID: "g1", UserID: "u", Payout: 2}))
	err := repo.Save(ctx, &domain.GameResult{GameID: "g1", UserID: "u", Payout: 9})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := repo.FindByID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Payout)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrResultNotFound)
}

func TestShardRepository_AddAndRedeem(t *testing.T) {
	ctx := context.Background()
	repo := NewShardRepository()

	bal, err := repo.GetOrCreateBalance(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, bal.Counts[domain.ShardTierA])

	bal, err = repo.AddShards(ctx, "p1", []domain.ShardAward{
		{Tier: domain.ShardTierA, Count: 6},
		{Tier: domain.ShardTierA, Count: 4},
		{Tier: domain.ShardTierC, Count: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 10, bal.Counts[domain.ShardTierA])
	assert.Equal(t, 11, bal.TotalEarned)

	bal, err = repo.RedeemShards(ctx, "p1", domain.ShardTierA, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, bal.Counts[domain.ShardTierA])
	assert.Equal(t, 1, bal.TotalRedeemed)

	_, err = repo.RedeemShards(ctx, "p1", domain.ShardTierC, 10)
	assert.ErrorIs(t, err, domain.ErrInsufficientShards)

	// Returned balances are copies
	bal.Counts[domain.ShardTierC] = 99
	fresh, _ := repo.GetOrCreateBalance(ctx, "p1")
	assert.Equal(t, 1, fresh.Counts[domain.ShardTierC])
}
