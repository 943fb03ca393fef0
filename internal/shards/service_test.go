package shards

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinForge_Go/internal/database/memory"
	"github.com/osse101/SpinForge_Go/internal/domain"
)

type mockShardRepo struct {
	mock.Mock
}

func (m *mockShardRepo) GetOrCreateBalance(ctx context.Context, playerID string) (*domain.ShardBalance, error) {
	args := m.Called(ctx, playerID)
	bal, _ := args.Get(0).(*domain.ShardBalance)
	return bal, args.Error(1)
}

func (m *mockShardRepo) AddShards(ctx context.Context, playerID string, awards []domain.ShardAward) (*domain.ShardBalance, error) {
	args := m.Called(ctx, playerID, awards)
	bal, _ := args.Get(0).(*domain.ShardBalance)
	return bal, args.Error(1)
}

func (m *mockShardRepo) RedeemShards(ctx context.Context, playerID string, tier domain.ShardTier, required int) (*domain.ShardBalance, error) {
	args := m.Called(ctx, playerID, tier, required)
	bal, _ := args.Get(0).(*domain.ShardBalance)
	return bal, args.Error(1)
}

func seed(t *testing.T, svc Service, player string, tier domain.ShardTier, n int) {
	t.Helper()
	_, err := svc.AddShards(context.Background(), player, []domain.ShardAward{{Tier: tier, Count: n}})
	require.NoError(t, err)
}

func TestRedeemShards_Threshold(t *testing.T) {
	tests := []struct {
		name         string
		balance      int
		wantOK       bool
		wantAfter    int
		wantRedeemed int
	}{
		{"nine is not enough", 9, false, 9, 0},
		{"ten redeems", 10, true, 0, 1},
		{"eleven leaves one", 11, true, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(memory.NewShardRepository(), nil, 10)
			seed(t, svc, "p1", domain.ShardTierB, tt.balance)

			res, err := svc.RedeemShards(context.Background(), "p1", domain.ShardTierB, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, res.Success)
			if !tt.wantOK {
				assert.ErrorIs(t, res.Error, domain.ErrInsufficientShards)
			}
			assert.Equal(t, tt.wantAfter, res.Balance.Counts[domain.ShardTierB])
			assert.Equal(t, tt.wantRedeemed, res.Balance.TotalRedeemed)
		})
	}
}

func TestRedeemShards_ExactBalanceCountsOneRedemption(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewShardRepository(), nil, 10)
	seed(t, svc, "p1", domain.ShardTierC, 10)

	res, err := svc.RedeemShards(ctx, "p1", domain.ShardTierC, 10)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Zero(t, res.Balance.Counts[domain.ShardTierC])
	assert.Equal(t, 1, res.Balance.TotalRedeemed)

	bal, err := svc.GetOrCreateBalance(ctx, "p1")
	require.NoError(t, err)
	assert.Zero(t, bal.Counts[domain.ShardTierC])
	assert.Equal(t, 1, bal.TotalRedeemed)
	assert.Equal(t, 10, bal.TotalEarned)
}

func TestRedeemShards_UnknownTier(t *testing.T) {
	svc := NewService(memory.NewShardRepository(), nil, 10)

	_, err := svc.RedeemShards(context.Background(), "p1", domain.ShardTier("Z"), 10)
	assert.ErrorIs(t, err, domain.ErrUnknownShardTier)
}

func TestRedeemShards_LowercaseTier(t *testing.T) {
	svc := NewService(memory.NewShardRepository(), nil, 10)
	seed(t, svc, "p1", domain.ShardTierS, 10)

	res, err := svc.RedeemShards(context.Background(), "p1", domain.ShardTier("s"), 10)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestRedeemShards_ConcurrentOnlyOneSucceeds(t *testing.T) {
	svc := NewService(memory.NewShardRepository(), nil, 10)
	seed(t, svc, "p1", domain.ShardTierC, 10)

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.RedeemShards(context.Background(), "p1", domain.ShardTierC, 10)
			if err == nil && res.Success {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	bal, err := svc.GetOrCreateBalance(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, bal.Counts[domain.ShardTierC])
}

func TestAddShards_Validation(t *testing.T) {
	repo := new(mockShardRepo)
	svc := NewService(repo, nil, 0)

	_, err := svc.AddShards(context.Background(), "p1", []domain.ShardAward{{Tier: domain.ShardTierA, Count: 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.AddShards(context.Background(), "", []domain.ShardAward{{Tier: domain.ShardTierA, Count: 1}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.AssertNotCalled(t, "AddShards", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, DefaultRedemptionThreshold, svc.Threshold())
}

func TestRedeemShards_RepositoryError(t *testing.T) {
	repo := new(mockShardRepo)
	boom := errors.New("connection reset")
	repo.On("RedeemShards", mock.Anything, "p1", domain.ShardTierA, 10).Return(nil, boom)

	svc := NewService(repo, nil, 10)
	res, err := svc.RedeemShards(context.Background(), "p1", domain.ShardTierA, 0)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), ErrContextRedeemShards)
	repo.AssertExpectations(t)
}
