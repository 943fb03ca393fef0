package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/slots"
)

// MockSlotsService mocks slots.Service
type MockSlotsService struct {
	mock.Mock
}

func (m *MockSlotsService) ResolveSpin(ctx context.Context, req slots.SpinRequest) (*domain.GameResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameResult), args.Error(1)
}

func (m *MockSlotsService) FindResults(ctx context.Context, userID string, limit int) ([]domain.GameResult, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GameResult), args.Error(1)
}

func (m *MockSlotsService) FindResult(ctx context.Context, gameID string) (*domain.GameResult, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameResult), args.Error(1)
}

func (m *MockSlotsService) FreeSpins(userID string, mode domain.GridMode) *domain.FreeSpinState {
	args := m.Called(userID, mode)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.FreeSpinState)
}

func (m *MockSlotsService) RTPState(ctx context.Context, mode domain.GridMode, userID string) (domain.RTPState, error) {
	args := m.Called(ctx, mode, userID)
	return args.Get(0).(domain.RTPState), args.Error(1)
}

// MockShardService mocks shards.Service
type MockShardService struct {
	mock.Mock
}

func (m *MockShardService) GetOrCreateBalance(ctx context.Context, playerID string) (*domain.ShardBalance, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShardBalance), args.Error(1)
}

func (m *MockShardService) AddShards(ctx context.Context, playerID string, awards []domain.ShardAward) (*domain.ShardBalance, error) {
	args := m.Called(ctx, playerID, awards)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShardBalance), args.Error(1)
}

func (m *MockShardService) RedeemShards(ctx context.Context, playerID string, tier domain.ShardTier, required int) (*domain.RedemptionResult, error) {
	args := m.Called(ctx, playerID, tier, required)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RedemptionResult), args.Error(1)
}

func (m *MockShardService) Threshold() int {
	return m.Called().Int(0)
}

// MockQuoter mocks PriceQuoter
type MockQuoter struct {
	mock.Mock
}

func (m *MockQuoter) Quote(ctx context.Context, mode domain.GridMode, profile string) (domain.PriceBreakdown, error) {
	args := m.Called(ctx, mode, profile)
	return args.Get(0).(domain.PriceBreakdown), args.Error(1)
}

// MockHealthChecker mocks HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) CheckHealth(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
