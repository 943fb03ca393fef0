package shards

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/SpinForge_Go/internal/concurrency"
	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/event"
	"github.com/osse101/SpinForge_Go/internal/logger"
	"github.com/osse101/SpinForge_Go/internal/repository"
)

// Service defines the shard ledger
type Service interface {
	GetOrCreateBalance(ctx context.Context, playerID string) (*domain.ShardBalance, error)
	AddShards(ctx context.Context, playerID string, awards []domain.ShardAward) (*domain.ShardBalance, error)
	// RedeemShards debits required shards (the configured threshold when
	// required <= 0). Insufficient balance is reported in the result.
	RedeemShards(ctx context.Context, playerID string, tier domain.ShardTier, required int) (*domain.RedemptionResult, error)
	Threshold() int
}

type service struct {
	repo      repository.Shards
	publisher *event.ResilientPublisher
	locks     *concurrency.LockManager
	validate  *validator.Validate
	threshold int
}

// NewService creates a shard ledger service. publisher may be nil.
func NewService(repo repository.Shards, publisher *event.ResilientPublisher, threshold int) Service {
	if threshold <= 0 {
		threshold = DefaultRedemptionThreshold
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		locks:     concurrency.NewLockManager(),
		validate:  validator.New(),
		threshold: threshold,
	}
}

func (s *service) Threshold() int {
	return s.threshold
}

func (s *service) GetOrCreateBalance(ctx context.Context, playerID string) (*domain.ShardBalance, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	bal, err := s.repo.GetOrCreateBalance(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetBalance, err)
	}
	return bal, nil
}

func (s *service) AddShards(ctx context.Context, playerID string, awards []domain.ShardAward) (*domain.ShardBalance, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	if len(awards) == 0 {
		return s.GetOrCreateBalance(ctx, playerID)
	}
	for i := range awards {
		if err := s.validate.Struct(awards[i]); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}

	var bal *domain.ShardBalance
	err := s.locks.WithLock(playerID, func() (err error) {
		bal, err = s.repo.AddShards(ctx, playerID, awards)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextAddShards, err)
	}

	logger.FromContext(ctx).Debug(LogMsgShardsAwarded, "player_id", playerID, "awards", len(awards))
	s.publish(ctx, event.NewShardsAwardedEvent(domain.ShardsAwardedPayload{
		UserID: playerID,
		Awards: awards,
	}))
	return bal, nil
}

func (s *service) RedeemShards(ctx context.Context, playerID string, tier domain.ShardTier, required int) (*domain.RedemptionResult, error) {
	log := logger.FromContext(ctx)

	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	tier, err := domain.ParseShardTier(string(tier))
	if err != nil {
		return nil, err
	}
	if required <= 0 {
		required = s.threshold
	}

	var bal *domain.ShardBalance
	err = s.locks.WithLock(playerID, func() (err error) {
		bal, err = s.repo.RedeemShards(ctx, playerID, tier, required)
		return err
	})

	if errors.Is(err, domain.ErrInsufficientShards) {
		log.Info(LogMsgRedemptionRejected, "player_id", playerID, "tier", tier, "required", required)
		return &domain.RedemptionResult{
			Success: false,
			Error:   domain.ErrInsufficientShards,
			Message: err.Error(),
			Balance: bal,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextRedeemShards, err)
	}

	log.Info(LogMsgShardsRedeemed, "player_id", playerID, "tier", tier, "required", required)
	s.publish(ctx, event.NewShardsRedeemedEvent(domain.ShardsRedeemedPayload{
		UserID:   playerID,
		Tier:     tier,
		Required: required,
	}))

	return &domain.RedemptionResult{
		Success: true,
		Message: fmt.Sprintf(MsgRedeemed, required, tier),
		Balance: bal,
	}, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, evt)
}
