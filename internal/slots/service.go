// Package slots resolves spins: it asks the RTP controller for an outcome
// tier, builds and scores the grid, applies multipliers and rewards, and
// records the realized payout exactly once.
package slots

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/osse101/SpinForge_Go/internal/concurrency"
	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/event"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
	"github.com/osse101/SpinForge_Go/internal/logger"
	"github.com/osse101/SpinForge_Go/internal/multiplier"
	"github.com/osse101/SpinForge_Go/internal/reels"
	"github.com/osse101/SpinForge_Go/internal/repository"
	"github.com/osse101/SpinForge_Go/internal/rtp"
	"github.com/osse101/SpinForge_Go/internal/shards"
	"github.com/osse101/SpinForge_Go/internal/utils"
)

// SpinRequest is one spin as submitted by the caller. The caller owns the
// player's balance and must have debited the bet before calling.
type SpinRequest struct {
	UserID        string          `json:"user_id" validate:"required,max=128"`
	BetAmount     float64         `json:"bet_amount" validate:"gte=0"`
	Mode          domain.GridMode `json:"mode" validate:"required"`
	FreeSpin      bool            `json:"free_spin"`
	UserSpinCount int             `json:"user_spin_count" validate:"gte=0"`
	Volatility    string          `json:"volatility,omitempty"`
}

// Service defines the spin resolver
type Service interface {
	ResolveSpin(ctx context.Context, req SpinRequest) (*domain.GameResult, error)
	FindResults(ctx context.Context, userID string, limit int) ([]domain.GameResult, error)
	FindResult(ctx context.Context, gameID string) (*domain.GameResult, error)
	FreeSpins(userID string, mode domain.GridMode) *domain.FreeSpinState
	RTPState(ctx context.Context, mode domain.GridMode, userID string) (domain.RTPState, error)
}

type service struct {
	engine     *Engine
	controller *rtp.Controller
	shardSvc   shards.Service
	results    repository.Results
	publisher  *event.ResilientPublisher
	src        utils.Source
	locks      *concurrency.LockManager
	rounds     *roundBook
	validate   *validator.Validate
	now        func() time.Time
}

// NewService creates the spin resolver. src is shared by every spin and is
// wrapped in a utils.LockedSource unless it already is one. publisher may be nil.
func NewService(
	engine *Engine,
	controller *rtp.Controller,
	shardSvc shards.Service,
	results repository.Results,
	publisher *event.ResilientPublisher,
	src utils.Source,
) Service {
	if _, ok := src.(*utils.LockedSource); !ok {
		src = utils.NewLockedSource(src)
	}
	return &service{
		engine:     engine,
		controller: controller,
		shardSvc:   shardSvc,
		results:    results,
		publisher:  publisher,
		src:        src,
		locks:      concurrency.NewLockManager(),
		rounds:     newRoundBook(),
		validate:   validator.New(),
		now:        time.Now,
	}
}

// spinContext carries the resolved configuration of one request
type spinContext struct {
	req     SpinRequest
	mode    domain.GridMode
	cfg     gameconfig.ModeConfig
	tiers   gameconfig.TierTable
	profile string
	bet     float64
	scope   string
	round   freeRound
	active  bool
}

// ResolveSpin resolves one spin. Invalid requests are rejected before any
// state is touched. Spins of the same user are serialized.
func (s *service) ResolveSpin(ctx context.Context, req SpinRequest) (*domain.GameResult, error) {
	log := logger.FromContext(ctx)

	sc, err := s.prepare(req)
	if err != nil {
		log.Debug(LogMsgSpinRejected, "user_id", req.UserID, "mode", req.Mode, "error", err)
		return nil, err
	}

	lock := s.locks.GetLock(req.UserID)
	lock.Lock()
	defer lock.Unlock()

	sc.round, sc.active = s.rounds.get(req.UserID, sc.mode)
	if req.FreeSpin {
		if !sc.active {
			return nil, fmt.Errorf("%w: user %s mode %s", domain.ErrNoFreeSpins, req.UserID, sc.mode)
		}
		sc.bet = sc.round.bet
	}

	state, err := s.controller.State(ctx, sc.scope)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadState, err)
	}

	decision := s.controller.DecideOutcome(sc.tiers, state, req.UserSpinCount)
	res, next, awarded, retrigger := s.play(ctx, sc, decision)

	wagered := sc.bet
	if req.FreeSpin {
		wagered = 0
	}
	newState, err := s.controller.Record(ctx, sc.scope, wagered, res.Payout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextRecordSpin, err)
	}

	s.rounds.put(req.UserID, sc.mode, next)
	if next.state.Active {
		fs := next.state
		res.Metadata.FreeSpins = &fs
	}
	res.Metadata.RTP = domain.RTPDiagnostics{
		Scope:      sc.scope,
		CurrentRTP: newState.CurrentRTP(),
		TargetRTP:  s.controller.Target(),
		Spins:      newState.Spins,
		WinChance:  decision.WinChance,
		Adjustment: decision.Adjustment,
	}

	s.credit(ctx, res)
	s.save(ctx, res)
	s.announce(ctx, sc, res, wagered, awarded, retrigger, next)

	log.Debug(LogMsgSpinResolved,
		"game_id", res.GameID,
		"user_id", res.UserID,
		"mode", sc.mode,
		"tier", decision.Tier,
		"payout", res.Payout,
		"rtp", newState.CurrentRTP())
	return res, nil
}

func (s *service) prepare(req SpinRequest) (spinContext, error) {
	if err := s.validate.Struct(req); err != nil {
		return spinContext{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	mode, err := domain.ParseGridMode(string(req.Mode))
	if err != nil {
		return spinContext{}, err
	}
	cfg, err := s.engine.Bundle.Mode(mode)
	if err != nil {
		return spinContext{}, err
	}
	tiers, profile, err := cfg.Profile(req.Volatility)
	if err != nil {
		return spinContext{}, err
	}
	if !req.FreeSpin {
		if err := validateBet(cfg, req.BetAmount); err != nil {
			return spinContext{}, err
		}
	}

	req.Mode = mode
	return spinContext{
		req:     req,
		mode:    mode,
		cfg:     cfg,
		tiers:   tiers,
		profile: profile,
		bet:     req.BetAmount,
		scope:   domain.RTPScopeKey(s.engine.Bundle.RTPScope, mode, req.UserID),
	}, nil
}

func validateBet(cfg gameconfig.ModeConfig, bet float64) error {
	switch {
	case math.IsNaN(bet) || math.IsInf(bet, 0) || bet <= 0:
		return fmt.Errorf("%w: bet must be positive", domain.ErrInvalidBet)
	case bet < cfg.MinBet:
		return fmt.Errorf("%w: minimum bet is %v", domain.ErrInvalidBet, cfg.MinBet)
	case bet > cfg.MaxBet:
		return fmt.Errorf("%w: maximum bet is %v", domain.ErrInvalidBet, cfg.MaxBet)
	}
	return nil
}

// play runs the random part of a spin and builds the unsaved result along
// with the bonus round that applies once the spin is recorded.
func (s *service) play(ctx context.Context, sc spinContext, d rtp.Decision) (*domain.GameResult, freeRound, int, bool) {
	fsCfg := sc.cfg.FreeSpins
	isFree := sc.req.FreeSpin

	extra := fsCfg.Spins
	if isFree {
		extra = fsCfg.RetriggerSpins
	}
	trigger := extra > 0 && s.src.Float64() < fsCfg.TriggerChance

	out := s.engine.Generator.Generate(s.src, reels.Plan{
		Mode:         sc.mode,
		Tier:         d.Tier,
		Band:         sc.tiers[d.Tier],
		Bet:          sc.bet,
		Bias:         d.RangeBias,
		Trigger:      trigger,
		TriggerCount: fsCfg.TriggerCount,
	})
	if out.Fallback {
		logger.FromContext(ctx).Debug(LogMsgGeneratorFallback, "mode", sc.mode, "tier", d.Tier, "target", out.Target)
	}

	next, awarded, retrigger := advance(sc.round, sc.active, isFree, out.Eval.SpecialCount, sc.bet, fsCfg)

	meta := domain.SpinMetadata{
		Mode:              sc.mode,
		Volatility:        sc.profile,
		Tier:              d.Tier,
		Grid:              out.Grid,
		LineWins:          out.Eval.LineWins,
		ClusterWins:       out.Eval.ClusterWins,
		SpecialCount:      out.Eval.SpecialCount,
		BaseWin:           out.Eval.Total,
		AppliedMultiplier: 1,
		FreeSpin:          isFree,
	}

	payout := out.Eval.Total
	if payout > 0 {
		meta.Multipliers = s.engine.Multipliers.Roll(s.src, sc.mode, isFree)
		stack := float64(multiplier.Stack(meta.Multipliers))

		if isFree && fsCfg.Accumulate {
			acc := sc.round.state.MultiplierAccumulator
			if len(meta.Multipliers) > 0 {
				acc += stack
			}
			if next.state.Active {
				next.state.MultiplierAccumulator = acc
			}
			if acc > 0 {
				meta.AppliedMultiplier = acc
			}
		} else {
			meta.AppliedMultiplier = stack
		}
		payout *= meta.AppliedMultiplier

		meta.NFTDrop = s.engine.Economy.RollDrop(s.src, sc.cfg.NFTDropChances, d.Tier, out.Eval)
		if meta.NFTDrop != nil {
			payout *= meta.NFTDrop.BonusMultiplier
		}

		if limit := sc.bet * sc.cfg.MaxWinMultiplier; payout > limit {
			payout = limit
			meta.Capped = true
		}
	}

	patterns := s.engine.Economy.DetectPatterns(out.Grid, sc.mode)
	meta.ShardAwards = s.engine.Economy.RollShards(s.src, patterns)

	return &domain.GameResult{
		GameID:     uuid.NewString(),
		UserID:     sc.req.UserID,
		BetAmount:  sc.bet,
		ResultType: domain.ClassifyResult(sc.bet, payout),
		Payout:     payout,
		Metadata:   meta,
		CreatedAt:  s.now(),
	}, next, awarded, retrigger
}

func (s *service) credit(ctx context.Context, res *domain.GameResult) {
	if s.shardSvc == nil || len(res.Metadata.ShardAwards) == 0 {
		return
	}
	if _, err := s.shardSvc.AddShards(ctx, res.UserID, res.Metadata.ShardAwards); err != nil {
		logger.FromContext(ctx).Warn(LogMsgShardCreditFailed, "game_id", res.GameID, "user_id", res.UserID, "error", err)
	}
}

func (s *service) save(ctx context.Context, res *domain.GameResult) {
	if s.results == nil {
		return
	}
	if err := s.results.Save(ctx, res); err != nil {
		logger.FromContext(ctx).Error(LogMsgResultSaveFailed, "game_id", res.GameID, "user_id", res.UserID, "error", err)
	}
}

func (s *service) announce(ctx context.Context, sc spinContext, res *domain.GameResult, wagered float64, awarded int, retrigger bool, next freeRound) {
	s.publish(ctx, event.NewSpinCompletedEvent(domain.SpinCompletedPayload{
		GameID:     res.GameID,
		UserID:     res.UserID,
		Mode:       sc.mode,
		Tier:       res.Metadata.Tier,
		BetAmount:  res.BetAmount,
		Wagered:    wagered,
		Payout:     res.Payout,
		ResultType: res.ResultType,
		FreeSpin:   sc.req.FreeSpin,
		CurrentRTP: res.Metadata.RTP.CurrentRTP,
	}))

	if awarded > 0 {
		logger.FromContext(ctx).Info(LogMsgFreeSpinsAwarded, "user_id", res.UserID, "mode", sc.mode, "awarded", awarded, "retrigger", retrigger)
		s.publish(ctx, event.NewFreeSpinsTriggeredEvent(domain.FreeSpinsTriggeredPayload{
			UserID:    res.UserID,
			Mode:      sc.mode,
			Awarded:   awarded,
			Remaining: next.state.Remaining,
			Retrigger: retrigger,
		}))
	}

	if drop := res.Metadata.NFTDrop; drop != nil {
		s.publish(ctx, event.NewNFTDroppedEvent(domain.NFTDroppedPayload{
			UserID: res.UserID,
			GameID: res.GameID,
			Drop:   *drop,
			Mode:   sc.mode,
		}))
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, evt)
}

// FindResults lists a user's results, newest first
func (s *service) FindResults(ctx context.Context, userID string, limit int) ([]domain.GameResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	if limit > MaxResultLimit {
		limit = MaxResultLimit
	}
	res, err := s.results.FindByUserID(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFindResults, err)
	}
	return res, nil
}

// FindResult loads one stored result by game id
func (s *service) FindResult(ctx context.Context, gameID string) (*domain.GameResult, error) {
	if gameID == "" {
		return nil, fmt.Errorf("%w: game id is required", domain.ErrInvalidInput)
	}
	res, err := s.results.FindByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrContextFindResult, gameID, err)
	}
	return res, nil
}

// FreeSpins returns the user's active bonus round of a mode, or nil
func (s *service) FreeSpins(userID string, mode domain.GridMode) *domain.FreeSpinState {
	r, ok := s.rounds.get(userID, mode)
	if !ok {
		return nil
	}
	st := r.state
	return &st
}

// RTPState returns the state the user's spins of a mode are recorded under
func (s *service) RTPState(ctx context.Context, mode domain.GridMode, userID string) (domain.RTPState, error) {
	if !mode.Valid() {
		return domain.RTPState{}, fmt.Errorf("%w: %q", domain.ErrUnknownMode, mode)
	}
	return s.controller.State(ctx, domain.RTPScopeKey(s.engine.Bundle.RTPScope, mode, userID))
}
