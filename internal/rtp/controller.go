// Package rtp steers win probability toward a target return-to-player ratio
// and owns the only mutation point of RTP state.
package rtp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
	"github.com/osse101/SpinForge_Go/internal/logger"
	"github.com/osse101/SpinForge_Go/internal/metrics"
	"github.com/osse101/SpinForge_Go/internal/utils"
)

// AdjustmentTerm is one factor of the win-chance multiplier
type AdjustmentTerm struct {
	Name   string  `json:"name"`
	Factor float64 `json:"factor"`
}

// Decision is the controller's pick for one spin
type Decision struct {
	Tier       domain.SpinOutcomeTier `json:"tier"`
	WinChance  float64                `json:"win_chance"`
	Adjustment float64                `json:"adjustment"`
	RangeBias  float64                `json:"range_bias"`
	Terms      []AdjustmentTerm       `json:"terms,omitempty"`
}

// Controller decides outcome tiers and records realized payouts
type Controller struct {
	target float64
	cfg    gameconfig.ControllerConfig
	store  StateStore
	src    utils.Source
	now    func() time.Time
}

// NewController creates a controller. src must be safe for the caller's
// concurrency; wrap shared sources in utils.LockedSource.
func NewController(target float64, cfg gameconfig.ControllerConfig, store StateStore, src utils.Source) *Controller {
	return &Controller{
		target: target,
		cfg:    cfg,
		store:  store,
		src:    src,
		now:    time.Now,
	}
}

// Target returns the configured RTP target
func (c *Controller) Target() float64 {
	return c.target
}

// State loads the current snapshot for a scope
func (c *Controller) State(ctx context.Context, scope string) (domain.RTPState, error) {
	st, err := c.store.Load(ctx, scope)
	if err != nil {
		return domain.RTPState{}, fmt.Errorf("%s: %w", ErrContextLoadState, err)
	}
	return st, nil
}

// Adjustment composes the piecewise win-chance multiplier for a snapshot.
// RTP terms apply only once something has been wagered.
func (c *Controller) Adjustment(state domain.RTPState, sessionSpins int) (float64, []AdjustmentTerm) {
	var terms []AdjustmentTerm

	if state.TotalWagered > 0 {
		diff := state.CurrentRTP() - c.target
		switch {
		case diff < -c.cfg.FarBelowThreshold:
			terms = append(terms, AdjustmentTerm{TermFarBelow, c.cfg.FarBelowBoost})
		case diff < -c.cfg.NearBelowThreshold:
			terms = append(terms, AdjustmentTerm{TermNearBelow, c.cfg.NearBelowBoost})
		case diff > c.cfg.FarAboveThreshold:
			terms = append(terms, AdjustmentTerm{TermFarAbove, c.cfg.FarAboveDampen})
		}
	}

	if sessionSpins < c.cfg.WarmupSpins {
		terms = append(terms, AdjustmentTerm{TermWarmup, c.cfg.WarmupBoost})
	}

	switch {
	case state.LossStreak >= c.cfg.LossStreakHeavy:
		terms = append(terms, AdjustmentTerm{TermLossStreakHeavy, c.cfg.LossStreakHeavyBoost})
	case state.LossStreak >= c.cfg.LossStreakMin:
		terms = append(terms, AdjustmentTerm{TermLossStreak, c.cfg.LossStreakBoost})
	}

	if state.WinStreak >= c.cfg.WinStreakMin {
		terms = append(terms, AdjustmentTerm{TermWinStreak, c.cfg.WinStreakDampen})
	}

	adj := 1.0
	for _, t := range terms {
		adj *= t.Factor
	}
	return adj, terms
}

// RangeBias is the exponent applied to the uniform draw inside a tier range.
// Below target it is < 1 and favours the top of the range.
func (c *Controller) RangeBias(state domain.RTPState) float64 {
	if state.TotalWagered <= 0 {
		return NeutralBias
	}
	switch cur := state.CurrentRTP(); {
	case cur < c.target:
		return c.cfg.BiasBelowTarget
	case cur > c.target:
		return c.cfg.BiasAboveTarget
	default:
		return NeutralBias
	}
}

// DecideOutcome picks the outcome tier for one spin of a resolved volatility profile
func (c *Controller) DecideOutcome(table gameconfig.TierTable, state domain.RTPState, sessionSpins int) Decision {
	base := table.WinProbability()
	adj, terms := c.Adjustment(state, sessionSpins)
	winChance := utils.Clamp(base*adj, 0, math.Min(c.cfg.MaxWinChance, 1))

	d := Decision{
		Tier:       domain.TierDead,
		WinChance:  winChance,
		Adjustment: adj,
		RangeBias:  c.RangeBias(state),
		Terms:      terms,
	}

	if base <= 0 || c.src.Float64() >= winChance {
		return d
	}

	roll := c.src.Float64() * base
	for _, tier := range domain.WinningTiers {
		p := table[tier].Probability
		if p <= 0 {
			continue
		}
		if roll < p {
			d.Tier = tier
			return d
		}
		roll -= p
	}

	// Float residue lands on the last configured tier
	for i := len(domain.WinningTiers) - 1; i >= 0; i-- {
		if table[domain.WinningTiers[i]].Probability > 0 {
			d.Tier = domain.WinningTiers[i]
			break
		}
	}
	return d
}

// Record applies one completed spin to the scope's state. Conflicts are
// retried against a fresh snapshot until ctx is done.
func (c *Controller) Record(ctx context.Context, scope string, wagered, payout float64) (domain.RTPState, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.RTPState{}, fmt.Errorf("%s: %w", ErrContextRecordState, err)
		}

		cur, err := c.store.Load(ctx, scope)
		if err != nil {
			return domain.RTPState{}, fmt.Errorf("%s: %w", ErrContextRecordState, err)
		}

		next := cur.Apply(wagered, payout, c.now())
		next.Scope = scope

		err = c.store.CompareAndSwap(ctx, cur.Version, next)
		if err == nil {
			if isGlobalScope(scope) {
				metrics.CurrentRTP.WithLabelValues(scope).Set(next.CurrentRTP())
			}
			log.Debug(LogMsgStateRecorded, "scope", scope, "spins", next.Spins, "rtp", next.CurrentRTP())
			return next, nil
		}
		if !errors.Is(err, domain.ErrConcurrentStateConflict) {
			return domain.RTPState{}, fmt.Errorf("%s: %w", ErrContextRecordState, err)
		}

		metrics.RTPStateConflicts.Inc()
		log.Debug(LogMsgStateConflict, "scope", scope, "attempt", attempt)
	}
}

func isGlobalScope(scope string) bool {
	return strings.HasSuffix(scope, ":"+domain.RTPScopeGlobal)
}
