// Package pricing derives spin prices from the expected value of a mode.
package pricing

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
	"github.com/osse101/SpinForge_Go/internal/logger"
	"github.com/osse101/SpinForge_Go/internal/metrics"
	"github.com/osse101/SpinForge_Go/internal/multiplier"
	"github.com/osse101/SpinForge_Go/internal/rewards"
)

// Calculator computes expected values and prices. It never reads RTP state.
type Calculator struct {
	bundle   *gameconfig.Bundle
	mult     *multiplier.Engine
	catalog  *rewards.Catalog
	decimals int32
	quotes   *expirable.LRU[string, domain.PriceBreakdown]
}

// NewCalculator builds a calculator over a loaded bundle
func NewCalculator(b *gameconfig.Bundle, mult *multiplier.Engine, catalog *rewards.Catalog) *Calculator {
	size := b.Pricing.QuoteCacheSize
	if size <= 0 {
		size = DefaultQuoteCacheSize
	}
	ttl := time.Duration(b.Pricing.QuoteCacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = DefaultQuoteCacheTTL
	}

	return &Calculator{
		bundle:   b,
		mult:     mult,
		catalog:  catalog,
		decimals: int32(b.Pricing.PriceDecimals),
		quotes:   expirable.NewLRU[string, domain.PriceBreakdown](size, nil, ttl),
	}
}

// ExpectedValue fills the EV components of a mode/profile at the mode's
// reference bet. Price fields are left zero.
func (c *Calculator) ExpectedValue(mode domain.GridMode, profile string) (domain.PriceBreakdown, error) {
	cfg, err := c.bundle.Mode(mode)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}
	table, profile, err := cfg.Profile(profile)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}

	ref := cfg.ReferenceBet

	// Cash paid by the tier bands under a uniform draw
	cash := 0.0
	for _, tier := range domain.WinningTiers {
		cash += table[tier].Probability * table[tier].Midpoint() * ref
	}

	// Base game multipliers
	spawn := c.mult.SpawnChance(mode, false)
	multEV := cash * spawn * (c.mult.ExpectedStack(spawn) - 1)

	// Free spin rounds, each spin boosted by the free spin spawn chance
	fs := c.mult.SpawnChance(mode, true)
	perFreeSpin := cash * (1 + fs*(c.mult.ExpectedStack(fs)-1))
	freeEV := cfg.FreeSpins.TriggerChance * float64(cfg.FreeSpins.Spins) * perFreeSpin

	nftEV := c.nftValue(cfg, table, cash)

	return domain.PriceBreakdown{
		Mode:         mode,
		Model:        cfg.Pricing.Model,
		Profile:      profile,
		ReferenceBet: ref,
		CashEV:       cash,
		MultiplierEV: multEV,
		FreeSpinEV:   freeEV,
		NFTEV:        nftEV,
		TotalEV:      cash + multEV + freeEV + nftEV,
	}, nil
}

// nftValue combines the payout bonus of drops on winning spins, the
// collectible value itself and the forced drops of the direct tier.
func (c *Calculator) nftValue(cfg gameconfig.ModeConfig, table gameconfig.TierTable, cash float64) float64 {
	direct := table[domain.TierDirectNFTDrop]
	totalChance := cfg.NFTDropProbability()

	bonusEV, collectibleEV, forcedEV := 0.0, 0.0, 0.0
	for _, tier := range domain.ShardTiers {
		chance := cfg.NFTDropChances[tier]
		bonus := c.bundle.NFT.BonusMultipliers[tier]
		value := c.catalog.AverageValue(tier)

		bonusEV += chance * (bonus - 1)
		collectibleEV += chance * value
		if totalChance > 0 {
			forcedEV += chance / totalChance * (value + direct.Midpoint()*cfg.ReferenceBet*(bonus-1))
		}
	}

	winP := table.WinProbability()
	return cash*bonusEV + (winP-direct.Probability)*collectibleEV + direct.Probability*forcedEV
}

// ComputeSpinPrice returns totalEV / rtpTarget clamped into the mode's
// [min, max], using the default volatility profile.
func (c *Calculator) ComputeSpinPrice(mode domain.GridMode, rtpTarget float64) (domain.PriceBreakdown, error) {
	return c.price(mode, "", rtpTarget)
}

func (c *Calculator) price(mode domain.GridMode, profile string, rtpTarget float64) (domain.PriceBreakdown, error) {
	if rtpTarget <= 0 || rtpTarget > 1 {
		return domain.PriceBreakdown{}, fmt.Errorf("%w: rtp target %v outside (0, 1]", domain.ErrInvalidInput, rtpTarget)
	}

	b, err := c.ExpectedValue(mode, profile)
	if err != nil {
		return b, err
	}
	cfg, _ := c.bundle.Mode(mode)

	b.TargetRTP = rtpTarget
	b.RawPrice = b.TotalEV / rtpTarget
	price, clamped := Clamp(cfg.Pricing, b.RawPrice)
	b.Price = c.roundWithin(cfg.Pricing, price)
	b.Clamped = clamped
	model, _ := Clamp(cfg.Pricing, ModelPrice(cfg.Pricing))
	b.ModelPrice = c.roundWithin(cfg.Pricing, model)
	return b, nil
}

// Quote is ComputeSpinPrice for any profile, served from the quote cache
func (c *Calculator) Quote(ctx context.Context, mode domain.GridMode, profile string) (domain.PriceBreakdown, error) {
	key := string(mode) + "|" + profile
	if b, ok := c.quotes.Get(key); ok {
		metrics.PriceQuoteCache.WithLabelValues(metrics.CacheHit).Inc()
		return b, nil
	}
	metrics.PriceQuoteCache.WithLabelValues(metrics.CacheMiss).Inc()

	b, err := c.price(mode, profile, c.bundle.TargetRTP)
	if err != nil {
		return b, err
	}
	if b.Clamped {
		logger.FromContext(ctx).Info(LogMsgPriceClamped, "mode", mode, "profile", b.Profile, "raw", b.RawPrice, "price", b.Price)
	}
	c.quotes.Add(key, b)
	return b, nil
}

// TheoreticalRTP is totalEV over the unclamped model price
func (c *Calculator) TheoreticalRTP(mode domain.GridMode, profile string) (float64, error) {
	b, err := c.ExpectedValue(mode, profile)
	if err != nil {
		return 0, err
	}
	cfg, _ := c.bundle.Mode(mode)
	price := ModelPrice(cfg.Pricing)
	if price <= 0 {
		return math.Inf(1), nil
	}
	return b.TotalEV / price, nil
}

// roundWithin rounds a clamped price without leaving [MinPrice, MaxPrice].
// A rounding that crosses a bound moves to the nearest representable value
// inside; bounds with no representable value between them keep v unrounded.
func (c *Calculator) roundWithin(cfg domain.PricingConfig, v float64) float64 {
	d := decimal.NewFromFloat(v)
	lo, hi := decimal.NewFromFloat(cfg.MinPrice), decimal.NewFromFloat(cfg.MaxPrice)

	r := d.Round(c.decimals)
	switch {
	case r.LessThan(lo):
		r = lo.RoundCeil(c.decimals)
	case r.GreaterThan(hi):
		r = hi.RoundFloor(c.decimals)
	}
	if r.LessThan(lo) || r.GreaterThan(hi) {
		return v
	}
	return r.InexactFloat64()
}

// ModelPrice evaluates the configured pricing model without clamping
func ModelPrice(cfg domain.PricingConfig) float64 {
	switch cfg.Model {
	case domain.PricingFundBased:
		return cfg.PrizeFund * cfg.FundRate
	case domain.PricingHybrid:
		return cfg.BasePrice + cfg.PrizeFund*cfg.FundRate
	default:
		return cfg.BasePrice
	}
}

// Clamp bounds a price into [MinPrice, MaxPrice] and reports whether it moved
func Clamp(cfg domain.PricingConfig, price float64) (float64, bool) {
	switch {
	case price < cfg.MinPrice:
		return cfg.MinPrice, true
	case price > cfg.MaxPrice:
		return cfg.MaxPrice, true
	default:
		return price, false
	}
}
