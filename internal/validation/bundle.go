package validation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
	"github.com/osse101/SpinForge_Go/internal/logger"
	"github.com/osse101/SpinForge_Go/internal/multiplier"
	"github.com/osse101/SpinForge_Go/internal/pricing"
	"github.com/osse101/SpinForge_Go/internal/rewards"
	"github.com/osse101/SpinForge_Go/internal/symbols"
)

// Report is the outcome of a bundle check. Errors are fatal, warnings are not.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Err returns nil for a valid report, otherwise an error wrapping
// domain.ErrInvalidConfiguration that lists every problem.
func (r Report) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, 0, len(r.Errors)+1)
	errs = append(errs, fmt.Errorf("%w: "+MsgUnknownBundleErrors, domain.ErrInvalidConfiguration, len(r.Errors)))
	for _, e := range r.Errors {
		errs = append(errs, errors.New(e))
	}
	return errors.Join(errs...)
}

// Log writes warnings and errors through the context logger
func (r Report) Log(ctx context.Context) {
	log := logger.FromContext(ctx)
	for _, w := range r.Warnings {
		log.Warn(LogMsgBundleWarning, "warning", w)
	}
	for _, e := range r.Errors {
		log.Error(LogMsgBundleInvalid, "error", e)
	}
}

var bundleValidator = validator.New(validator.WithRequiredStructEnabled())

type reportBuilder struct {
	Report
}

func (b *reportBuilder) errorf(format string, args ...interface{}) {
	b.Errors = append(b.Errors, fmt.Sprintf(format, args...))
}

func (b *reportBuilder) warnf(format string, args ...interface{}) {
	b.Warnings = append(b.Warnings, fmt.Sprintf(format, args...))
}

// ValidateBundle checks a loaded bundle once at startup
func ValidateBundle(bundle *gameconfig.Bundle) Report {
	rb := &reportBuilder{}

	if err := bundleValidator.Struct(bundle); err != nil {
		rb.errorf(MsgStructural, err)
	}

	table, err := symbols.NewTable(bundle.Symbols)
	if err != nil {
		rb.errorf(MsgSymbols, err)
	} else if n := len(table.Regular()); n < MinRegularSymbols {
		rb.errorf(MsgTooFewRegular, n, MinRegularSymbols)
	}

	mult := multiplier.NewEngine(bundle)
	for _, mode := range sortedModes(bundle) {
		if !mode.Valid() {
			rb.errorf(MsgUnknownMode, mode)
			continue
		}
		cfg := bundle.Modes[mode]
		checkMode(rb, bundle, table, mult, mode, cfg)
	}
	checkShards(rb, bundle)

	if len(rb.Errors) == 0 {
		checkTheoreticalRTP(rb, bundle, mult)
	}

	rb.Valid = len(rb.Errors) == 0
	return rb.Report
}

func checkMode(rb *reportBuilder, bundle *gameconfig.Bundle, table *symbols.Table, mult *multiplier.Engine, mode domain.GridMode, cfg gameconfig.ModeConfig) {
	if _, ok := cfg.Profiles[cfg.DefaultProfile]; !ok {
		rb.errorf(MsgMissingDefault, mode, cfg.DefaultProfile)
	}

	spawn := mult.SpawnChance(mode, false)
	nft := cfg.NFTDropProbability()
	lo, hi := payoutBounds(table, mode)

	for _, name := range sortedProfiles(cfg) {
		tiers := cfg.Profiles[name]
		if sum := tiers.WinProbability(); sum+spawn+nft > 1 {
			rb.errorf(MsgProbabilitySum, mode, name, sum, spawn, nft, sum+spawn+nft)
		}

		for _, tier := range domain.WinningTiers {
			t, ok := tiers[tier]
			if !ok || t.Probability == 0 {
				continue
			}
			if t.MinMultiplier > t.MaxMultiplier {
				rb.errorf(MsgTierRange, mode, name, tier, t.MinMultiplier, t.MaxMultiplier)
				continue
			}
			if table != nil && (t.MaxMultiplier < lo || t.MinMultiplier > hi) {
				rb.errorf(MsgTierUnattainable, mode, name, tier, t.MinMultiplier, t.MaxMultiplier, lo, hi)
			}
		}
	}

	p := cfg.Pricing
	if p.Model != domain.PricingFundBased && p.BasePrice <= 0 {
		rb.errorf(MsgBasePrice, mode, p.BasePrice, p.Model)
	}
	if p.FundRate < 0 || p.FundRate > 1 {
		rb.errorf(MsgFundRate, mode, p.FundRate)
	}
	if p.MinPrice > p.MaxPrice {
		rb.errorf(MsgPriceBounds, mode, p.MinPrice, p.MaxPrice)
	}
	places := int32(bundle.Pricing.PriceDecimals)
	for _, bound := range []float64{p.MinPrice, p.MaxPrice} {
		if d := decimal.NewFromFloat(bound); !d.Equal(d.Round(places)) {
			rb.warnf(MsgPriceBoundPrecision, mode, bound, places)
		}
	}

	for _, tier := range domain.ShardTiers {
		if cfg.NFTDropChances[tier] > 0 && bundle.NFT.BonusMultipliers[tier] <= 0 {
			rb.warnf(MsgMissingBonus, tier, mode)
		}
	}
}

// payoutBounds is the smallest and largest base payout a grid of the mode
// can produce at bet 1 with the generator's winning rows.
func payoutBounds(table *symbols.Table, mode domain.GridMode) (float64, float64) {
	if table == nil || len(table.Regular()) == 0 {
		return 0, 0
	}
	byValue := table.RegularByValue()
	lo := byValue[0].PayoutMultiplier

	size := mode.Size()
	rows := size
	if mode.HasClusters() {
		rows = (size + 1) / 2
	}
	factor := float64(size - 2)
	if mode.HasClusters() {
		factor += float64(size - 4)
	}
	hi := float64(rows) * factor * byValue[len(byValue)-1].PayoutMultiplier
	return lo, hi
}

func checkShards(rb *reportBuilder, bundle *gameconfig.Bundle) {
	patterns := []domain.ShardPattern{
		domain.PatternSideCombo, domain.PatternEdgeCombo, domain.PatternDiagonalPair,
		domain.PatternClusterOf4, domain.PatternClusterOf5, domain.PatternClusterOf6Plus,
	}
	for _, p := range patterns {
		if len(bundle.Shards.Patterns[p]) == 0 {
			rb.warnf(MsgNoPatternOdds, p)
		}
	}
}

func checkTheoreticalRTP(rb *reportBuilder, bundle *gameconfig.Bundle, mult *multiplier.Engine) {
	calc := pricing.NewCalculator(bundle, mult, rewards.NewCatalog(bundle.NFT.Collectibles))
	for _, mode := range sortedModes(bundle) {
		if !mode.Valid() {
			continue
		}
		for _, profile := range sortedProfiles(bundle.Modes[mode]) {
			rtp, err := calc.TheoreticalRTP(mode, profile)
			if err != nil {
				rb.errorf(MsgStructural, err)
				continue
			}
			if math.Abs(rtp-bundle.TargetRTP) > RTPWarningTolerance {
				rb.warnf(MsgTheoreticalRTP, mode, profile, rtp, bundle.TargetRTP, RTPWarningTolerance*100)
			}
		}
	}
}

func sortedModes(b *gameconfig.Bundle) []domain.GridMode {
	modes := make([]domain.GridMode, 0, len(b.Modes))
	for m := range b.Modes {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

func sortedProfiles(cfg gameconfig.ModeConfig) []string {
	names := make([]string, 0, len(cfg.Profiles))
	for n := range cfg.Profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
