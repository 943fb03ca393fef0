package pricing

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
	"github.com/osse101/SpinForge_Go/internal/metrics"
	"github.com/osse101/SpinForge_Go/internal/multiplier"
	"github.com/osse101/SpinForge_Go/internal/rewards"
)

func newCalculator(b *gameconfig.Bundle) *Calculator {
	return NewCalculator(b, multiplier.NewEngine(b), rewards.NewCatalog(b.NFT.Collectibles))
}

func TestComputeSpinPrice_Defaults(t *testing.T) {
	calc := newCalculator(gameconfig.Default())

	tests := []struct {
		mode      domain.GridMode
		wantRaw   float64
		wantPrice float64
		wantModel float64
	}{
		{domain.ModeThreeByThree, 1.1294, 1.13, 1.13},
		{domain.ModeFiveByFive, 1.0595, 1.06, 1.06},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			b, err := calc.ComputeSpinPrice(tt.mode, 0.965)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantRaw, b.RawPrice, 0.002)
			assert.Equal(t, tt.wantPrice, b.Price)
			assert.Equal(t, tt.wantModel, b.ModelPrice)
			assert.False(t, b.Clamped)
			assert.InDelta(t, b.TotalEV, b.CashEV+b.MultiplierEV+b.FreeSpinEV+b.NFTEV, 1e-12)
			assert.Equal(t, "medium", b.Profile)
		})
	}
}

func TestComputeSpinPrice_Clamp(t *testing.T) {
	tests := []struct {
		name string
		min  float64
		max  float64
		want float64
	}{
		{"above max", 0.1, 0.8, 0.8},
		{"below min", 3, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := gameconfig.Default()
			m := b.Modes[domain.ModeThreeByThree]
			m.Pricing.MinPrice = tt.min
			m.Pricing.MaxPrice = tt.max
			b.Modes[domain.ModeThreeByThree] = m

			got, err := newCalculator(b).ComputeSpinPrice(domain.ModeThreeByThree, 0.965)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Price)
			assert.True(t, got.Clamped)
			assert.Greater(t, got.RawPrice, 0.0)
		})
	}
}

func TestComputeSpinPrice_Errors(t *testing.T) {
	calc := newCalculator(gameconfig.Default())

	_, err := calc.ComputeSpinPrice(domain.ModeThreeByThree, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = calc.ComputeSpinPrice(domain.GridMode("seven_by_seven"), 0.965)
	assert.ErrorIs(t, err, domain.ErrUnknownMode)

	_, err = calc.Quote(context.Background(), domain.ModeThreeByThree, "insane")
	assert.ErrorIs(t, err, domain.ErrUnknownProfile)
}

func TestModelPrice(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.PricingConfig
		want float64
	}{
		{"fixed", domain.PricingConfig{Model: domain.PricingFixed, BasePrice: 2, PrizeFund: 1000, FundRate: 0.01}, 2},
		{"fund based", domain.PricingConfig{Model: domain.PricingFundBased, BasePrice: 2, PrizeFund: 1000, FundRate: 0.01}, 10},
		{"hybrid", domain.PricingConfig{Model: domain.PricingHybrid, BasePrice: 2, PrizeFund: 1000, FundRate: 0.01}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ModelPrice(tt.cfg), 1e-9)
		})
	}
}

func TestClamp(t *testing.T) {
	cfg := domain.PricingConfig{MinPrice: 1, MaxPrice: 5}

	p, moved := Clamp(cfg, 0.2)
	assert.Equal(t, 1.0, p)
	assert.True(t, moved)

	p, moved = Clamp(cfg, 9)
	assert.Equal(t, 5.0, p)
	assert.True(t, moved)

	p, moved = Clamp(cfg, 3)
	assert.Equal(t, 3.0, p)
	assert.False(t, moved)
}

func TestQuote_Cached(t *testing.T) {
	calc := newCalculator(gameconfig.Default())
	hits := metrics.PriceQuoteCache.WithLabelValues(metrics.CacheHit)
	before := testutil.ToFloat64(hits)

	first, err := calc.Quote(context.Background(), domain.ModeFiveByFive, "high")
	require.NoError(t, err)
	second, err := calc.Quote(context.Background(), domain.ModeFiveByFive, "high")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before+1, testutil.ToFloat64(hits))
	assert.Equal(t, "high", first.Profile)
}

func TestTheoreticalRTP_NearTarget(t *testing.T) {
	calc := newCalculator(gameconfig.Default())

	for _, mode := range domain.GridModes {
		rtp, err := calc.TheoreticalRTP(mode, "")
		require.NoError(t, err)
		assert.InDelta(t, 0.965, rtp, 0.01, string(mode))
	}
}

func TestRoundWithin(t *testing.T) {
	b := gameconfig.Default()
	b.Pricing.PriceDecimals = 2
	calc := newCalculator(b)

	tests := []struct {
		name     string
		min, max float64
		in       float64
		want     float64
	}{
		{"plain rounding", 0.5, 5, 1.23456, 1.23},
		{"rounds up to whole", 0.5, 5, 1.9999, 2},
		{"max bound finer than decimals", 0.5, 3.005, 3.005, 3},
		{"min bound finer than decimals", 1.005, 5, 1.005, 1.01},
		{"no representable price inside bounds", 3.005, 3.005, 3.005, 3.005},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.PricingConfig{MinPrice: tt.min, MaxPrice: tt.max}
			got := calc.roundWithin(cfg, tt.in)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.max)
		})
	}
}

func TestComputeSpinPrice_RoundingStaysInsideBounds(t *testing.T) {
	for _, bound := range []float64{3.005, 0.125} {
		b := gameconfig.Default()
		b.Pricing.PriceDecimals = 2
		m := b.Modes[domain.ModeThreeByThree]
		m.Pricing.MinPrice = bound
		m.Pricing.MaxPrice = bound
		b.Modes[domain.ModeThreeByThree] = m

		got, err := newCalculator(b).ComputeSpinPrice(domain.ModeThreeByThree, 0.965)
		require.NoError(t, err)
		assert.Equal(t, bound, got.Price)
		assert.Equal(t, bound, got.ModelPrice)
	}
}
