package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
)

func containsMessage(msgs []string, fragment string) bool {
	for _, m := range msgs {
		if strings.Contains(m, fragment) {
			return true
		}
	}
	return false
}

func editMode(b *gameconfig.Bundle, mode domain.GridMode, fn func(*gameconfig.ModeConfig)) {
	cfg := b.Modes[mode]
	fn(&cfg)
	b.Modes[mode] = cfg
}

func TestValidateBundle_Default(t *testing.T) {
	r := ValidateBundle(gameconfig.Default())

	assert.True(t, r.Valid, r.Errors)
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
	assert.NoError(t, r.Err())
}

func TestValidateBundle_HardErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(b *gameconfig.Bundle)
		fragment string
	}{
		{
			name: "probability sum above one",
			mutate: func(b *gameconfig.Bundle) {
				editMode(b, domain.ModeThreeByThree, func(m *gameconfig.ModeConfig) {
					m.Profiles["medium"][domain.TierSmall] = gameconfig.TierConfig{Probability: 0.95, MinMultiplier: 0.5, MaxMultiplier: 2.5}
				})
			},
			fragment: "exceeds 1",
		},
		{
			name: "non-positive base price",
			mutate: func(b *gameconfig.Bundle) {
				editMode(b, domain.ModeThreeByThree, func(m *gameconfig.ModeConfig) { m.Pricing.BasePrice = 0 })
			},
			fragment: "base price",
		},
		{
			name: "fund rate outside unit interval",
			mutate: func(b *gameconfig.Bundle) {
				editMode(b, domain.ModeFiveByFive, func(m *gameconfig.ModeConfig) { m.Pricing.FundRate = 1.5 })
			},
			fragment: "fund rate",
		},
		{
			name: "inverted tier range",
			mutate: func(b *gameconfig.Bundle) {
				editMode(b, domain.ModeFiveByFive, func(m *gameconfig.ModeConfig) {
					m.Profiles["high"][domain.TierBig] = gameconfig.TierConfig{Probability: 0.01, MinMultiplier: 30, MaxMultiplier: 10}
				})
			},
			fragment: "exceeds max",
		},
		{
			name: "unattainable tier range",
			mutate: func(b *gameconfig.Bundle) {
				editMode(b, domain.ModeThreeByThree, func(m *gameconfig.ModeConfig) {
					m.Profiles["low"][domain.TierEpic] = gameconfig.TierConfig{Probability: 0.001, MinMultiplier: 100, MaxMultiplier: 200}
				})
			},
			fragment: "cannot be produced",
		},
		{
			name: "missing default profile",
			mutate: func(b *gameconfig.Bundle) {
				editMode(b, domain.ModeThreeByThree, func(m *gameconfig.ModeConfig) { m.DefaultProfile = "turbo" })
			},
			fragment: "default profile",
		},
		{
			name: "too few regular symbols",
			mutate: func(b *gameconfig.Bundle) {
				var kept []domain.SymbolDefinition
				for _, s := range b.Symbols {
					if s.ID != "diamond" && s.ID != "lucky_seven" {
						kept = append(kept, s)
					}
				}
				b.Symbols = kept
			},
			fragment: "regular symbols",
		},
		{
			name: "unknown mode",
			mutate: func(b *gameconfig.Bundle) {
				b.Modes[domain.GridMode("seven_by_seven")] = b.Modes[domain.ModeThreeByThree]
			},
			fragment: "not a known grid mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := gameconfig.Default()
			tt.mutate(b)

			r := ValidateBundle(b)
			assert.False(t, r.Valid)
			assert.True(t, containsMessage(r.Errors, tt.fragment), r.Errors)
			assert.ErrorIs(t, r.Err(), domain.ErrInvalidConfiguration)
		})
	}
}

func TestValidateBundle_TheoreticalRTPWarning(t *testing.T) {
	b := gameconfig.Default()
	editMode(b, domain.ModeThreeByThree, func(m *gameconfig.ModeConfig) { m.Pricing.BasePrice = 2 })

	r := ValidateBundle(b)
	require.True(t, r.Valid, r.Errors)
	assert.True(t, containsMessage(r.Warnings, "theoretical RTP"))
	assert.True(t, containsMessage(r.Warnings, string(domain.ModeThreeByThree)))
}

func TestValidateBundle_PriceBoundPrecisionWarns(t *testing.T) {
	b := gameconfig.Default()
	b.Pricing.PriceDecimals = 2
	m := b.Modes[domain.ModeFiveByFive]
	m.Pricing.MaxPrice = 9.995
	b.Modes[domain.ModeFiveByFive] = m

	r := ValidateBundle(b)
	assert.True(t, r.Valid)
	assert.True(t, containsMessage(r.Warnings, "9.995"))
}

func TestValidateBundle_MissingPatternOddsWarns(t *testing.T) {
	b := gameconfig.Default()
	delete(b.Shards.Patterns, domain.PatternEdgeCombo)

	r := ValidateBundle(b)
	assert.True(t, r.Valid)
	assert.True(t, containsMessage(r.Warnings, string(domain.PatternEdgeCombo)))
}
