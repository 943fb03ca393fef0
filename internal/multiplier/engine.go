package multiplier

import (
	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
	"github.com/osse101/SpinForge_Go/internal/utils"
)

// Engine spawns and stacks multiplier symbols on winning spins
type Engine struct {
	symbols        []domain.MultiplierSymbol
	weights        []float64
	maxPerSpin     int
	maxSpawnChance float64
	modes          map[domain.GridMode]gameconfig.ModeConfig
}

// NewEngine builds an engine from the bundle. A symbol without an explicit
// weight gets 1/value, so x2 is the most common and x9 the rarest.
func NewEngine(b *gameconfig.Bundle) *Engine {
	e := &Engine{
		symbols:        append([]domain.MultiplierSymbol(nil), b.Multipliers.Symbols...),
		maxPerSpin:     b.Multipliers.MaxPerSpin,
		maxSpawnChance: b.Multipliers.MaxSpawnChance,
		modes:          b.Modes,
	}
	if e.maxPerSpin < 1 {
		e.maxPerSpin = 1
	}
	for i, s := range e.symbols {
		if s.Weight <= 0 {
			e.symbols[i].Weight = 1 / float64(s.Value)
		}
		e.weights = append(e.weights, e.symbols[i].Weight)
	}
	return e
}

// SpawnChance is the per-win spawn probability, boosted during free spins
// and clamped to the configured maximum.
func (e *Engine) SpawnChance(mode domain.GridMode, isFreeSpin bool) float64 {
	cfg := e.modes[mode]
	chance := cfg.MultiplierSpawnChance
	if isFreeSpin && cfg.FreeSpins.SpawnBoost > 0 {
		chance *= cfg.FreeSpins.SpawnBoost
	}
	return utils.Clamp(chance, 0, e.maxSpawnChance)
}

// ShouldSpawn rolls the spawn chance. Callers only ask on winning spins.
func (e *Engine) ShouldSpawn(src utils.Source, mode domain.GridMode, isFreeSpin bool) bool {
	return src.Float64() < e.SpawnChance(mode, isFreeSpin)
}

// Select draws one multiplier symbol by weight.
func (e *Engine) Select(src utils.Source) domain.MultiplierSymbol {
	i := utils.WeightedIndex(src, e.weights)
	if i < 0 {
		return domain.MultiplierSymbol{Value: 1}
	}
	return e.symbols[i]
}

// Roll returns the multipliers landing on a winning spin, or nil. After the
// first spawn further symbols chain at the same chance up to MaxPerSpin.
func (e *Engine) Roll(src utils.Source, mode domain.GridMode, isFreeSpin bool) []int {
	chance := e.SpawnChance(mode, isFreeSpin)
	if src.Float64() >= chance {
		return nil
	}
	values := []int{e.Select(src).Value}
	for len(values) < e.maxPerSpin && src.Float64() < chance {
		values = append(values, e.Select(src).Value)
	}
	return values
}

// Stack multiplies values together. An empty stack is 1.
func Stack(values []int) int {
	product := 1
	for _, v := range values {
		product *= v
	}
	return product
}

// MeanValue is the weighted mean of a single multiplier draw.
func (e *Engine) MeanValue() float64 {
	total, weighted := 0.0, 0.0
	for _, s := range e.symbols {
		total += s.Weight
		weighted += s.Weight * float64(s.Value)
	}
	if total <= 0 {
		return 1
	}
	return weighted / total
}

// ExpectedStack is E[Stack] given that a spawn happened at the given chance.
// k symbols land with probability chance^(k-1)(1-chance), the last bucket
// absorbing the tail.
func (e *Engine) ExpectedStack(chance float64) float64 {
	mean := e.MeanValue()
	expected := 0.0
	reach := 1.0
	pow := 1.0
	for k := 1; k <= e.maxPerSpin; k++ {
		pow *= mean
		p := reach
		if k < e.maxPerSpin {
			p = reach * (1 - chance)
		}
		expected += p * pow
		reach *= chance
	}
	return expected
}

// MaxPerSpin is the chain limit.
func (e *Engine) MaxPerSpin() int { return e.maxPerSpin }
