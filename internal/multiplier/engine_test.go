package multiplier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
	"github.com/osse101/SpinForge_Go/internal/utils"
)

func TestStack(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{"empty stack is identity", nil, 1},
		{"single", []int{4}, 4},
		{"two", []int{2, 3}, 6},
		{"max pair", []int{9, 9}, 81},
		{"three", []int{2, 3, 4}, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stack(tt.values))
		})
	}
}

func TestSpawnChance(t *testing.T) {
	e := NewEngine(gameconfig.Default())

	assert.InDelta(t, 0.04, e.SpawnChance(domain.ModeThreeByThree, false), 1e-12)
	assert.InDelta(t, 0.05, e.SpawnChance(domain.ModeFiveByFive, false), 1e-12)
	assert.InDelta(t, 0.06, e.SpawnChance(domain.ModeThreeByThree, true), 1e-12)
	assert.InDelta(t, 0.075, e.SpawnChance(domain.ModeFiveByFive, true), 1e-12)
}

func TestSpawnChance_Clamped(t *testing.T) {
	b := gameconfig.Default()
	cfg := b.Modes[domain.ModeThreeByThree]
	cfg.MultiplierSpawnChance = 0.9
	cfg.FreeSpins.SpawnBoost = 2
	b.Modes[domain.ModeThreeByThree] = cfg

	e := NewEngine(b)
	assert.Equal(t, 0.95, e.SpawnChance(domain.ModeThreeByThree, true))
}

func TestSelect_FavoursLowValues(t *testing.T) {
	e := NewEngine(gameconfig.Default())
	src := utils.NewSeededSource(9)

	counts := map[int]int{}
	for i := 0; i < 100000; i++ {
		v := e.Select(src).Value
		assert.GreaterOrEqual(t, v, 2)
		assert.LessOrEqual(t, v, 9)
		counts[v]++
	}
	assert.Greater(t, counts[2], counts[5])
	assert.Greater(t, counts[5], counts[9])
	// weight 1/2 against 1/9
	assert.InDelta(t, 4.5, float64(counts[2])/float64(counts[9]), 0.4)
}

func TestRoll_RespectsChainLimit(t *testing.T) {
	b := gameconfig.Default()
	cfg := b.Modes[domain.ModeFiveByFive]
	cfg.MultiplierSpawnChance = 0.95
	b.Modes[domain.ModeFiveByFive] = cfg
	e := NewEngine(b)
	src := utils.NewSeededSource(10)

	spawned := 0
	for i := 0; i < 1000; i++ {
		values := e.Roll(src, domain.ModeFiveByFive, false)
		assert.LessOrEqual(t, len(values), 3)
		if len(values) > 0 {
			spawned++
		}
	}
	assert.Greater(t, spawned, 900)
}

func TestExpectedStack(t *testing.T) {
	e := NewEngine(gameconfig.Default())
	mean := e.MeanValue()

	assert.InDelta(t, mean, e.ExpectedStack(0), 1e-12, "no chaining")
	assert.InDelta(t, mean*mean*mean, e.ExpectedStack(1), 1e-9, "always chains to the limit")
	assert.Greater(t, e.ExpectedStack(0.05), mean)
}
