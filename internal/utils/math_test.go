package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		expected float64
	}{
		{"below range", -1, 0},
		{"inside range", 0.4, 0.4},
		{"above range", 2, 0.95},
		{"at upper bound", 0.95, 0.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.v, 0, 0.95))
		})
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 1.23, RoundTo(1.2345, 2))
	assert.Equal(t, 0.965, RoundTo(0.96549, 3))
	assert.Equal(t, 2.0, RoundTo(1.5, 0))
}

// fixedSource replays a list of floats.
type fixedSource struct {
	floats []float64
	i      int
}

func (f *fixedSource) Float64() float64 {
	v := f.floats[f.i%len(f.floats)]
	f.i++
	return v
}

func (f *fixedSource) IntN(n int) int {
	return int(f.Float64() * float64(n))
}

func TestWeightedIndex(t *testing.T) {
	weights := []float64{1, 0, 3}

	t.Run("maps rolls onto cumulative buckets", func(t *testing.T) {
		assert.Equal(t, 0, WeightedIndex(&fixedSource{floats: []float64{0.1}}, weights))
		assert.Equal(t, 2, WeightedIndex(&fixedSource{floats: []float64{0.25}}, weights))
		assert.Equal(t, 2, WeightedIndex(&fixedSource{floats: []float64{0.999999}}, weights))
	})

	t.Run("never picks zero weights", func(t *testing.T) {
		src := NewSeededSource(7)
		for i := 0; i < 1000; i++ {
			assert.NotEqual(t, 1, WeightedIndex(src, weights))
		}
	})

	t.Run("returns -1 without positive weight", func(t *testing.T) {
		assert.Equal(t, -1, WeightedIndex(NewSeededSource(1), []float64{0, -2}))
		assert.Equal(t, -1, WeightedIndex(NewSeededSource(1), nil))
	})

	t.Run("frequencies follow weights", func(t *testing.T) {
		src := NewSeededSource(42)
		counts := make([]int, 3)
		const n = 100000
		for i := 0; i < n; i++ {
			counts[WeightedIndex(src, weights)]++
		}
		assert.InDelta(t, 0.25, float64(counts[0])/n, 0.01)
		assert.InDelta(t, 0.75, float64(counts[2])/n, 0.01)
	})
}

func TestShuffle(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6}
	Shuffle(NewSeededSource(3), s)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, s)
}
