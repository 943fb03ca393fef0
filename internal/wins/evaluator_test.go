package wins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
	"github.com/osse101/SpinForge_Go/internal/symbols"
)

func newTestEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	table, err := symbols.NewTable(gameconfig.Default().Symbols)
	require.NoError(t, err)
	return NewEvaluator(table)
}

func TestPaylines(t *testing.T) {
	assert.Len(t, Paylines(3), 3)
	assert.Len(t, Paylines(5), 12)

	five := Paylines(5)
	assert.Equal(t, domain.Position{Row: 4, Col: 0}, five[11][4], "anti-diagonal ends bottom left")
}

func TestEvaluate_MiddleRowThreeByThree(t *testing.T) {
	e := newTestEvaluator(t)
	g := domain.Grid{
		{"cherry", "lemon", "plum"},
		{"bell", "bell", "bell"},
		{"lemon", "plum", "cherry"},
	}

	res := e.Evaluate(g, domain.ModeThreeByThree, 2)

	require.Len(t, res.LineWins, 1)
	win := res.LineWins[0]
	assert.Equal(t, 1, win.LineIndex)
	assert.Equal(t, "bell", win.SymbolID)
	assert.Equal(t, 3, win.Count)
	assert.Equal(t, 8.0, win.Amount, "bet 2 x bell 4")
	assert.Equal(t, 8.0, res.Total)
	assert.Empty(t, res.ClusterWins)
	assert.Zero(t, res.SpecialCount)
}

func TestEvaluate_LineRules(t *testing.T) {
	e := newTestEvaluator(t)

	tests := []struct {
		name   string
		row    []string
		count  int
		symbol string
	}{
		{"leading wild substitutes", []string{"wild", "plum", "plum"}, 3, "plum"},
		{"middle wild substitutes", []string{"plum", "wild", "plum"}, 3, "plum"},
		{"scatter stops run", []string{"plum", "plum", "scatter"}, 0, ""},
		{"all wild pays nothing", []string{"wild", "wild", "wild"}, 0, ""},
		{"mismatch at start", []string{"lemon", "plum", "plum"}, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.Grid{
				tt.row,
				{"cherry", "lemon", "orange"},
				{"lemon", "orange", "cherry"},
			}
			res := e.Evaluate(g, domain.ModeThreeByThree, 1)
			if tt.count == 0 {
				assert.Empty(t, res.LineWins)
				return
			}
			require.Len(t, res.LineWins, 1)
			assert.Equal(t, tt.count, res.LineWins[0].Count)
			assert.Equal(t, tt.symbol, res.LineWins[0].SymbolID)
		})
	}
}

func TestEvaluate_LongerRunPaysMore(t *testing.T) {
	e := newTestEvaluator(t)
	g := domain.Grid{
		{"bar", "bar", "bar", "bar", "cherry"},
		{"lemon", "orange", "lemon", "orange", "lemon"},
		{"orange", "lemon", "orange", "lemon", "orange"},
		{"cherry", "plum", "cherry", "plum", "cherry"},
		{"plum", "cherry", "plum", "cherry", "plum"},
	}

	res := e.Evaluate(g, domain.ModeFiveByFive, 1)

	require.Len(t, res.LineWins, 1)
	assert.Equal(t, 4, res.LineWins[0].Count)
	assert.Equal(t, 16.0, res.LineWins[0].Amount, "bar 8 x (4-3+1)")
	assert.Empty(t, res.ClusterWins, "4 cells is below cluster minimum")
}

func TestEvaluate_SixCellCluster(t *testing.T) {
	e := newTestEvaluator(t)
	// A staircase of six bells: no line of three, one component of six.
	g := domain.Grid{
		{"lemon", "bell", "bell", "cherry", "orange"},
		{"cherry", "orange", "bell", "bell", "lemon"},
		{"orange", "lemon", "cherry", "bell", "bell"},
		{"cherry", "plum", "lemon", "orange", "cherry"},
		{"lemon", "orange", "cherry", "plum", "orange"},
	}

	res := e.Evaluate(g, domain.ModeFiveByFive, 1)

	assert.Empty(t, res.LineWins)
	require.Len(t, res.ClusterWins, 1)
	cluster := res.ClusterWins[0]
	assert.Equal(t, "bell", cluster.SymbolID)
	assert.Equal(t, 6, cluster.Size)
	assert.Len(t, cluster.Positions, 6)
	assert.Equal(t, 8.0, cluster.Amount, "bell 4 x (6-5+1)")
	assert.Equal(t, 8.0, res.Total)
}

func TestEvaluate_WildJoinsCluster(t *testing.T) {
	e := newTestEvaluator(t)
	g := domain.Grid{
		{"cherry", "lemon", "orange", "cherry", "lemon"},
		{"lemon", "plum", "wild", "orange", "cherry"},
		{"orange", "cherry", "plum", "plum", "lemon"},
		{"cherry", "lemon", "orange", "plum", "orange"},
		{"lemon", "orange", "cherry", "lemon", "cherry"},
	}

	res := e.Evaluate(g, domain.ModeFiveByFive, 1)

	assert.Empty(t, res.LineWins)
	require.Len(t, res.ClusterWins, 1)
	assert.Equal(t, "plum", res.ClusterWins[0].SymbolID)
	assert.Equal(t, 5, res.ClusterWins[0].Size)
	assert.Equal(t, 1, res.SpecialCount)
}

func TestEvaluate_ThreeByThreeHasNoClusters(t *testing.T) {
	e := newTestEvaluator(t)
	g := domain.Grid{
		{"plum", "plum", "cherry"},
		{"plum", "plum", "lemon"},
		{"plum", "lemon", "cherry"},
	}

	res := e.Evaluate(g, domain.ModeThreeByThree, 1)

	assert.Empty(t, res.ClusterWins)
	assert.False(t, res.HasWin())
}

func TestComponents_Sizes(t *testing.T) {
	e := newTestEvaluator(t)
	g := domain.Grid{
		{"plum", "plum", "cherry"},
		{"scatter", "plum", "lemon"},
		{"lemon", "lemon", "cherry"},
	}

	sizes := map[string][]int{}
	for _, c := range e.Components(g) {
		sizes[c.SymbolID] = append(sizes[c.SymbolID], c.Size())
	}

	assert.Equal(t, []int{3}, sizes["plum"])
	assert.Equal(t, []int{1, 1}, sizes["cherry"])
	assert.ElementsMatch(t, []int{1, 2}, sizes["lemon"])
	assert.NotContains(t, sizes, "scatter")
}
