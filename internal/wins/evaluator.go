package wins

import (
	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/symbols"
)

// Result is the scored grid. Total is the base win before multipliers.
type Result struct {
	LineWins     []domain.LineWin
	ClusterWins  []domain.ClusterWin
	Total        float64
	SpecialCount int
}

// HasWin reports whether any line or cluster paid.
func (r Result) HasWin() bool {
	return len(r.LineWins) > 0 || len(r.ClusterWins) > 0
}

// Component is a 4-connected group of one regular symbol. Wilds join every
// component they touch.
type Component struct {
	SymbolID  string
	Positions []domain.Position
}

// Size is the number of cells in the component.
func (c Component) Size() int { return len(c.Positions) }

// Evaluator scores grids against a symbol table
type Evaluator struct {
	table *symbols.Table
}

// NewEvaluator creates an evaluator.
func NewEvaluator(table *symbols.Table) *Evaluator {
	return &Evaluator{table: table}
}

// Evaluate scores every payline and, for cluster modes, every component.
func (e *Evaluator) Evaluate(g domain.Grid, mode domain.GridMode, bet float64) Result {
	var res Result

	for i, line := range Paylines(g.Size()) {
		if win, ok := e.evaluateLine(g, line, bet); ok {
			win.LineIndex = i
			res.LineWins = append(res.LineWins, win)
			res.Total += win.Amount
		}
	}

	if mode.HasClusters() {
		idx := 0
		for _, comp := range e.Components(g) {
			if comp.Size() < MinClusterSize {
				continue
			}
			mult := e.table.Multiplier(comp.SymbolID)
			amount := bet * mult * float64(comp.Size()-MinClusterSize+1)
			res.ClusterWins = append(res.ClusterWins, domain.ClusterWin{
				ClusterIndex: idx,
				SymbolID:     comp.SymbolID,
				Size:         comp.Size(),
				Positions:    comp.Positions,
				Multiplier:   mult,
				Amount:       amount,
			})
			res.Total += amount
			idx++
		}
	}

	res.SpecialCount = e.SpecialCount(g)
	return res
}

// evaluateLine counts the run from the first position. The base symbol is
// the first non-wild; a scatter ends the run and an all-wild run pays nothing.
func (e *Evaluator) evaluateLine(g domain.Grid, line []domain.Position, bet float64) (domain.LineWin, bool) {
	base := ""
	count := 0
	for _, p := range line {
		id := g.At(p)
		if e.table.IsScatter(id) {
			break
		}
		if e.table.IsWild(id) {
			count++
			continue
		}
		if base == "" {
			base = id
			count++
			continue
		}
		if id != base {
			break
		}
		count++
	}

	if base == "" || count < MinLineRun {
		return domain.LineWin{}, false
	}

	mult := e.table.Multiplier(base)
	return domain.LineWin{
		SymbolID:   base,
		Count:      count,
		Positions:  append([]domain.Position(nil), line[:count]...),
		Multiplier: mult,
		Amount:     bet * mult * float64(count-MinLineRun+1),
	}, true
}

// Components returns every connected group of regular symbols in first
// appearance order. Scatters never join a component.
func (e *Evaluator) Components(g domain.Grid) []Component {
	size := g.Size()
	var order []string
	seen := make(map[string]bool)
	for _, p := range g.Positions() {
		id := g.At(p)
		if e.table.IsSpecial(id) || seen[id] {
			continue
		}
		seen[id] = true
		order = append(order, id)
	}

	var out []Component
	for _, sym := range order {
		visited := make([][]bool, size)
		for r := range visited {
			visited[r] = make([]bool, size)
		}
		for _, start := range g.Positions() {
			if g.At(start) != sym || visited[start.Row][start.Col] {
				continue
			}
			out = append(out, Component{SymbolID: sym, Positions: e.flood(g, start, sym, visited)})
		}
	}
	return out
}

func (e *Evaluator) flood(g domain.Grid, start domain.Position, sym string, visited [][]bool) []domain.Position {
	size := g.Size()
	stack := []domain.Position{start}
	visited[start.Row][start.Col] = true
	var cells []domain.Position

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells = append(cells, p)

		for _, d := range neighbours {
			n := domain.Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
			if n.Row < 0 || n.Row >= size || n.Col < 0 || n.Col >= size || visited[n.Row][n.Col] {
				continue
			}
			id := g.At(n)
			if id == sym || e.table.IsWild(id) {
				visited[n.Row][n.Col] = true
				stack = append(stack, n)
			}
		}
	}
	return cells
}

var neighbours = []domain.Position{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// SpecialCount counts wild and scatter symbols on the grid.
func (e *Evaluator) SpecialCount(g domain.Grid) int {
	n := 0
	for _, p := range g.Positions() {
		if e.table.IsSpecial(g.At(p)) {
			n++
		}
	}
	return n
}
