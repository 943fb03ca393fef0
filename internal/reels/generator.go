package reels

import (
	"math"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
	"github.com/osse101/SpinForge_Go/internal/symbols"
	"github.com/osse101/SpinForge_Go/internal/utils"
	"github.com/osse101/SpinForge_Go/internal/wins"
)

// Plan is what the resolver asks the generator to build.
type Plan struct {
	Mode domain.GridMode
	Tier domain.SpinOutcomeTier
	// Band is the payout range in multiples of the bet.
	Band gameconfig.TierConfig
	Bet  float64
	// Bias is the exponent applied to the uniform draw inside Band.
	// Below 1 favours the top of the range, above 1 the bottom.
	Bias float64
	// Trigger asks for TriggerCount scatters. Without it the grid keeps
	// fewer than TriggerCount specials.
	Trigger      bool
	TriggerCount int
}

// Outcome is a generated grid with its evaluation
type Outcome struct {
	Grid domain.Grid
	Eval wins.Result
	// Target is the payout the generator aimed for, in currency.
	Target float64
	// Fallback is set when no attempt satisfied the plan and the
	// deterministic construction was used instead.
	Fallback bool
}

// Generator builds grids for a chosen outcome tier
type Generator struct {
	table *symbols.Table
	eval  *wins.Evaluator
	cfg   gameconfig.GenerationConfig
}

// NewGenerator creates a generator.
func NewGenerator(table *symbols.Table, eval *wins.Evaluator, cfg gameconfig.GenerationConfig) *Generator {
	return &Generator{table: table, eval: eval, cfg: cfg}
}

// Generate always terminates: both the dead and the winning path are
// bounded by the configured attempts and end in a deterministic construction.
func (g *Generator) Generate(src utils.Source, p Plan) Outcome {
	if !p.Tier.IsWin() {
		return g.dead(src, p)
	}
	return g.winning(src, p)
}

func (g *Generator) dead(src utils.Source, p Plan) Outcome {
	size := p.Mode.Size()
	for i := 0; i < g.cfg.DeadAttempts; i++ {
		grid := g.randomFill(src, size)
		if p.Trigger {
			g.placeScatters(src, grid, grid.Positions(), p.TriggerCount)
		}
		res := g.eval.Evaluate(grid, p.Mode, p.Bet)
		if res.HasWin() || !g.specialsAllowed(res, p) {
			continue
		}
		return Outcome{Grid: grid, Eval: res}
	}

	grid := g.background(src, size, nil)
	if p.Trigger {
		g.placeScatters(src, grid, grid.Positions(), p.TriggerCount)
	}
	return Outcome{Grid: grid, Eval: g.eval.Evaluate(grid, p.Mode, p.Bet), Fallback: true}
}

func (g *Generator) specialsAllowed(res wins.Result, p Plan) bool {
	if p.Trigger || p.TriggerCount <= 0 {
		return true
	}
	return res.SpecialCount < p.TriggerCount
}

func (g *Generator) randomFill(src utils.Source, size int) domain.Grid {
	grid := domain.NewGrid(size)
	for _, pos := range grid.Positions() {
		grid.Set(pos, g.table.Sample(src))
	}
	return grid
}

// background fills the grid with palette[(r + 2c) mod k]. Horizontal
// neighbours differ by 2 and vertical ones by 1 (mod k, k >= 4), so no line
// or cluster can form. Symbols in exclude are kept out of the palette.
func (g *Generator) background(src utils.Source, size int, exclude map[string]bool) domain.Grid {
	var palette []string
	for _, d := range g.table.Regular() {
		if !exclude[d.ID] {
			palette = append(palette, d.ID)
		}
	}
	if len(palette) < MinBackgroundPalette {
		palette = palette[:0]
		for _, d := range g.table.Regular() {
			palette = append(palette, d.ID)
		}
	}
	utils.Shuffle(src, palette)
	if len(palette) > MaxBackgroundPalette {
		palette = palette[:MaxBackgroundPalette]
	}

	grid := domain.NewGrid(size)
	k := len(palette)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			grid[r][c] = palette[(r+2*c)%k]
		}
	}
	return grid
}

func (g *Generator) placeScatters(src utils.Source, grid domain.Grid, free []domain.Position, n int) {
	id := g.table.ScatterID()
	if id == "" || n <= 0 {
		return
	}
	cells := append([]domain.Position(nil), free...)
	utils.Shuffle(src, cells)
	if n > len(cells) {
		n = len(cells)
	}
	for _, pos := range cells[:n] {
		grid.Set(pos, id)
	}
}

func (g *Generator) winning(src utils.Source, p Plan) Outcome {
	lo, hi := p.Band.MinMultiplier, p.Band.MaxMultiplier
	bias := p.Bias
	if bias <= 0 {
		bias = 1
	}
	target := lo + (hi-lo)*math.Pow(src.Float64(), bias)

	rows := g.runRows(p)

	var best Outcome
	bestScore := math.Inf(1)
	consider := func(o Outcome) bool {
		m := o.Eval.Total / p.Bet
		score := math.Abs(m - target)
		if !o.Eval.HasWin() || m < lo || m > hi || !g.specialsAllowed(o.Eval, p) {
			score += outOfRangePenalty
		}
		if score < bestScore {
			best, bestScore = o, score
		}
		return score <= g.cfg.Tolerance*target
	}

	single := g.bestSingle(target, lo, hi, p.Mode)
	if consider(g.assemble(src, p, []run{single}, rows, false)) {
		return g.finish(best, target, p, false)
	}

	for i := 0; i < g.cfg.CandidateAttempts; i++ {
		runs := g.planRuns(src, target, len(rows), p.Mode)
		if len(runs) == 0 {
			continue
		}
		if consider(g.assemble(src, p, runs, rows, true)) {
			break
		}
	}
	return g.finish(best, target, p, bestScore >= outOfRangePenalty)
}

func (g *Generator) finish(o Outcome, target float64, p Plan, fallback bool) Outcome {
	o.Target = target * p.Bet
	o.Fallback = fallback
	return o
}

type run struct {
	symbol string
	length int
	value  float64
}

// runRows returns the rows runs may occupy. 5x5 keeps rows 1 and 3 as
// background so runs never touch. A planned trigger needs enough background
// cells left for the scatters.
func (g *Generator) runRows(p Plan) []int {
	size := p.Mode.Size()
	var rows []int
	if size >= 5 {
		for r := 0; r < size; r += 2 {
			rows = append(rows, r)
		}
	} else {
		for r := 0; r < size; r++ {
			rows = append(rows, r)
		}
	}
	if p.Trigger {
		for len(rows) > 1 && size*size-len(rows)*size < p.TriggerCount {
			rows = rows[:len(rows)-1]
		}
	}
	return rows
}

func runLengths(mode domain.GridMode) []int {
	var out []int
	for l := wins.MinLineRun; l <= mode.Size(); l++ {
		out = append(out, l)
	}
	return out
}

// runFactor is the payout of a run in multiples of bet x symbol multiplier.
// A full 5x5 row also pays as a cluster.
func runFactor(length int, clusters bool) float64 {
	f := float64(length - wins.MinLineRun + 1)
	if clusters && length >= wins.MinClusterSize {
		f += float64(length - wins.MinClusterSize + 1)
	}
	return f
}

func (g *Generator) bestSingle(target, lo, hi float64, mode domain.GridMode) run {
	clusters := mode.HasClusters()
	var best run
	bestScore := math.Inf(1)
	for _, d := range g.table.RegularByValue() {
		for _, l := range runLengths(mode) {
			v := d.PayoutMultiplier * runFactor(l, clusters)
			score := math.Abs(v - target)
			if v < lo || v > hi {
				score += outOfRangePenalty
			}
			if score < bestScore {
				best = run{symbol: d.ID, length: l, value: v}
				bestScore = score
			}
		}
	}
	return best
}

// planRuns greedily covers the target, each run taking between MinRunShare
// and all of what remains. Cluster grids use a different symbol per run.
func (g *Generator) planRuns(src utils.Source, target float64, maxRuns int, mode domain.GridMode) []run {
	clusters := mode.HasClusters()
	lengths := runLengths(mode)
	used := make(map[string]bool)
	remaining := target
	var runs []run

	for len(runs) < maxRuns && remaining > 0 {
		var fits []run
		largest := 0.0
		for _, d := range g.table.Regular() {
			if clusters && used[d.ID] {
				continue
			}
			for _, l := range lengths {
				v := d.PayoutMultiplier * runFactor(l, clusters)
				if v <= remaining*(1+g.cfg.Tolerance) {
					fits = append(fits, run{symbol: d.ID, length: l, value: v})
					largest = math.Max(largest, v)
				}
			}
		}
		// When no single run can cover MinRunShare of what remains, the
		// largest runs that still fit are used instead.
		floor := math.Min(remaining, largest) * MinRunShare
		var opts []run
		for _, o := range fits {
			if o.value >= floor {
				opts = append(opts, o)
			}
		}
		if len(opts) == 0 {
			break
		}
		pick := opts[src.IntN(len(opts))]
		runs = append(runs, pick)
		used[pick.symbol] = true
		remaining -= pick.value
	}
	return runs
}

// assemble lays runs on a no-win background, starting at column 0.
// Decorated candidates may swap one run cell for a wild and, on cluster
// grids, grow a run by one cell into the neighbouring background row.
func (g *Generator) assemble(src utils.Source, p Plan, runs []run, rows []int, decorate bool) Outcome {
	size := p.Mode.Size()
	exclude := make(map[string]bool, len(runs))
	for _, r := range runs {
		exclude[r.symbol] = true
	}
	grid := g.background(src, size, exclude)

	order := append([]int(nil), rows...)
	if decorate {
		utils.Shuffle(src, order)
	}

	occupied := make(map[domain.Position]bool)
	placed := make([]int, len(runs))
	for i, r := range runs {
		if i >= len(order) {
			break
		}
		row := order[i]
		placed[i] = row
		for c := 0; c < r.length; c++ {
			pos := domain.Position{Row: row, Col: c}
			grid.Set(pos, r.symbol)
			occupied[pos] = true
		}
	}
	n := len(runs)
	if n > len(order) {
		n = len(order)
	}

	if decorate && n > 0 {
		g.maybeWild(src, p, grid, runs[:n], placed[:n])
		if p.Mode.HasClusters() {
			g.maybeExtend(src, grid, runs[:n], placed[:n], occupied)
		}
	}

	if p.Trigger {
		var free []domain.Position
		for _, pos := range grid.Positions() {
			if !occupied[pos] {
				free = append(free, pos)
			}
		}
		g.placeScatters(src, grid, free, p.TriggerCount)
	}

	return Outcome{Grid: grid, Eval: g.eval.Evaluate(grid, p.Mode, p.Bet)}
}

func (g *Generator) maybeWild(src utils.Source, p Plan, grid domain.Grid, runs []run, rows []int) {
	wild := g.table.WildID()
	if wild == "" || (!p.Trigger && p.TriggerCount == 1) {
		return
	}
	if src.Float64() >= g.cfg.WildChance {
		return
	}
	i := src.IntN(len(runs))
	if runs[i].length < 2 {
		return
	}
	col := 1 + src.IntN(runs[i].length-1)
	grid.Set(domain.Position{Row: rows[i], Col: col}, wild)
}

func (g *Generator) maybeExtend(src utils.Source, grid domain.Grid, runs []run, rows []int, occupied map[domain.Position]bool) {
	if src.Float64() >= g.cfg.ExtendChance {
		return
	}
	var candidates []int
	for i, r := range runs {
		if r.length >= wins.MinClusterSize-1 {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return
	}
	i := candidates[src.IntN(len(candidates))]
	col := src.IntN(runs[i].length)

	size := grid.Size()
	var spots []domain.Position
	for _, dr := range []int{-1, 1} {
		pos := domain.Position{Row: rows[i] + dr, Col: col}
		if pos.Row >= 0 && pos.Row < size && !occupied[pos] {
			spots = append(spots, pos)
		}
	}
	if len(spots) == 0 {
		return
	}
	pos := spots[src.IntN(len(spots))]
	grid.Set(pos, runs[i].symbol)
	occupied[pos] = true
}
