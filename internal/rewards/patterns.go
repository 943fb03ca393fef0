package rewards

import (
	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/utils"
)

// 3x3 pattern cells
var (
	leftColumn  = []domain.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}}
	rightColumn = []domain.Position{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}
	edgeCentres = []domain.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}
	mainDiag    = []domain.Position{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}
	antiDiag    = []domain.Position{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}}
)

// DetectPatterns lists every shard pattern on the grid, one entry per occurrence.
func (e *Economy) DetectPatterns(g domain.Grid, mode domain.GridMode) []domain.ShardPattern {
	var found []domain.ShardPattern

	switch mode {
	case domain.ModeThreeByThree:
		for _, side := range [][]domain.Position{leftColumn, rightColumn} {
			if e.matches(g, side) {
				found = append(found, domain.PatternSideCombo)
			}
		}
		if e.matches(g, edgeCentres) {
			found = append(found, domain.PatternEdgeCombo)
		}
		for _, diag := range [][]domain.Position{mainDiag, antiDiag} {
			if e.matches(g, diag) {
				found = append(found, domain.PatternDiagonalPair)
			}
		}
	case domain.ModeFiveByFive:
		for _, comp := range e.eval.Components(g) {
			switch size := comp.Size(); {
			case size == ClusterPatternSmall:
				found = append(found, domain.PatternClusterOf4)
			case size == ClusterPatternMedium:
				found = append(found, domain.PatternClusterOf5)
			case size > ClusterPatternMedium:
				found = append(found, domain.PatternClusterOf6Plus)
			}
		}
	}
	return found
}

// matches reports whether every cell holds the same regular symbol, wilds
// substituting. Scatters and all-wild sets never match.
func (e *Economy) matches(g domain.Grid, cells []domain.Position) bool {
	base := ""
	for _, p := range cells {
		id := g.At(p)
		switch {
		case e.table.IsScatter(id):
			return false
		case e.table.IsWild(id):
			continue
		case base == "":
			base = id
		case id != base:
			return false
		}
	}
	return base != ""
}

// RollShards makes one cumulative tier roll per detected pattern.
func (e *Economy) RollShards(src utils.Source, patterns []domain.ShardPattern) []domain.ShardAward {
	var awards []domain.ShardAward
	for _, pattern := range patterns {
		odds := e.shards.Patterns[pattern]
		roll := src.Float64()
		cumulative := 0.0
		for _, tier := range domain.ShardTiers {
			cumulative += odds[tier]
			if roll < cumulative {
				awards = append(awards, domain.ShardAward{Tier: tier, Count: ShardsPerAward, Pattern: pattern})
				break
			}
		}
	}
	return awards
}
