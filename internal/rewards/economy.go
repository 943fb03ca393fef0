package rewards

import (
	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
	"github.com/osse101/SpinForge_Go/internal/symbols"
	"github.com/osse101/SpinForge_Go/internal/utils"
	"github.com/osse101/SpinForge_Go/internal/wins"
)

// Economy rolls direct collectible drops and shard patterns
type Economy struct {
	table   *symbols.Table
	eval    *wins.Evaluator
	catalog *Catalog
	nft     gameconfig.NFTConfig
	shards  gameconfig.ShardConfig
}

// NewEconomy creates the reward roller.
func NewEconomy(table *symbols.Table, eval *wins.Evaluator, catalog *Catalog, nft gameconfig.NFTConfig, shards gameconfig.ShardConfig) *Economy {
	return &Economy{table: table, eval: eval, catalog: catalog, nft: nft, shards: shards}
}

// Catalog exposes the collectible catalog.
func (e *Economy) Catalog() *Catalog { return e.catalog }

// BonusMultiplier is the payout bonus of a drop tier.
func (e *Economy) BonusMultiplier(tier domain.ShardTier) float64 {
	if b, ok := e.nft.BonusMultipliers[tier]; ok && b > 0 {
		return b
	}
	return 1
}

// RollDrop decides the direct drop of a spin. The direct_nft_drop tier
// always drops, weighting tiers by their chances; any other winning spin
// gets one cumulative roll over S, A, B, C. Returns nil for no drop.
func (e *Economy) RollDrop(src utils.Source, chances map[domain.ShardTier]float64, tier domain.SpinOutcomeTier, res wins.Result) *domain.NFTDrop {
	if !res.HasWin() {
		return nil
	}

	var dropTier domain.ShardTier
	forced := tier == domain.TierDirectNFTDrop
	if forced {
		weights := make([]float64, len(domain.ShardTiers))
		for i, t := range domain.ShardTiers {
			weights[i] = chances[t]
		}
		i := utils.WeightedIndex(src, weights)
		if i < 0 {
			i = len(domain.ShardTiers) - 1
		}
		dropTier = domain.ShardTiers[i]
	} else {
		roll := src.Float64()
		cumulative := 0.0
		for _, t := range domain.ShardTiers {
			cumulative += chances[t]
			if roll < cumulative {
				dropTier = t
				break
			}
		}
		if dropTier == "" {
			return nil
		}
	}

	drop := &domain.NFTDrop{
		Tier:            dropTier,
		SymbolID:        e.topSymbol(res),
		BonusMultiplier: e.BonusMultiplier(dropTier),
		EstimatedValue:  e.catalog.AverageValue(dropTier),
		Forced:          forced,
	}
	if item, ok := e.catalog.Pick(src, dropTier); ok {
		drop.Collectible = item.Name
		drop.EstimatedValue = item.Price
	}
	return drop
}

// topSymbol is the most valuable symbol among the paying lines and clusters.
func (e *Economy) topSymbol(res wins.Result) string {
	best, bestValue := "", -1.0
	for _, w := range res.LineWins {
		if w.Multiplier > bestValue {
			best, bestValue = w.SymbolID, w.Multiplier
		}
	}
	for _, w := range res.ClusterWins {
		if w.Multiplier > bestValue {
			best, bestValue = w.SymbolID, w.Multiplier
		}
	}
	return best
}
