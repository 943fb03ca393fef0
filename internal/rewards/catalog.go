package rewards

import (
	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
	"github.com/osse101/SpinForge_Go/internal/utils"
)

// Catalog groups collectibles by tier
type Catalog struct {
	byTier map[domain.ShardTier][]gameconfig.Collectible
}

// NewCatalog indexes the configured collectibles.
func NewCatalog(items []gameconfig.Collectible) *Catalog {
	c := &Catalog{byTier: make(map[domain.ShardTier][]gameconfig.Collectible)}
	for _, item := range items {
		c.byTier[item.Tier] = append(c.byTier[item.Tier], item)
	}
	return c
}

// Collectibles returns the entries of one tier.
func (c *Catalog) Collectibles(tier domain.ShardTier) []gameconfig.Collectible {
	return c.byTier[tier]
}

// AverageValue is the mean price of a tier, 0 for an empty tier.
func (c *Catalog) AverageValue(tier domain.ShardTier) float64 {
	items := c.byTier[tier]
	if len(items) == 0 {
		return 0
	}
	total := 0.0
	for _, item := range items {
		total += item.Price
	}
	return total / float64(len(items))
}

// Pick draws a collectible of the tier uniformly.
func (c *Catalog) Pick(src utils.Source, tier domain.ShardTier) (gameconfig.Collectible, bool) {
	items := c.byTier[tier]
	if len(items) == 0 {
		return gameconfig.Collectible{}, false
	}
	return items[src.IntN(len(items))], true
}
