package slots

import (
	"fmt"

	"github.com/osse101/SpinForge_Go/internal/gameconfig"
	"github.com/osse101/SpinForge_Go/internal/multiplier"
	"github.com/osse101/SpinForge_Go/internal/reels"
	"github.com/osse101/SpinForge_Go/internal/rewards"
	"github.com/osse101/SpinForge_Go/internal/symbols"
	"github.com/osse101/SpinForge_Go/internal/wins"
)

// Engine groups the stateless spin components built from one bundle
type Engine struct {
	Bundle      *gameconfig.Bundle
	Symbols     *symbols.Table
	Evaluator   *wins.Evaluator
	Generator   *reels.Generator
	Multipliers *multiplier.Engine
	Economy     *rewards.Economy
}

// NewEngine wires the components of a validated bundle
func NewEngine(b *gameconfig.Bundle) (*Engine, error) {
	table, err := symbols.NewTable(b.Symbols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBuildEngine, err)
	}
	eval := wins.NewEvaluator(table)
	catalog := rewards.NewCatalog(b.NFT.Collectibles)

	return &Engine{
		Bundle:      b,
		Symbols:     table,
		Evaluator:   eval,
		Generator:   reels.NewGenerator(table, eval, b.Generation),
		Multipliers: multiplier.NewEngine(b),
		Economy:     rewards.NewEconomy(table, eval, catalog, b.NFT, b.Shards),
	}, nil
}
