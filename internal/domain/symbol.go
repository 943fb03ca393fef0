package domain

// Rarity classifies a symbol on the reels
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityWild      Rarity = "wild"
	RarityScatter   Rarity = "scatter"
)

// SymbolDefinition is one entry of the symbol catalog.
// Wild and scatter symbols carry no payout multiplier of their own.
type SymbolDefinition struct {
	ID               string  `json:"id" yaml:"id" validate:"required"`
	Label            string  `json:"label" yaml:"label"`
	Rarity           Rarity  `json:"rarity" yaml:"rarity" validate:"required,oneof=common rare epic legendary wild scatter"`
	ReelWeight       float64 `json:"reel_weight,omitempty" yaml:"reel_weight,omitempty" validate:"gte=0"`
	PayoutMultiplier float64 `json:"payout_multiplier,omitempty" yaml:"payout_multiplier,omitempty" validate:"gte=0"`
}

// IsWild reports whether the symbol substitutes for regular symbols.
func (s SymbolDefinition) IsWild() bool {
	return s.Rarity == RarityWild
}

// IsScatter reports whether the symbol is a scatter.
func (s SymbolDefinition) IsScatter() bool {
	return s.Rarity == RarityScatter
}

// IsSpecial reports whether the symbol is wild or scatter.
func (s SymbolDefinition) IsSpecial() bool {
	return s.IsWild() || s.IsScatter()
}
