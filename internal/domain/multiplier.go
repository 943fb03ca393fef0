package domain

// MultiplierSymbol is a value that can land on a winning spin
type MultiplierSymbol struct {
	Value  int     `json:"value" yaml:"value" validate:"min=2,max=9"`
	Weight float64 `json:"weight,omitempty" yaml:"weight,omitempty" validate:"gte=0"`
	Rarity Rarity  `json:"rarity,omitempty" yaml:"rarity,omitempty"`
}
