package domain

// PricingModel is the closed set of spin price formulas
type PricingModel string

const (
	PricingFixed     PricingModel = "fixed"
	PricingFundBased PricingModel = "fund_based"
	PricingHybrid    PricingModel = "hybrid"
)

// PricingConfig parameterises spin cost for one mode
type PricingConfig struct {
	Model     PricingModel `json:"model" yaml:"model" validate:"required,oneof=fixed fund_based hybrid"`
	BasePrice float64      `json:"base_price" yaml:"base_price"`
	// FundRate is the fraction of the prize fund charged per spin.
	FundRate  float64 `json:"fund_rate" yaml:"fund_rate"`
	PrizeFund float64 `json:"prize_fund" yaml:"prize_fund" validate:"gte=0"`
	MinPrice  float64 `json:"min_price" yaml:"min_price" validate:"gte=0"`
	MaxPrice  float64 `json:"max_price" yaml:"max_price" validate:"gtefield=MinPrice"`
}

// PriceBreakdown carries the expected-value components behind a price
type PriceBreakdown struct {
	Mode         GridMode     `json:"mode"`
	Model        PricingModel `json:"model"`
	Profile      string       `json:"profile"`
	ReferenceBet float64      `json:"reference_bet"`
	CashEV       float64      `json:"cash_ev"`
	MultiplierEV float64      `json:"multiplier_ev"`
	FreeSpinEV   float64      `json:"free_spin_ev"`
	NFTEV        float64      `json:"nft_ev"`
	TotalEV      float64      `json:"total_ev"`
	TargetRTP    float64      `json:"target_rtp"`
	RawPrice     float64      `json:"raw_price"`
	Price        float64      `json:"price"`
	ModelPrice   float64      `json:"model_price"`
	Clamped      bool         `json:"clamped"`
}
