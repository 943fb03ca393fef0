package gameconfig

import (
	"fmt"

	"github.com/osse101/SpinForge_Go/internal/domain"
)

// Bundle is the complete engine tuning loaded at startup
type Bundle struct {
	TargetRTP   float64                        `json:"target_rtp" validate:"gt=0,lte=1"`
	RTPScope    string                         `json:"rtp_scope" validate:"oneof=global user"`
	Symbols     []domain.SymbolDefinition      `json:"symbols" validate:"required,min=1,dive"`
	Multipliers MultiplierConfig               `json:"multipliers"`
	Modes       map[domain.GridMode]ModeConfig `json:"modes" validate:"required,min=1,dive"`
	Shards      ShardConfig                    `json:"shards"`
	NFT         NFTConfig                      `json:"nft"`
	Controller  ControllerConfig               `json:"controller"`
	Generation  GenerationConfig               `json:"generation"`
	Pricing     PricingSettings                `json:"pricing"`
}

// TierConfig is the probability and payout band of one outcome tier.
// Multipliers are expressed in multiples of the bet.
type TierConfig struct {
	Probability   float64 `json:"probability" validate:"gte=0,lte=1"`
	MinMultiplier float64 `json:"min_multiplier" validate:"gte=0"`
	MaxMultiplier float64 `json:"max_multiplier" validate:"gte=0"`
}

// Midpoint is the mean payout multiplier under a uniform draw.
func (t TierConfig) Midpoint() float64 {
	return (t.MinMultiplier + t.MaxMultiplier) / 2
}

// TierTable maps winning tiers to their bands. Dead is the implicit remainder.
type TierTable map[domain.SpinOutcomeTier]TierConfig

// WinProbability sums the winning tier probabilities.
func (t TierTable) WinProbability() float64 {
	total := 0.0
	for _, tier := range domain.WinningTiers {
		total += t[tier].Probability
	}
	return total
}

// FreeSpinConfig controls the bonus round of a mode
type FreeSpinConfig struct {
	TriggerChance  float64 `json:"trigger_chance" validate:"gte=0,lte=1"`
	TriggerCount   int     `json:"trigger_count" validate:"min=1"`
	Spins          int     `json:"spins" validate:"min=0"`
	RetriggerSpins int     `json:"retrigger_spins" validate:"min=0"`
	SpawnBoost     float64 `json:"spawn_boost" validate:"gte=1"`
	Accumulate     bool    `json:"accumulate"`
}

// ModeConfig is the tuning of one grid mode
type ModeConfig struct {
	MinBet                float64                      `json:"min_bet" validate:"gt=0"`
	MaxBet                float64                      `json:"max_bet" validate:"gtefield=MinBet"`
	ReferenceBet          float64                      `json:"reference_bet" validate:"gt=0"`
	MaxWinMultiplier      float64                      `json:"max_win_multiplier" validate:"gt=0"`
	DefaultProfile        string                       `json:"default_profile" validate:"required"`
	Profiles              map[string]TierTable         `json:"profiles" validate:"required,min=1"`
	MultiplierSpawnChance float64                      `json:"multiplier_spawn_chance" validate:"gte=0,lte=1"`
	FreeSpins             FreeSpinConfig               `json:"free_spins"`
	NFTDropChances        map[domain.ShardTier]float64 `json:"nft_drop_chances"`
	Pricing               domain.PricingConfig         `json:"pricing"`
}

// Profile resolves a volatility profile, falling back to the default for an empty name.
func (m ModeConfig) Profile(name string) (TierTable, string, error) {
	if name == "" {
		name = m.DefaultProfile
	}
	table, ok := m.Profiles[name]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", domain.ErrUnknownProfile, name)
	}
	return table, name, nil
}

// NFTDropProbability sums the direct drop chances.
func (m ModeConfig) NFTDropProbability() float64 {
	total := 0.0
	for _, t := range domain.ShardTiers {
		total += m.NFTDropChances[t]
	}
	return total
}

// MultiplierConfig lists the multiplier symbols and stacking limits
type MultiplierConfig struct {
	Symbols        []domain.MultiplierSymbol `json:"symbols" validate:"required,min=1,dive"`
	MaxPerSpin     int                       `json:"max_per_spin" validate:"min=1"`
	MaxSpawnChance float64                   `json:"max_spawn_chance" validate:"gt=0,lte=1"`
}

// ShardConfig holds per-pattern drop odds and the redemption threshold
type ShardConfig struct {
	RedemptionThreshold int                                                  `json:"redemption_threshold" validate:"min=1"`
	Patterns            map[domain.ShardPattern]map[domain.ShardTier]float64 `json:"patterns"`
}

// Collectible is one catalog entry a tier can award
type Collectible struct {
	Name     string           `json:"name" validate:"required"`
	Tier     domain.ShardTier `json:"tier" validate:"required,oneof=S A B C"`
	Price    float64          `json:"price" validate:"gte=0"`
	ImageURL string           `json:"image_url,omitempty"`
}

// NFTConfig holds direct drop bonuses and the collectible catalog
type NFTConfig struct {
	BonusMultipliers map[domain.ShardTier]float64 `json:"bonus_multipliers" validate:"required"`
	Collectibles     []Collectible                `json:"collectibles" validate:"dive"`
}

// ControllerConfig holds the piecewise win-chance adjustment.
// Thresholds are absolute RTP differences (0.05 = 5 percentage points).
type ControllerConfig struct {
	FarBelowThreshold    float64 `json:"far_below_threshold" validate:"gte=0"`
	FarBelowBoost        float64 `json:"far_below_boost" validate:"gt=0"`
	NearBelowThreshold   float64 `json:"near_below_threshold" validate:"gte=0"`
	NearBelowBoost       float64 `json:"near_below_boost" validate:"gt=0"`
	FarAboveThreshold    float64 `json:"far_above_threshold" validate:"gte=0"`
	FarAboveDampen       float64 `json:"far_above_dampen" validate:"gt=0"`
	WarmupSpins          int     `json:"warmup_spins" validate:"min=0"`
	WarmupBoost          float64 `json:"warmup_boost" validate:"gt=0"`
	LossStreakMin        int     `json:"loss_streak_min" validate:"min=1"`
	LossStreakBoost      float64 `json:"loss_streak_boost" validate:"gt=0"`
	LossStreakHeavy      int     `json:"loss_streak_heavy" validate:"gtefield=LossStreakMin"`
	LossStreakHeavyBoost float64 `json:"loss_streak_heavy_boost" validate:"gt=0"`
	WinStreakMin         int     `json:"win_streak_min" validate:"min=1"`
	WinStreakDampen      float64 `json:"win_streak_dampen" validate:"gt=0"`
	MaxWinChance         float64 `json:"max_win_chance" validate:"gt=0,lte=1"`
	BiasBelowTarget      float64 `json:"bias_below_target" validate:"gt=0"`
	BiasAboveTarget      float64 `json:"bias_above_target" validate:"gt=0"`
}

// GenerationConfig bounds grid construction
type GenerationConfig struct {
	DeadAttempts      int     `json:"dead_attempts" validate:"min=0"`
	CandidateAttempts int     `json:"candidate_attempts" validate:"min=1"`
	Tolerance         float64 `json:"tolerance" validate:"gte=0"`
	WildChance        float64 `json:"wild_chance" validate:"gte=0,lte=1"`
	ExtendChance      float64 `json:"extend_chance" validate:"gte=0,lte=1"`
}

// PricingSettings configures price presentation and the quote cache
type PricingSettings struct {
	PriceDecimals        int `json:"price_decimals" validate:"min=0,max=8"`
	QuoteCacheSize       int `json:"quote_cache_size" validate:"min=1"`
	QuoteCacheTTLSeconds int `json:"quote_cache_ttl_seconds" validate:"min=1"`
}

// Mode returns the configuration for m.
func (b *Bundle) Mode(m domain.GridMode) (ModeConfig, error) {
	cfg, ok := b.Modes[m]
	if !ok {
		return ModeConfig{}, fmt.Errorf("%w: %q", domain.ErrUnknownMode, m)
	}
	return cfg, nil
}
