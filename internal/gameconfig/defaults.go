package gameconfig

import "github.com/osse101/SpinForge_Go/internal/domain"

// Default returns the shipped tuning. configs/engine.yaml mirrors it.
func Default() *Bundle {
	return &Bundle{
		TargetRTP: 0.965,
		RTPScope:  domain.RTPScopeGlobal,
		Symbols: []domain.SymbolDefinition{
			{ID: "cherry", Label: "Cherry", Rarity: domain.RarityCommon, PayoutMultiplier: 0.5},
			{ID: "lemon", Label: "Lemon", Rarity: domain.RarityCommon, PayoutMultiplier: 1},
			{ID: "orange", Label: "Orange", Rarity: domain.RarityCommon, PayoutMultiplier: 1.5},
			{ID: "plum", Label: "Plum", Rarity: domain.RarityRare, PayoutMultiplier: 2},
			{ID: "bell", Label: "Bell", Rarity: domain.RarityRare, PayoutMultiplier: 4},
			{ID: "bar", Label: "Bar", Rarity: domain.RarityEpic, PayoutMultiplier: 8},
			{ID: "lucky_seven", Label: "Lucky Seven", Rarity: domain.RarityLegendary, PayoutMultiplier: 15},
			{ID: "diamond", Label: "Diamond", Rarity: domain.RarityLegendary, PayoutMultiplier: 25},
			{ID: "wild", Label: "Wild", Rarity: domain.RarityWild, ReelWeight: 1.5},
			{ID: "scatter", Label: "Scatter", Rarity: domain.RarityScatter, ReelWeight: 1},
		},
		Multipliers: MultiplierConfig{
			Symbols: []domain.MultiplierSymbol{
				{Value: 2, Rarity: domain.RarityCommon},
				{Value: 3, Rarity: domain.RarityCommon},
				{Value: 4, Rarity: domain.RarityRare},
				{Value: 5, Rarity: domain.RarityRare},
				{Value: 6, Rarity: domain.RarityEpic},
				{Value: 7, Rarity: domain.RarityEpic},
				{Value: 8, Rarity: domain.RarityLegendary},
				{Value: 9, Rarity: domain.RarityLegendary},
			},
			MaxPerSpin:     3,
			MaxSpawnChance: 0.95,
		},
		Modes: map[domain.GridMode]ModeConfig{
			domain.ModeThreeByThree: {
				MinBet:           0.1,
				MaxBet:           100,
				ReferenceBet:     1,
				MaxWinMultiplier: 500,
				DefaultProfile:   "medium",
				Profiles: map[string]TierTable{
					"low": {
						domain.TierSmall:         {Probability: 0.30, MinMultiplier: 0.5, MaxMultiplier: 2.5},
						domain.TierMedium:        {Probability: 0.05, MinMultiplier: 2.5, MaxMultiplier: 6},
						domain.TierBig:           {Probability: 0.008, MinMultiplier: 6, MaxMultiplier: 18},
						domain.TierEpic:          {Probability: 0.0015, MinMultiplier: 18, MaxMultiplier: 60},
						domain.TierDirectNFTDrop: {Probability: 0.001, MinMultiplier: 1, MaxMultiplier: 3},
					},
					"medium": {
						domain.TierSmall:         {Probability: 0.22, MinMultiplier: 0.5, MaxMultiplier: 2.5},
						domain.TierMedium:        {Probability: 0.06, MinMultiplier: 2.5, MaxMultiplier: 6},
						domain.TierBig:           {Probability: 0.012, MinMultiplier: 6, MaxMultiplier: 18},
						domain.TierEpic:          {Probability: 0.0025, MinMultiplier: 18, MaxMultiplier: 60},
						domain.TierDirectNFTDrop: {Probability: 0.001, MinMultiplier: 1, MaxMultiplier: 3},
					},
					"high": {
						domain.TierSmall:         {Probability: 0.15, MinMultiplier: 0.5, MaxMultiplier: 2.5},
						domain.TierMedium:        {Probability: 0.05, MinMultiplier: 2.5, MaxMultiplier: 6},
						domain.TierBig:           {Probability: 0.015, MinMultiplier: 6, MaxMultiplier: 18},
						domain.TierEpic:          {Probability: 0.005, MinMultiplier: 18, MaxMultiplier: 60},
						domain.TierDirectNFTDrop: {Probability: 0.001, MinMultiplier: 1, MaxMultiplier: 3},
					},
				},
				MultiplierSpawnChance: 0.04,
				FreeSpins: FreeSpinConfig{
					TriggerChance:  0.008,
					TriggerCount:   3,
					Spins:          8,
					RetriggerSpins: 4,
					SpawnBoost:     1.5,
				},
				NFTDropChances: map[domain.ShardTier]float64{
					domain.ShardTierS: 0.0002,
					domain.ShardTierA: 0.0005,
					domain.ShardTierB: 0.0012,
					domain.ShardTierC: 0.003,
				},
				Pricing: domain.PricingConfig{
					Model:     domain.PricingFixed,
					BasePrice: 1.13,
					FundRate:  0.001,
					PrizeFund: 1000,
					MinPrice:  0.5,
					MaxPrice:  5,
				},
			},
			domain.ModeFiveByFive: {
				MinBet:           0.1,
				MaxBet:           100,
				ReferenceBet:     1,
				MaxWinMultiplier: 1000,
				DefaultProfile:   "medium",
				Profiles: map[string]TierTable{
					"low": {
						domain.TierSmall:         {Probability: 0.20, MinMultiplier: 0.5, MaxMultiplier: 3},
						domain.TierMedium:        {Probability: 0.03, MinMultiplier: 3, MaxMultiplier: 8},
						domain.TierBig:           {Probability: 0.006, MinMultiplier: 8, MaxMultiplier: 25},
						domain.TierEpic:          {Probability: 0.001, MinMultiplier: 25, MaxMultiplier: 100},
						domain.TierDirectNFTDrop: {Probability: 0.001, MinMultiplier: 1, MaxMultiplier: 4},
					},
					"medium": {
						domain.TierSmall:         {Probability: 0.15, MinMultiplier: 0.5, MaxMultiplier: 3},
						domain.TierMedium:        {Probability: 0.04, MinMultiplier: 3, MaxMultiplier: 8},
						domain.TierBig:           {Probability: 0.008, MinMultiplier: 8, MaxMultiplier: 25},
						domain.TierEpic:          {Probability: 0.0015, MinMultiplier: 25, MaxMultiplier: 100},
						domain.TierDirectNFTDrop: {Probability: 0.001, MinMultiplier: 1, MaxMultiplier: 4},
					},
					"high": {
						domain.TierSmall:         {Probability: 0.10, MinMultiplier: 0.5, MaxMultiplier: 3},
						domain.TierMedium:        {Probability: 0.04, MinMultiplier: 3, MaxMultiplier: 8},
						domain.TierBig:           {Probability: 0.011, MinMultiplier: 8, MaxMultiplier: 25},
						domain.TierEpic:          {Probability: 0.0025, MinMultiplier: 25, MaxMultiplier: 100},
						domain.TierDirectNFTDrop: {Probability: 0.001, MinMultiplier: 1, MaxMultiplier: 4},
					},
				},
				MultiplierSpawnChance: 0.05,
				FreeSpins: FreeSpinConfig{
					TriggerChance:  0.01,
					TriggerCount:   3,
					Spins:          10,
					RetriggerSpins: 5,
					SpawnBoost:     1.5,
					Accumulate:     true,
				},
				NFTDropChances: map[domain.ShardTier]float64{
					domain.ShardTierS: 0.0003,
					domain.ShardTierA: 0.0007,
					domain.ShardTierB: 0.0015,
					domain.ShardTierC: 0.0035,
				},
				Pricing: domain.PricingConfig{
					Model:     domain.PricingHybrid,
					BasePrice: 0.56,
					FundRate:  0.0005,
					PrizeFund: 1000,
					MinPrice:  0.5,
					MaxPrice:  10,
				},
			},
		},
		Shards: ShardConfig{
			RedemptionThreshold: 10,
			Patterns: map[domain.ShardPattern]map[domain.ShardTier]float64{
				domain.PatternSideCombo:      {domain.ShardTierS: 0.0004, domain.ShardTierA: 0.002, domain.ShardTierB: 0.008, domain.ShardTierC: 0.03},
				domain.PatternEdgeCombo:      {domain.ShardTierS: 0.001, domain.ShardTierA: 0.004, domain.ShardTierB: 0.015, domain.ShardTierC: 0.05},
				domain.PatternDiagonalPair:   {domain.ShardTierS: 0.0003, domain.ShardTierA: 0.0015, domain.ShardTierB: 0.006, domain.ShardTierC: 0.02},
				domain.PatternClusterOf4:     {domain.ShardTierS: 0.0002, domain.ShardTierA: 0.001, domain.ShardTierB: 0.005, domain.ShardTierC: 0.02},
				domain.PatternClusterOf5:     {domain.ShardTierS: 0.0006, domain.ShardTierA: 0.003, domain.ShardTierB: 0.01, domain.ShardTierC: 0.04},
				domain.PatternClusterOf6Plus: {domain.ShardTierS: 0.0012, domain.ShardTierA: 0.006, domain.ShardTierB: 0.02, domain.ShardTierC: 0.08},
			},
		},
		NFT: NFTConfig{
			BonusMultipliers: map[domain.ShardTier]float64{
				domain.ShardTierS: 10,
				domain.ShardTierA: 5,
				domain.ShardTierB: 2.5,
				domain.ShardTierC: 1.5,
			},
			Collectibles: []Collectible{
				{Name: "Genesis Dragon", Tier: domain.ShardTierS, Price: 250},
				{Name: "Crystal Phoenix", Tier: domain.ShardTierA, Price: 60},
				{Name: "Golden Koi", Tier: domain.ShardTierA, Price: 50},
				{Name: "Neon Tiger", Tier: domain.ShardTierB, Price: 15},
				{Name: "Pixel Samurai", Tier: domain.ShardTierB, Price: 12},
				{Name: "Lucky Cat", Tier: domain.ShardTierC, Price: 3},
				{Name: "Paper Crane", Tier: domain.ShardTierC, Price: 2},
			},
		},
		Controller: ControllerConfig{
			FarBelowThreshold:    0.05,
			FarBelowBoost:        1.5,
			NearBelowThreshold:   0.02,
			NearBelowBoost:       1.2,
			FarAboveThreshold:    0.05,
			FarAboveDampen:       0.5,
			WarmupSpins:          5,
			WarmupBoost:          1.15,
			LossStreakMin:        10,
			LossStreakBoost:      1.3,
			LossStreakHeavy:      15,
			LossStreakHeavyBoost: 1.8,
			WinStreakMin:         5,
			WinStreakDampen:      0.6,
			MaxWinChance:         0.95,
			BiasBelowTarget:      0.5,
			BiasAboveTarget:      2,
		},
		Generation: GenerationConfig{
			DeadAttempts:      6,
			CandidateAttempts: 12,
			Tolerance:         0.05,
			WildChance:        0.15,
			ExtendChance:      0.2,
		},
		Pricing: PricingSettings{
			PriceDecimals:        2,
			QuoteCacheSize:       64,
			QuoteCacheTTLSeconds: 300,
		},
	}
}
