package rewards

// Component sizes for the 5x5 cluster patterns
const (
	ClusterPatternSmall  = 4
	ClusterPatternMedium = 5
)

// ShardsPerAward is credited for each successful pattern roll
const ShardsPerAward = 1
