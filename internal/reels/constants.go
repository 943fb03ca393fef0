package reels

// Background palette bounds. Four symbols is the smallest palette whose
// (r + 2c) mod k pattern has no line or cluster match on either grid.
const (
	MinBackgroundPalette = 4
	MaxBackgroundPalette = 5
)

// MinRunShare is the smallest fraction of the remaining target a planned run may cover.
const MinRunShare = 0.5

// outOfRangePenalty keeps any in-range candidate ahead of every out-of-range one.
const outOfRangePenalty = 1e9
