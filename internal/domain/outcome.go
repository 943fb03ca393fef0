package domain

// SpinOutcomeTier is the payout band chosen before the grid is generated
type SpinOutcomeTier string

const (
	TierDead          SpinOutcomeTier = "dead"
	TierSmall         SpinOutcomeTier = "small"
	TierMedium        SpinOutcomeTier = "medium"
	TierBig           SpinOutcomeTier = "big"
	TierEpic          SpinOutcomeTier = "epic"
	TierDirectNFTDrop SpinOutcomeTier = "direct_nft_drop"
)

// WinningTiers lists the non-dead tiers in a stable order. Tier selection
// always iterates this slice so seeded runs are reproducible.
var WinningTiers = []SpinOutcomeTier{TierSmall, TierMedium, TierBig, TierEpic, TierDirectNFTDrop}

// IsWin reports whether the tier pays.
func (t SpinOutcomeTier) IsWin() bool {
	return t != TierDead && t != ""
}

// ResultType classifies a settled spin against its stake
type ResultType string

const (
	ResultWin  ResultType = "WIN"
	ResultLoss ResultType = "LOSS"
	ResultDraw ResultType = "DRAW"
)

// ClassifyResult returns WIN when payout exceeds the bet, DRAW when equal, LOSS otherwise.
func ClassifyResult(bet, payout float64) ResultType {
	switch {
	case payout > bet:
		return ResultWin
	case payout == bet:
		return ResultDraw
	default:
		return ResultLoss
	}
}
