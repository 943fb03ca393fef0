package rtp

// Adjustment term names reported in decisions
const (
	TermFarBelow        = "far_below_target"
	TermNearBelow       = "near_below_target"
	TermFarAbove        = "far_above_target"
	TermWarmup          = "session_warmup"
	TermLossStreak      = "loss_streak"
	TermLossStreakHeavy = "loss_streak_heavy"
	TermWinStreak       = "win_streak"
)

// NeutralBias leaves the payout draw uniform inside a tier range
const NeutralBias = 1.0

// Store names used as log and metric context
const (
	StoreMemory = "memory"
)

// Log messages
const (
	LogMsgStateConflict = "RTP state conflict, retrying"
	LogMsgStateRecorded = "RTP state recorded"
)

// Error context
const (
	ErrContextLoadState   = "failed to load rtp state"
	ErrContextRecordState = "failed to record rtp state"
)
