package slots

// Result listing limits
const (
	DefaultResultLimit = 20
	MaxResultLimit     = 200
)

// Log messages
const (
	LogMsgSpinResolved      = "Spin resolved"
	LogMsgSpinRejected      = "Spin rejected"
	LogMsgGeneratorFallback = "Grid generator used deterministic fallback"
	LogMsgFreeSpinsAwarded  = "Free spins awarded"
	LogMsgShardCreditFailed = "Failed to credit shard awards"
	LogMsgResultSaveFailed  = "Failed to save game result"
)

// Error context
const (
	ErrContextLoadState   = "failed to load rtp state"
	ErrContextRecordSpin  = "failed to record spin"
	ErrContextFindResults = "failed to find results"
	ErrContextFindResult  = "failed to find result"
	ErrContextBuildEngine = "failed to build engine"
)
