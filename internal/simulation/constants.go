package simulation

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSimulationStarted  = "Simulation started"
	LogMsgSimulationFinished = "Simulation finished"
	LogMsgChunkFinished      = "Simulation chunk finished"
)

// ============================================================================
// Error Context Messages
// ============================================================================

const (
	ErrContextPaidSpin     = "paid spin failed"
	ErrContextFreeSpin     = "free spin failed"
	ErrContextTheoretical  = "failed to compute theoretical rtp"
	ErrMsgChunksIncomplete = "simulation chunks failed"
)

// DefaultWorkers is used when Options.Workers is not positive
const DefaultWorkers = 4

// userPrefix names the synthetic player of each chunk
const userPrefix = "sim-"
