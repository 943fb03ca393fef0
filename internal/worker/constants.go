package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// LogMsgWorkerJobSkipped is logged for jobs dequeued after cancellation
const LogMsgWorkerJobSkipped = "Worker job skipped, context cancelled"

// ============================================================================
// Test Constants
// ============================================================================

const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
