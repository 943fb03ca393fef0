package event

import "time"

// EventSchemaVersion is stamped on every envelope
const EventSchemaVersion = "1.0"

// Retry tuning
const (
	RetryQueueBufferSize     = 1000
	RetryInitialDelaySeconds = 2
	RetryMaxAttempts         = 5
)

// DeadLetterFilePermissions is the mode of a newly created dead-letter file
const DeadLetterFilePermissions = 0o644

// Log message constants
const (
	// Log messages for event publishing
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDroppedShutdown  = "Event dropped during shutdown"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"
	LogMsgEventDeadLettered     = "Event dead-lettered"
)

// Error context messages
const (
	ErrMsgHandlersFailed  = "event handlers failed for"
	ErrMsgDecodePayload   = "failed to decode event payload"
	ErrMsgOpenDeadLetter  = "failed to open dead-letter file"
	ErrMsgParseDeadLetter = "malformed dead-letter entry at"
)

// CalculateRetryDelay doubles baseDelay for every attempt after the first.
// Attempts below 1 are treated as the first.
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return baseDelay << (attempt - 1)
}
