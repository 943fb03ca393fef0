package bootstrap

import (
	"time"

	"github.com/osse101/SpinForge_Go/internal/event"
)

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// =============================================================================
// Logger Configuration
// =============================================================================

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingSpinForge   = "Starting SpinForge"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = event.RetryMaxAttempts

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = event.RetryInitialDelaySeconds * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Engine Bundle
// =============================================================================

const (
	LogMsgLoadingEngineBundle = "Loading engine bundle"
	LogMsgEngineBundleLoaded  = "Engine bundle loaded"
	ErrMsgFailedLoadBundle    = "failed to load engine bundle"
	ErrMsgInvalidBundle       = "engine bundle failed validation"
)

// =============================================================================
// Storage
// =============================================================================

const (
	// Pool lifetimes for the PostgreSQL backend
	DBMaxConnIdleTime = 5 * time.Minute
	DBMaxConnLifetime = time.Hour

	// StartupTimeout bounds connecting to and migrating external stores
	StartupTimeout = 30 * time.Second

	HealthCheckDatabase = "database"
	HealthCheckRedis    = "redis"
)

const (
	LogMsgStorageInitialized = "Storage initialized"
	ErrMsgFailedConnectDB    = "failed to connect to database"
	ErrMsgFailedMigrateDB    = "failed to migrate database"
	ErrMsgFailedConnectRedis = "failed to connect to redis"
	LogMsgRedisCloseFailed   = "Failed to close redis client"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgRewardAuditRegistered      = "Reward audit log registered"
	LogMsgAuditNFTDrop               = "NFT dropped"
	LogMsgAuditRedemption            = "Shards redeemed"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgClosingStorage             = "Closing storage..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
