package database

import "time"

const (
	// DefaultMinConnections is kept open while the pool idles
	DefaultMinConnections int32 = 2

	// PingTimeout bounds the connectivity check in NewPool
	PingTimeout = 5 * time.Second
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

// Log messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Connected to database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
