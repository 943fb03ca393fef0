package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Result Operations
const (
	ErrMsgFailedToInsertResult    = "failed to insert game result"
	ErrMsgFailedToGetResult       = "failed to get game result"
	ErrMsgFailedToQueryResults    = "failed to query game results"
	ErrMsgFailedToMarshalMetadata = "failed to marshal spin metadata"
	ErrMsgFailedToUnmarshalResult = "failed to unmarshal spin metadata"
	ErrMsgInvalidGameID           = "invalid game id"
)

// Error Messages - Shard Operations
const (
	ErrMsgFailedToEnsureBalance = "failed to ensure shard balance"
	ErrMsgFailedToGetBalance    = "failed to get shard balance"
	ErrMsgFailedToAddShards     = "failed to add shards"
	ErrMsgFailedToRedeemShards  = "failed to redeem shards"
)

// Error Messages - RTP State Operations
const (
	ErrMsgFailedToLoadRTPState  = "failed to load rtp state"
	ErrMsgFailedToStoreRTPState = "failed to store rtp state"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Log Messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
