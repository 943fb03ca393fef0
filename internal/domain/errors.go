package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Spin errors
	ErrMsgInvalidBet              = "invalid bet"
	ErrMsgInsufficientBalance     = "insufficient balance"
	ErrMsgNoFreeSpins             = "no free spins remaining"
	ErrMsgUnknownMode             = "unknown grid mode"
	ErrMsgUnknownProfile          = "unknown volatility profile"
	ErrMsgConcurrentStateConflict = "concurrent state conflict"

	// Configuration errors
	ErrMsgInvalidConfiguration = "invalid configuration"

	// Shard errors
	ErrMsgInsufficientShards = "insufficient shards"
	ErrMsgUnknownShardTier   = "unknown shard tier"

	// Repository errors
	ErrMsgResultNotFound = "game result not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidBet is returned before any state mutation when the bet is outside the mode limits.
	ErrInvalidBet = errors.New(ErrMsgInvalidBet)
	// ErrInsufficientBalance belongs to the caller; the engine never debits balances.
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)
	ErrNoFreeSpins         = errors.New(ErrMsgNoFreeSpins)
	ErrUnknownMode         = errors.New(ErrMsgUnknownMode)
	ErrUnknownProfile      = errors.New(ErrMsgUnknownProfile)

	// ErrConcurrentStateConflict is transient. State stores return it when a
	// compare-and-swap loses the race; the RTP controller retries internally.
	ErrConcurrentStateConflict = errors.New(ErrMsgConcurrentStateConflict)

	// ErrInvalidConfiguration is fatal at load time.
	ErrInvalidConfiguration = errors.New(ErrMsgInvalidConfiguration)

	ErrInsufficientShards = errors.New(ErrMsgInsufficientShards)
	ErrUnknownShardTier   = errors.New(ErrMsgUnknownShardTier)

	ErrResultNotFound = errors.New(ErrMsgResultNotFound)
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)
)
