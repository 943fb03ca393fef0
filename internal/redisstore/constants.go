package redisstore

// Key layout
const (
	// DefaultKeyPrefix namespaces every key the store writes
	DefaultKeyPrefix = "spinforge:rtp:"
)

// Error contexts
const (
	ErrContextLoad   = "failed to load rtp state from redis"
	ErrContextDecode = "failed to decode rtp state"
	ErrContextEncode = "failed to encode rtp state"
	ErrContextSwap   = "failed to swap rtp state in redis"
	ErrContextPing   = "failed to ping redis"
)
