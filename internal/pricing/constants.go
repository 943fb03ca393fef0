package pricing

import "time"

// Cache defaults used when the bundle leaves them unset
const (
	DefaultQuoteCacheSize = 64
	DefaultQuoteCacheTTL  = 5 * time.Minute
)

// Log messages
const (
	LogMsgPriceClamped = "Spin price clamped"
)
