package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertRejectedRequests = "⚠️ SECURITY ALERT: Many rejected requests from one client"
	SecurityAlertHighRate         = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
)

// HTTP header names
const (
	HeaderForwardedFor    = "X-Forwarded-For"
	HeaderRequestID       = "X-Request-ID"
	HeaderContentTypeOpts = "X-Content-Type-Options"
	HeaderFrameOptions    = "X-Frame-Options"
	HeaderReferrerPolicy  = "Referrer-Policy"
	HeaderCacheControl    = "Cache-Control"
	HeaderCSP             = "Content-Security-Policy"
)

// Security header values. Responses are JSON only, never framed or cached.
const (
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDeny       = "DENY"
	HeaderValueNoReferrer = "no-referrer"
	HeaderValueNoStore    = "no-store"
	HeaderValueAPIOnlyCSP = "default-src 'none'; frame-ancestors 'none'"
)

// Rate limiting and request limits
const (
	RateLimitRequests         = 1000
	RateLimitWindow           = 5 * time.Minute
	RateLimitLogEvery         = 100
	RejectedRequestsAlertFrom = 20
	MaxRequestBytes           = 1 << 20
	MaxTrackedClients         = 10000
	MaxRequestIDLength        = 64
	ReadHeaderTimeout         = 5 * time.Second
	ReadTimeout               = 15 * time.Second
	WriteTimeout              = 30 * time.Second
	IdleTimeout               = 2 * time.Minute
	CORSMaxAgeSeconds         = 300
)

// QuietPaths are not request-logged
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// RedactedValue replaces secrets in logged headers
const RedactedValue = "[REDACTED]"

// sensitiveHeaders are redacted from request logs, keyed in lower case
var sensitiveHeaders = map[string]struct{}{
	"x-api-key":     {},
	"authorization": {},
	"cookie":        {},
}
