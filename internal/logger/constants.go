package logger

// ContextKeyRequestID names the context value holding the request id
const ContextKeyRequestID = "request_id"

// Level names accepted by Config.LogLevel. "warning" is an alias of "warn".
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Output formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service identity
const (
	DefaultServiceName   = "spin-forge"
	SimulatorServiceName = "spin-forge-simulate"
	DefaultVersion       = "dev"
)

// Environments
const (
	EnvironmentDev        = "dev"
	EnvironmentLocal      = "local"
	EnvironmentProduction = "prod"
)

// Base attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
