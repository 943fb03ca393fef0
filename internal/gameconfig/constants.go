package gameconfig

// Error contexts
const (
	ErrContextReadBundle   = "failed to read engine bundle"
	ErrContextDecodeBundle = "failed to decode engine bundle"
)
