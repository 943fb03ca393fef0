package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Config selects the handler and the attributes stamped on every record
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig creates a config from explicit values
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// DefaultConfig is used before configuration has been read
func DefaultConfig() Config {
	return NewConfig(LogLevelInfo, LogFormatText, DefaultServiceName, DefaultVersion, EnvironmentDev, false)
}

// ParseLevel reads a level name. Besides slog's own syntax ("info",
// "warn+2") it accepts "warning".
func ParseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == LogLevelWarning {
		s = LogLevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// LogLevel is the configured level, info when it does not parse
func (c Config) LogLevel() slog.Level {
	lvl, _ := ParseLevel(c.Level)
	return lvl
}

// IsJSON reports whether records are written as JSON
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// Handler builds the slog handler for w with the base attributes attached
func (c Config) Handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.LogLevel(), AddSource: c.AddSource}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if c.IsJSON() {
		h = slog.NewJSONHandler(w, opts)
	}
	return h.WithAttrs([]slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	})
}
