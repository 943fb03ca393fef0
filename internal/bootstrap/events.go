package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/osse101/SpinForge_Go/internal/config"
	"github.com/osse101/SpinForge_Go/internal/event"
)

// eventSettings is the retry policy of the resilient publisher
type eventSettings struct {
	maxRetries     int
	retryDelay     time.Duration
	deadLetterPath string
}

// resolveEventSettings fills unset values with the defaults
func resolveEventSettings(cfg *config.Config) eventSettings {
	s := eventSettings{
		maxRetries:     cfg.EventMaxRetries,
		retryDelay:     cfg.EventRetryDelay,
		deadLetterPath: cfg.EventDeadLetterPath,
	}
	if s.maxRetries <= 0 {
		s.maxRetries = EventDefaultMaxRetries
	}
	if s.retryDelay <= 0 {
		s.retryDelay = EventDefaultRetryDelay
	}
	if s.deadLetterPath == "" {
		s.deadLetterPath = EventDefaultDeadLetterPath
	}
	return s
}

// InitializeEventSystem creates the in-memory bus and the publisher the spin
// and shard services announce through. Events that exhaust their retries are
// appended to the dead-letter file.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	settings := resolveEventSettings(cfg)

	if err := os.MkdirAll(filepath.Dir(settings.deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, settings.maxRetries, settings.retryDelay, settings.deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", settings.maxRetries,
		"retry_delay", settings.retryDelay,
		"deadletter_path", settings.deadLetterPath)
	return bus, publisher, nil
}
