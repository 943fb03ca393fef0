package bootstrap

import (
	"log/slog"

	"github.com/osse101/SpinForge_Go/internal/config"
	"github.com/osse101/SpinForge_Go/internal/logger"
)

// SetupLogger installs the process logger from the app configuration.
// Source locations are only added in development.
func SetupLogger(cfg *config.Config) {
	addSource := cfg.Environment == logger.EnvironmentDev

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel)
	slog.Info(LogMsgStartingSpinForge,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"storage_backend", cfg.StorageBackend,
		"rtp_store", cfg.RTPStore,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"redis_addr", cfg.RedisAddr,
		"port", cfg.Port)

	for _, w := range cfg.Warnings {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}
}
