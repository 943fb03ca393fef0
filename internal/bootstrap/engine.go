package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/SpinForge_Go/internal/config"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
	"github.com/osse101/SpinForge_Go/internal/validation"
)

// LoadEngineBundle loads the tuning file, checks it against its JSON schema
// and runs the startup validation. Any hard error refuses startup; warnings
// are logged.
func LoadEngineBundle(ctx context.Context, cfg *config.Config) (*gameconfig.Bundle, error) {
	slog.Info(LogMsgLoadingEngineBundle, "path", cfg.EngineConfigPath)

	bundle, err := gameconfig.Load(cfg.EngineConfigPath, cfg.EngineSchemaPath, validation.NewSchemaValidator())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadBundle, err)
	}

	report := validation.ValidateBundle(bundle)
	report.Log(ctx)
	if err := report.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidBundle, err)
	}

	slog.Info(LogMsgEngineBundleLoaded,
		"target_rtp", bundle.TargetRTP,
		"rtp_scope", bundle.RTPScope,
		"modes", len(bundle.Modes),
		"warnings", len(report.Warnings))
	return bundle, nil
}
