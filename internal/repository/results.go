package repository

import (
	"context"

	"github.com/osse101/SpinForge_Go/internal/domain"
)

// Results defines the interface for game result storage
type Results interface {
	Save(ctx context.Context, result *domain.GameResult) error
	FindByID(ctx context.Context, gameID string) (*domain.GameResult, error)
	// FindByUserID returns the newest results first.
	FindByUserID(ctx context.Context, userID string, limit int) ([]domain.GameResult, error)
}
