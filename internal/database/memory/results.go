// Package memory provides process-local repository implementations used for
// single-node deployments, simulation runs and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/repository"
)

// ResultRepository stores game results in memory
type ResultRepository struct {
	mu     sync.RWMutex
	byID   map[string]domain.GameResult
	byUser map[string][]string
}

var _ repository.Results = (*ResultRepository)(nil)

// NewResultRepository creates an empty result store
func NewResultRepository() *ResultRepository {
	return &ResultRepository{
		byID:   make(map[string]domain.GameResult),
		byUser: make(map[string][]string),
	}
}

// Save stores a result. Results are immutable, so saving an existing ID fails.
func (r *ResultRepository) Save(_ context.Context, result *domain.GameResult) error {
	if result == nil || result.GameID == "" {
		return fmt.Errorf("%w: result requires a game id", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[result.GameID]; exists {
		return fmt.Errorf("%w: duplicate game id %s", domain.ErrInvalidInput, result.GameID)
	}
	r.byID[result.GameID] = *result
	r.byUser[result.UserID] = append(r.byUser[result.UserID], result.GameID)
	return nil
}

// FindByID returns a copy of the stored result
func (r *ResultRepository) FindByID(_ context.Context, gameID string) (*domain.GameResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.byID[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrResultNotFound, gameID)
	}
	return &res, nil
}

// FindByUserID returns up to limit results, newest first. A non-positive
// limit returns everything.
func (r *ResultRepository) FindByUserID(_ context.Context, userID string, limit int) ([]domain.GameResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byUser[userID]
	n := len(ids)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]domain.GameResult, 0, n)
	for i := len(ids) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.byID[ids[i]])
	}
	return out, nil
}
