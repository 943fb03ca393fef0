package rtp

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/SpinForge_Go/internal/domain"
)

// StateStore persists RTP state with optimistic concurrency.
//
// Load returns a zero state with Version 0 and the requested scope when
// nothing has been stored yet. CompareAndSwap replaces the stored state only
// when its version still equals expectedVersion, otherwise it returns
// domain.ErrConcurrentStateConflict.
type StateStore interface {
	Load(ctx context.Context, scope string) (domain.RTPState, error)
	CompareAndSwap(ctx context.Context, expectedVersion int64, next domain.RTPState) error
}

// MemoryStore is a process-local StateStore
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]domain.RTPState
}

var _ StateStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]domain.RTPState)}
}

func (m *MemoryStore) Load(_ context.Context, scope string) (domain.RTPState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st, ok := m.states[scope]
	if !ok {
		return domain.RTPState{Scope: scope}, nil
	}
	return st, nil
}

func (m *MemoryStore) CompareAndSwap(_ context.Context, expectedVersion int64, next domain.RTPState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cur := m.states[next.Scope]; cur.Version != expectedVersion {
		return fmt.Errorf("%w: scope %s at version %d, expected %d",
			domain.ErrConcurrentStateConflict, next.Scope, cur.Version, expectedVersion)
	}
	m.states[next.Scope] = next
	return nil
}

// Scopes lists stored scopes, used by diagnostics
func (m *MemoryStore) Scopes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.states))
	for k := range m.states {
		out = append(out, k)
	}
	return out
}
