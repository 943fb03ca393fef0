// Package redisstore keeps RTP controller state in Redis so several engine
// processes can share one ledger.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/rtp"
)

// Store serialises each scope as JSON under one key and swaps it inside a
// WATCH/MULTI transaction
type Store struct {
	client redis.UniversalClient
	prefix string
}

var _ rtp.StateStore = (*Store)(nil)

// NewClient connects to addr and verifies the connection
func NewClient(ctx context.Context, addr, password string, db int) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", ErrContextPing, err)
	}
	return client, nil
}

// New creates a store. An empty prefix uses DefaultKeyPrefix.
func New(client redis.UniversalClient, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Store{client: client, prefix: prefix}
}

func (s *Store) key(scope string) string {
	return s.prefix + scope
}

// Load returns a zero state for scopes never written
func (s *Store) Load(ctx context.Context, scope string) (domain.RTPState, error) {
	return load(ctx, s.client, s.key(scope), scope)
}

// CompareAndSwap writes next only if the stored version equals expectedVersion
func (s *Store) CompareAndSwap(ctx context.Context, expectedVersion int64, next domain.RTPState) error {
	key := s.key(next.Scope)
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextEncode, err)
	}

	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := load(ctx, tx, key, next.Scope)
		if err != nil {
			return err
		}
		if cur.Version != expectedVersion {
			return fmt.Errorf("%w: scope %s at version %d, expected %d",
				domain.ErrConcurrentStateConflict, next.Scope, cur.Version, expectedVersion)
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return fmt.Errorf("%w: scope %s changed during swap", domain.ErrConcurrentStateConflict, next.Scope)
	case errors.Is(err, domain.ErrConcurrentStateConflict):
		return err
	default:
		return fmt.Errorf("%s: %w", ErrContextSwap, err)
	}
}

// getter is satisfied by clients and by a watched transaction
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func load(ctx context.Context, c getter, key, scope string) (domain.RTPState, error) {
	raw, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.RTPState{Scope: scope}, nil
	}
	if err != nil {
		return domain.RTPState{}, fmt.Errorf("%s: %w", ErrContextLoad, err)
	}

	var st domain.RTPState
	if err := json.Unmarshal(raw, &st); err != nil {
		return domain.RTPState{}, fmt.Errorf("%s: %w", ErrContextDecode, err)
	}
	return st, nil
}
