package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/rtp"
)

const (
	selectRTPStateSQL = `
		SELECT scope, spins, total_wagered, total_paid, win_streak, loss_streak, version, updated_at
		FROM rtp_states WHERE scope = $1`

	insertRTPStateSQL = `
		INSERT INTO rtp_states (scope, spins, total_wagered, total_paid, win_streak, loss_streak, version, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (scope) DO NOTHING`

	updateRTPStateSQL = `
		UPDATE rtp_states
		SET spins = $2, total_wagered = $3, total_paid = $4, win_streak = $5, loss_streak = $6,
		    version = $7, updated_at = $8
		WHERE scope = $1 AND version = $9`
)

// RTPStateStore keeps controller state in rtp_states, the version column
// guarding every write
type RTPStateStore struct {
	db *pgxpool.Pool
}

var _ rtp.StateStore = (*RTPStateStore)(nil)

// NewRTPStateStore creates a new RTPStateStore
func NewRTPStateStore(db *pgxpool.Pool) *RTPStateStore {
	return &RTPStateStore{db: db}
}

// Load returns a zero state for scopes never written
func (s *RTPStateStore) Load(ctx context.Context, scope string) (domain.RTPState, error) {
	var st domain.RTPState
	err := s.db.QueryRow(ctx, selectRTPStateSQL, scope).Scan(
		&st.Scope, &st.Spins, &st.TotalWagered, &st.TotalPaid,
		&st.WinStreak, &st.LossStreak, &st.Version, &st.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.RTPState{Scope: scope}, nil
	}
	if err != nil {
		return domain.RTPState{}, fmt.Errorf("%s: %w", ErrMsgFailedToLoadRTPState, err)
	}
	return st, nil
}

// CompareAndSwap writes next only if the stored version equals expectedVersion.
// Version 0 means no row exists yet.
func (s *RTPStateStore) CompareAndSwap(ctx context.Context, expectedVersion int64, next domain.RTPState) error {
	var (
		tag pgconn.CommandTag
		err error
	)
	if expectedVersion == 0 {
		tag, err = s.db.Exec(ctx, insertRTPStateSQL,
			next.Scope, next.Spins, next.TotalWagered, next.TotalPaid,
			next.WinStreak, next.LossStreak, next.Version, next.UpdatedAt)
	} else {
		tag, err = s.db.Exec(ctx, updateRTPStateSQL,
			next.Scope, next.Spins, next.TotalWagered, next.TotalPaid,
			next.WinStreak, next.LossStreak, next.Version, next.UpdatedAt, expectedVersion)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToStoreRTPState, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: scope %s moved past version %d",
			domain.ErrConcurrentStateConflict, next.Scope, expectedVersion)
	}
	return nil
}
