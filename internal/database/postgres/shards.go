package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/repository"
)

const (
	ensureBalanceSQL = `INSERT INTO shard_balances (player_id) VALUES ($1) ON CONFLICT (player_id) DO NOTHING`

	selectBalanceSQL = `
		SELECT player_id, tier_s, tier_a, tier_b, tier_c, total_earned, total_redeemed, updated_at
		FROM shard_balances WHERE player_id = $1`

	addShardsSQL = `
		UPDATE shard_balances
		SET tier_s = tier_s + $2, tier_a = tier_a + $3, tier_b = tier_b + $4, tier_c = tier_c + $5,
		    total_earned = total_earned + $2 + $3 + $4 + $5, updated_at = $6
		WHERE player_id = $1
		RETURNING player_id, tier_s, tier_a, tier_b, tier_c, total_earned, total_redeemed, updated_at`
)

// tierColumns whitelists the column of each tier
var tierColumns = map[domain.ShardTier]string{
	domain.ShardTierS: "tier_s",
	domain.ShardTierA: "tier_a",
	domain.ShardTierB: "tier_b",
	domain.ShardTierC: "tier_c",
}

// ShardRepository keeps one row per player with a column per tier. Every
// mutation is a single conditional UPDATE, so concurrent redemptions can
// never drive a count negative.
type ShardRepository struct {
	db  *pgxpool.Pool
	now func() time.Time
}

var _ repository.Shards = (*ShardRepository)(nil)

// NewShardRepository creates a new ShardRepository
func NewShardRepository(db *pgxpool.Pool) *ShardRepository {
	return &ShardRepository{db: db, now: time.Now}
}

func (r *ShardRepository) ensure(ctx context.Context, playerID string) error {
	if _, err := r.db.Exec(ctx, ensureBalanceSQL, playerID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEnsureBalance, err)
	}
	return nil
}

// GetOrCreateBalance returns the player's balance, creating an empty one
func (r *ShardRepository) GetOrCreateBalance(ctx context.Context, playerID string) (*domain.ShardBalance, error) {
	if err := r.ensure(ctx, playerID); err != nil {
		return nil, err
	}
	b, err := scanBalance(r.db.QueryRow(ctx, selectBalanceSQL, playerID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetBalance, err)
	}
	return b, nil
}

// AddShards credits every award in one statement
func (r *ShardRepository) AddShards(ctx context.Context, playerID string, awards []domain.ShardAward) (*domain.ShardBalance, error) {
	delta := make(map[domain.ShardTier]int, len(tierColumns))
	for _, a := range awards {
		if a.Count < 0 {
			return nil, fmt.Errorf("%w: negative shard count", domain.ErrInvalidInput)
		}
		if _, ok := tierColumns[a.Tier]; !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownShardTier, a.Tier)
		}
		delta[a.Tier] += a.Count
	}
	if err := r.ensure(ctx, playerID); err != nil {
		return nil, err
	}

	b, err := scanBalance(r.db.QueryRow(ctx, addShardsSQL, playerID,
		delta[domain.ShardTierS], delta[domain.ShardTierA], delta[domain.ShardTierB], delta[domain.ShardTierC],
		r.now()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAddShards, err)
	}
	return b, nil
}

// RedeemShards debits required shards of one tier when the balance covers
// it. The shortfall read shares the transaction so the reported balance is
// the one the debit was refused against.
func (r *ShardRepository) RedeemShards(ctx context.Context, playerID string, tier domain.ShardTier, required int) (*domain.ShardBalance, error) {
	col, ok := tierColumns[tier]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownShardTier, tier)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer rollback(ctx, tx)

	if _, err := tx.Exec(ctx, ensureBalanceSQL, playerID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEnsureBalance, err)
	}

	query := fmt.Sprintf(`
		UPDATE shard_balances
		SET %[1]s = %[1]s - $2, total_redeemed = total_redeemed + 1, updated_at = $3
		WHERE player_id = $1 AND %[1]s >= $2
		RETURNING player_id, tier_s, tier_a, tier_b, tier_c, total_earned, total_redeemed, updated_at`, col)

	b, err := scanBalance(tx.QueryRow(ctx, query, playerID, required, r.now()))
	switch {
	case err == nil:
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
		}
		return b, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToRedeemShards, err)
	}

	cur, err := scanBalance(tx.QueryRow(ctx, selectBalanceSQL, playerID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetBalance, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return cur, fmt.Errorf("%w: have %d %s shards, need %d", domain.ErrInsufficientShards, cur.Counts[tier], tier, required)
}

func scanBalance(row pgx.Row) (*domain.ShardBalance, error) {
	var (
		playerID   string
		s, a, b, c int
		earned     int
		redeemed   int
		updatedAt  time.Time
	)
	if err := row.Scan(&playerID, &s, &a, &b, &c, &earned, &redeemed, &updatedAt); err != nil {
		return nil, err
	}
	bal := domain.NewShardBalance(playerID)
	bal.Counts[domain.ShardTierS] = s
	bal.Counts[domain.ShardTierA] = a
	bal.Counts[domain.ShardTierB] = b
	bal.Counts[domain.ShardTierC] = c
	bal.TotalEarned = earned
	bal.TotalRedeemed = redeemed
	bal.UpdatedAt = updatedAt
	return bal, nil
}
