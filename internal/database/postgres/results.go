package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/repository"
)

const (
	insertResultSQL = `
		INSERT INTO game_results (game_id, user_id, mode, bet_amount, result_type, payout, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	selectResultColumns = `SELECT game_id, user_id, bet_amount, result_type, payout, metadata, created_at FROM game_results`
)

// ResultRepository stores game results, the spin metadata as JSONB
type ResultRepository struct {
	db *pgxpool.Pool
}

var _ repository.Results = (*ResultRepository)(nil)

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{db: db}
}

// Save inserts an immutable result. A duplicate game id is rejected.
func (r *ResultRepository) Save(ctx context.Context, result *domain.GameResult) error {
	if result == nil {
		return fmt.Errorf("%w: nil result", domain.ErrInvalidInput)
	}
	id, err := uuid.Parse(result.GameID)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, ErrMsgInvalidGameID, err)
	}
	meta, err := json.Marshal(result.Metadata)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalMetadata, err)
	}

	_, err = r.db.Exec(ctx, insertResultSQL,
		id, result.UserID, string(result.Metadata.Mode), result.BetAmount,
		string(result.ResultType), result.Payout, meta, result.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: duplicate game id %s", domain.ErrInvalidInput, result.GameID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertResult, err)
	}
	return nil
}

// FindByID returns domain.ErrResultNotFound for unknown ids
func (r *ResultRepository) FindByID(ctx context.Context, gameID string) (*domain.GameResult, error) {
	id, err := uuid.Parse(gameID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrResultNotFound, gameID)
	}

	res, err := scanResult(r.db.QueryRow(ctx, selectResultColumns+` WHERE game_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrResultNotFound, gameID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetResult, err)
	}
	return res, nil
}

// FindByUserID returns the newest results first. A limit of zero or less returns all.
func (r *ResultRepository) FindByUserID(ctx context.Context, userID string, limit int) ([]domain.GameResult, error) {
	query := selectResultColumns + ` WHERE user_id = $1 ORDER BY created_at DESC, game_id`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryResults, err)
	}
	defer rows.Close()

	var out []domain.GameResult
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryResults, err)
		}
		out = append(out, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryResults, err)
	}
	return out, nil
}

func scanResult(row pgx.Row) (*domain.GameResult, error) {
	var (
		res        domain.GameResult
		id         uuid.UUID
		resultType string
		meta       []byte
	)
	if err := row.Scan(&id, &res.UserID, &res.BetAmount, &resultType, &res.Payout, &meta, &res.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(meta, &res.Metadata); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalResult, err)
	}
	res.GameID = id.String()
	res.ResultType = domain.ResultType(resultType)
	return &res, nil
}
