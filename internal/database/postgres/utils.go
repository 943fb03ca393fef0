package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/SpinForge_Go/internal/logger"
)

// rollback is deferred after Begin. Once the transaction is committed the
// rollback reports ErrTxClosed, which is expected and not logged.
func rollback(ctx context.Context, tx pgx.Tx) {
	err := tx.Rollback(ctx)
	if err == nil || errors.Is(err, pgx.ErrTxClosed) {
		return
	}
	logger.FromContext(ctx).Error(LogMsgFailedToRollback, "error", err)
}

// isUniqueViolation reports a duplicate key error from PostgreSQL
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == PgErrorCodeUniqueViolation
}
