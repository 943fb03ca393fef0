package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/osse101/SpinForge_Go/internal/config"
	"github.com/osse101/SpinForge_Go/internal/database"
	"github.com/osse101/SpinForge_Go/internal/database/memory"
	"github.com/osse101/SpinForge_Go/internal/database/postgres"
	"github.com/osse101/SpinForge_Go/internal/handler"
	"github.com/osse101/SpinForge_Go/internal/redisstore"
	"github.com/osse101/SpinForge_Go/internal/repository"
	"github.com/osse101/SpinForge_Go/internal/rtp"
)

// Repositories holds the storage chosen by configuration, plus the
// readiness checks and connections that come with it.
type Repositories struct {
	Results   repository.Results
	Shards    repository.Shards
	RTPStates rtp.StateStore

	// HealthChecks is empty for a purely in-memory setup.
	HealthChecks map[string]handler.HealthChecker

	pool  *pgxpool.Pool
	redis redis.UniversalClient
}

// InitializeRepositories connects the configured backends. PostgreSQL is
// migrated before use. On error everything opened so far is closed.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (repos *Repositories, err error) {
	repos = &Repositories{HealthChecks: make(map[string]handler.HealthChecker)}
	defer func() {
		if err != nil {
			repos.Close()
			repos = nil
		}
	}()

	if cfg.NeedsDatabase() {
		pool, err := database.NewPool(ctx, database.PoolOptions{
			ConnString:      cfg.GetDBConnString(),
			MaxConns:        cfg.DBMaxConns,
			MaxConnIdleTime: DBMaxConnIdleTime,
			MaxConnLifetime: DBMaxConnLifetime,
		})
		if err != nil {
			return repos, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		repos.pool = pool
		repos.HealthChecks[HealthCheckDatabase] = handler.HealthCheckFunc(pool.Ping)

		if err := database.Migrate(ctx, pool); err != nil {
			return repos, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
		}
	}

	switch cfg.StorageBackend {
	case config.BackendPostgres:
		repos.Results = postgres.NewResultRepository(repos.pool)
		repos.Shards = postgres.NewShardRepository(repos.pool)
	default:
		repos.Results = memory.NewResultRepository()
		repos.Shards = memory.NewShardRepository()
	}

	switch cfg.RTPStore {
	case config.BackendPostgres:
		repos.RTPStates = postgres.NewRTPStateStore(repos.pool)
	case config.BackendRedis:
		client, err := redisstore.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return repos, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		repos.redis = client
		repos.HealthChecks[HealthCheckRedis] = handler.HealthCheckFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
		repos.RTPStates = redisstore.New(client, redisstore.DefaultKeyPrefix)
	default:
		repos.RTPStates = rtp.NewMemoryStore()
	}

	slog.Info(LogMsgStorageInitialized,
		"storage_backend", cfg.StorageBackend,
		"rtp_store", cfg.RTPStore)
	return repos, nil
}

// Close releases database and redis connections
func (r *Repositories) Close() {
	if r.redis != nil {
		if err := r.redis.Close(); err != nil {
			slog.Error(LogMsgRedisCloseFailed, "error", err)
		}
		r.redis = nil
	}
	if r.pool != nil {
		r.pool.Close()
		r.pool = nil
	}
}
