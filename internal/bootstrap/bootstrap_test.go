package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinForge_Go/internal/config"
	"github.com/osse101/SpinForge_Go/internal/database/memory"
	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/event"
	"github.com/osse101/SpinForge_Go/internal/rtp"
)

func memoryConfig() *config.Config {
	return &config.Config{
		StorageBackend:   config.BackendMemory,
		RTPStore:         config.BackendMemory,
		EngineConfigPath: filepath.Join("..", "..", config.ConfigPathEngine),
		EngineSchemaPath: config.ConfigPathEngineSchema,
	}
}

func TestInitializeRepositories_Memory(t *testing.T) {
	repos, err := InitializeRepositories(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer repos.Close()

	assert.IsType(t, &memory.ResultRepository{}, repos.Results)
	assert.IsType(t, &memory.ShardRepository{}, repos.Shards)
	assert.IsType(t, &rtp.MemoryStore{}, repos.RTPStates)
	assert.Empty(t, repos.HealthChecks)
}

func TestInitializeRepositories_UnreachableRedis(t *testing.T) {
	cfg := memoryConfig()
	cfg.RTPStore = config.BackendRedis
	cfg.RedisAddr = "127.0.0.1:1"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	repos, err := InitializeRepositories(ctx, cfg)
	assert.Error(t, err)
	assert.Nil(t, repos)
	assert.Contains(t, err.Error(), ErrMsgFailedConnectRedis)
}

func TestLoadEngineBundle(t *testing.T) {
	bundle, err := LoadEngineBundle(context.Background(), memoryConfig())
	require.NoError(t, err)

	assert.Equal(t, 0.965, bundle.TargetRTP)
	assert.Contains(t, bundle.Modes, domain.ModeThreeByThree)
	assert.Contains(t, bundle.Modes, domain.ModeFiveByFive)
}

func TestLoadEngineBundle_RejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target_rtp: 2\n"), 0o600))

	cfg := memoryConfig()
	cfg.EngineConfigPath = path

	_, err := LoadEngineBundle(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration))
}

func TestInitializeEventSystem(t *testing.T) {
	cfg := &config.Config{EventDeadLetterPath: filepath.Join(t.TempDir(), "nested", "deadletter.jsonl")}

	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, bus)
	require.NotNil(t, publisher)

	require.NoError(t, RegisterEventHandlers(bus))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, GracefulShutdown(ctx, ShutdownComponents{ResilientPublisher: publisher}))
}

func TestGracefulShutdown_NothingStarted(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.NoError(t, GracefulShutdown(context.Background(), ShutdownComponents{}))
	})
}

func TestResolveEventSettings(t *testing.T) {
	defaults := resolveEventSettings(&config.Config{})
	assert.Equal(t, EventDefaultMaxRetries, defaults.maxRetries)
	assert.Equal(t, EventDefaultRetryDelay, defaults.retryDelay)
	assert.Equal(t, EventDefaultDeadLetterPath, defaults.deadLetterPath)

	custom := resolveEventSettings(&config.Config{
		EventMaxRetries:     2,
		EventRetryDelay:     time.Second,
		EventDeadLetterPath: "tmp/dl.jsonl",
	})
	assert.Equal(t, eventSettings{maxRetries: 2, retryDelay: time.Second, deadLetterPath: "tmp/dl.jsonl"}, custom)
}

func TestRewardAuditHandlers(t *testing.T) {
	ctx := context.Background()

	drop := event.NewNFTDroppedEvent(domain.NFTDroppedPayload{
		UserID: "u1",
		Mode:   domain.ModeThreeByThree,
		Drop:   domain.NFTDrop{Tier: domain.ShardTierA, Collectible: "Golden Koi", EstimatedValue: 50},
	})
	assert.NoError(t, auditNFTDrop(ctx, drop))

	redeem := event.NewShardsRedeemedEvent(domain.ShardsRedeemedPayload{UserID: "u1", Tier: domain.ShardTierC, Required: 10})
	assert.NoError(t, auditRedemption(ctx, redeem))

	assert.Error(t, auditRedemption(ctx, event.Event{Type: event.ShardsRedeemed, Payload: "not a payload"}))
}
