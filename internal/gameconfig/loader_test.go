package gameconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
	"github.com/osse101/SpinForge_Go/internal/validation"
)

const (
	bundlePath = "../../configs/engine.yaml"
	schemaPath = "../../configs/schemas/engine_bundle.schema.json"
)

func TestLoad_ShippedBundleMatchesDefault(t *testing.T) {
	b, err := gameconfig.Load(bundlePath, schemaPath, validation.NewSchemaValidator())
	require.NoError(t, err)

	assert.Equal(t, gameconfig.Default(), b)
}

func TestLoad_JSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	raw := `{"target_rtp": 0.95, "rtp_scope": "user", "symbols": [{"id": "a", "rarity": "common", "payout_multiplier": 1}],
		"multipliers": {"symbols": [{"value": 2}], "max_per_spin": 1, "max_spawn_chance": 0.9},
		"modes": {"three_by_three": {"min_bet": 1, "max_bet": 2, "reference_bet": 1, "max_win_multiplier": 10,
			"default_profile": "p", "profiles": {"p": {"small": {"probability": 0.1, "min_multiplier": 1, "max_multiplier": 2}}},
			"multiplier_spawn_chance": 0.01, "free_spins": {"trigger_chance": 0, "trigger_count": 3, "spins": 0, "spawn_boost": 1},
			"nft_drop_chances": {}, "pricing": {"model": "fixed", "base_price": 1, "min_price": 0.5, "max_price": 2}}},
		"shards": {"redemption_threshold": 10}, "nft": {"bonus_multipliers": {"C": 1.5}},
		"controller": {"far_below_boost": 1, "near_below_boost": 1, "far_above_dampen": 1, "warmup_boost": 1,
			"loss_streak_min": 1, "loss_streak_boost": 1, "loss_streak_heavy": 2, "loss_streak_heavy_boost": 1,
			"win_streak_min": 1, "win_streak_dampen": 1, "max_win_chance": 0.9, "bias_below_target": 1, "bias_above_target": 1},
		"generation": {"candidate_attempts": 1}, "pricing": {"quote_cache_size": 1, "quote_cache_ttl_seconds": 1}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0600))

	b, err := gameconfig.Load(path, schemaPath, validation.NewSchemaValidator())
	require.NoError(t, err)
	assert.Equal(t, domain.RTPScopeUser, b.RTPScope)

	mode, err := b.Mode(domain.ModeThreeByThree)
	require.NoError(t, err)
	table, name, err := mode.Profile("")
	require.NoError(t, err)
	assert.Equal(t, "p", name)
	assert.InDelta(t, 0.1, table.WinProbability(), 1e-12)

	_, err = b.Mode(domain.ModeFiveByFive)
	assert.ErrorIs(t, err, domain.ErrUnknownMode)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := gameconfig.Load("does-not-exist.yaml", "", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), gameconfig.ErrContextReadBundle)
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := gameconfig.Parse([]byte("target_rtp: 2\n"), ".yaml", schemaPath, validation.NewSchemaValidator())
		assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	})

	t.Run("unknown field without schema", func(t *testing.T) {
		_, err := gameconfig.Parse([]byte("bogus: 1\n"), ".yaml", "", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	})

	t.Run("struct validation", func(t *testing.T) {
		_, err := gameconfig.Parse([]byte("target_rtp: 0.9\nrtp_scope: galaxy\n"), ".yml", "", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := gameconfig.Parse([]byte("{}"), ".toml", "", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	})

	t.Run("schema validator error is wrapped", func(t *testing.T) {
		sentinel := errors.New("boom")
		_, err := gameconfig.Parse([]byte("{}"), ".json", "schema.json", failingValidator{err: sentinel})
		assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestModeConfig_Profile(t *testing.T) {
	mode, err := gameconfig.Default().Mode(domain.ModeFiveByFive)
	require.NoError(t, err)

	_, name, err := mode.Profile("high")
	require.NoError(t, err)
	assert.Equal(t, "high", name)

	_, _, err = mode.Profile("insane")
	assert.ErrorIs(t, err, domain.ErrUnknownProfile)

	assert.InDelta(t, 0.006, mode.NFTDropProbability(), 1e-9)

	small, err := gameconfig.Default().Mode(domain.ModeThreeByThree)
	require.NoError(t, err)
	assert.InDelta(t, 0.0049, small.NFTDropProbability(), 1e-9)
}

type failingValidator struct{ err error }

func (f failingValidator) ValidateBytes([]byte, string) error { return f.err }
