package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testReport struct {
	Mode string  `json:"mode"`
	RTP  float64 `json:"rtp"`
}

func TestSaveJSON(t *testing.T) {
	t.Run("writes indented JSON and reads it back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reports", "sim.json")

		require.NoError(t, SaveJSON(path, testReport{Mode: "five_by_five", RTP: 0.965}))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "\n  \"rtp\"")

		back, err := LoadJSON[testReport](path)
		require.NoError(t, err)
		assert.Equal(t, testReport{Mode: "five_by_five", RTP: 0.965}, back)

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp file must not remain")
	})

	t.Run("overwrites an existing report", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sim.json")
		require.NoError(t, SaveJSON(path, testReport{RTP: 1}))
		require.NoError(t, SaveJSON(path, testReport{RTP: 2}))

		back, err := LoadJSON[testReport](path)
		require.NoError(t, err)
		assert.Equal(t, 2.0, back.RTP)
	})

	t.Run("returns error for unmarshalable data", func(t *testing.T) {
		err := SaveJSON(filepath.Join(t.TempDir(), "bad.json"), make(chan int))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal")
	})

	t.Run("returns error when the parent is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		err := SaveJSON(filepath.Join(file, "out.json"), 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write")
	})
}

func TestLoadJSON_Errors(t *testing.T) {
	_, err := LoadJSON[testReport](filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = LoadJSON[testReport](path)
	assert.Error(t, err)
}
