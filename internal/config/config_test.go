package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bmptool.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, SepiaScalar, cfg.Sepia.Mode)
	assert.False(t, cfg.Decode.Strict)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  development: true
decode:
  strict: true
sepia:
  mode: batched
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.True(t, cfg.Decode.Strict)
	assert.Equal(t, SepiaBatched, cfg.Sepia.Mode)
	// Unset keys keep their defaults
	assert.Equal(t, 4, cfg.Batch.Workers)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{name: "unknown key", content: "sepia:\n  rounding: up\n", message: "failed to parse"},
		{name: "bad yaml", content: "log: [\n", message: "failed to parse"},
		{name: "bad mode", content: "sepia:\n  mode: vector\n", message: "sepia.mode"},
		{name: "bad level", content: "log:\n  level: loud\n", message: "log.level"},
		{name: "no workers", content: "batch:\n  workers: 0\n", message: "batch.workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
