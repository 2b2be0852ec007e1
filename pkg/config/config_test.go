package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "sizes: [10, 20]\nduration: 250ms\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, cfg.Sizes)
	assert.Equal(t, 250*time.Millisecond, cfg.Duration)
	assert.Equal(t, Default().Iterations, cfg.Iterations)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty sizes", "sizes: []\n"},
		{"negative size", "sizes: [10, -1]\n"},
		{"zero iterations", "iterations: 0\n"},
		{"negative duration", "duration: -1s\n"},
		{"malformed", "sizes: [1, 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
