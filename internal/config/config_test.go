package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripventure/tripventure-go/internal/config"
)

func TestLoad_EnvOverridesDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TRIPVENTURE_DATA_DIR", dir)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Storage.Dir)
}

func TestLoad_DefaultDataDir(t *testing.T) {
	t.Setenv("TRIPVENTURE_DATA_DIR", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ".tripventure", filepath.Base(cfg.Storage.Dir))
}
