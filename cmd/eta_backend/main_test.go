package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/expense_tracker_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRepositoryProvider_JSONFileDriver(t *testing.T) {
	cfg := &config.Config{
		StorageDriver: config.StorageDriverJSONFile,
		JSONDBPath:    filepath.Join(t.TempDir(), "store.json"),
	}

	provider, cleanup, err := buildRepositoryProvider(cfg, slog.Default())

	require.NoError(t, err)
	require.NotNil(t, cleanup)
	defer cleanup()
	assert.NotNil(t, provider.ExpenseRepo)
	assert.NotNil(t, provider.RateRepo)
	assert.NotNil(t, provider.SettingsRepo)
	assert.NotNil(t, provider.UserRepo)
}

func TestBuildRepositoryProvider_OpenFailureReturnsEmptyProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	cfg := &config.Config{
		StorageDriver: config.StorageDriverJSONFile,
		JSONDBPath:    path,
	}

	provider, _, err := buildRepositoryProvider(cfg, slog.Default())

	require.Error(t, err)
	assert.Nil(t, provider.ExpenseRepo)
}
