package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GranblueTeam_Go/internal/config"
	"github.com/osse101/GranblueTeam_Go/internal/editkey"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, LogFileRetentionCount+1)
	assert.Contains(t, names, "notes.txt")
	assert.NotContains(t, names, fmt.Sprintf(LogFileNamePattern, "2026-01-01_00-00-00"))
	assert.Contains(t, names, fmt.Sprintf(LogFileNamePattern, "2026-01-12_00-00-00"))
}

func TestSetupLogger_WritesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{LogLevel: "info", LogFormat: "json", LogDir: dir, Environment: config.EnvironmentProduction}

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgLoggingInitialized)
}

func TestSetupLogger_StdoutOnly(t *testing.T) {
	f, err := SetupLogger(&config.Config{LogLevel: "warn", LogFormat: "text"})
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestSetupStorage_MemoryWithoutDatabase(t *testing.T) {
	cfg := &config.Config{EditKeyCacheSize: 10, EditKeyTTL: time.Hour}

	s, err := SetupStorage(context.Background(), cfg)
	require.NoError(t, err)
	defer s.Close()

	assert.IsType(t, &editkey.MemoryStore{}, s.EditKeys)
	assert.Nil(t, s.DB)
	assert.Nil(t, s.Scheduler)
	assert.Empty(t, s.Checkers())

	ctx := context.Background()
	require.NoError(t, s.EditKeys.Put(ctx, "local", "party", "key"))
	got, err := s.EditKeys.Get(ctx, "local", "party")
	require.NoError(t, err)
	assert.Equal(t, "key", got)
}

func TestSetupStorage_BadDatabaseURL(t *testing.T) {
	_, err := SetupStorage(context.Background(), &config.Config{DatabaseURL: "://nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedConnectDB)
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
