package bootstrap

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaidCompanion_Go/internal/config"
	"github.com/osse101/RaidCompanion_Go/internal/repository"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:            8080,
		LogLevel:        "info",
		LogFormat:       "text",
		LogDir:          t.TempDir(),
		Environment:     "test",
		Version:         "test",
		Storage:         config.StorageMemory,
		CatalogCacheTTL: time.Minute,
		PathCacheSize:   16,
		PathCacheTTL:    time.Minute,
		DefaultLanguage: "en",
		PathMaxDepth:    10,
	}
}

func TestInitializeRepositories_Memory(t *testing.T) {
	cfg := memoryConfig(t)

	repos, err := InitializeRepositories(context.Background(), cfg)

	require.NoError(t, err)
	assert.Nil(t, repos.Pool)
	assert.Nil(t, repos.Catalog)
	require.NotNil(t, repos.CatalogReader)
	require.NotNil(t, repos.Progress)

	items, err := repos.CatalogReader.GetAllItems(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, items)

	repos.Close()
}

func TestInitializeServices_Memory(t *testing.T) {
	cfg := memoryConfig(t)
	repos, err := InitializeRepositories(context.Background(), cfg)
	require.NoError(t, err)

	svc := InitializeServices(cfg, repos)

	snap, err := svc.Catalog.Snapshot(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, snap.Items)

	board, err := svc.Quests.GetBoard(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, board.Traders)

	srvSvc := svc.ServerServices(repos)
	assert.Nil(t, srvSvc.DB, "memory storage has no database to ping")
	assert.NotNil(t, srvSvc.Progress)
}

func TestServerOptions(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.APIKey = "k"
	cfg.TrustedProxies = []string{"10.0.0.1"}

	opts := ServerOptions(cfg)

	assert.Equal(t, 8080, opts.Port)
	assert.Equal(t, "k", opts.APIKey)
	assert.Equal(t, []string{"10.0.0.1"}, opts.TrustedProxies)
	assert.Equal(t, 10, opts.PathMaxDepth)
}

func TestLoadCatalog_MissingDir(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.CatalogDir = filepath.Join(t.TempDir(), "nope")

	_, err := LoadCatalog(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedLoadCatalog)
}

func TestSyncCatalog_RequiresRepository(t *testing.T) {
	_, err := SyncCatalog(context.Background(), memoryConfig(t), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgCatalogSyncRequires)
}

// idleCatalogRepo satisfies repository.Catalog for jobs that never fire during the test
type idleCatalogRepo struct {
	repository.Catalog
}

func TestStartBackground(t *testing.T) {
	t.Run("memory storage runs nothing", func(t *testing.T) {
		cfg := memoryConfig(t)
		cfg.CatalogSyncInterval = time.Hour
		repos, err := InitializeRepositories(context.Background(), cfg)
		require.NoError(t, err)

		bg := StartBackground(cfg, repos, InitializeServices(cfg, repos))

		assert.Nil(t, bg)
		assert.NotPanics(t, bg.Stop)
	})

	t.Run("postgres without interval runs nothing", func(t *testing.T) {
		cfg := memoryConfig(t)
		cfg.Storage = config.StoragePostgres
		repos := &Repositories{Catalog: idleCatalogRepo{}}

		assert.Nil(t, StartBackground(cfg, repos, &Services{}))
	})

	t.Run("postgres with interval schedules catalog sync", func(t *testing.T) {
		cfg := memoryConfig(t)
		cfg.Storage = config.StoragePostgres
		cfg.CatalogSyncInterval = time.Hour
		repos := &Repositories{Catalog: idleCatalogRepo{}}

		bg := StartBackground(cfg, repos, &Services{})

		require.NotNil(t, bg)
		assert.NotNil(t, bg.Pool)
		assert.NotNil(t, bg.Scheduler)
		bg.Stop()
	})
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"session_2024-01-01_00-00-00.log",
		"session_2024-01-02_00-00-00.log",
		"session_2024-01-03_00-00-00.log",
		"session_2024-01-04_00-00-00.log",
	}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.ElementsMatch(t, []string{names[2], names[3], "notes.txt"}, left)
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := memoryConfig(t)
	cfg.LogDir = filepath.Join(cfg.LogDir, "logs")

	f, err := SetupLogger(cfg, "raidcompanion-test")
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	slog.Info("hello from test")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), "raidcompanion-test")
}
