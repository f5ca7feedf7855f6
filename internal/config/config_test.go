package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, StoragePostgres, cfg.Storage)
		assert.True(t, cfg.UsesPostgres())
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
		assert.Zero(t, cfg.CatalogSyncInterval, "periodic sync is off by default")
		assert.Equal(t, 10, cfg.PathMaxDepth)
		assert.Equal(t, "en", cfg.DefaultLanguage)
		assert.Empty(t, cfg.APIKey, "API key is optional")
		assert.Empty(t, cfg.CatalogDir)
	})

	t.Run("from environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_MAX_CONNS", "25")
		t.Setenv("CATALOG_DIR", "/data/catalog")
		t.Setenv("CATALOG_CACHE_TTL", "30s")
		t.Setenv("CATALOG_SYNC_INTERVAL", "15m")
		t.Setenv("PATH_MAX_DEPTH", "6")
		t.Setenv("DEFAULT_LANGUAGE", "de")
		t.Setenv("API_KEY", "secret")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, ,10.0.0.2")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel, "level is lower-cased")
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, 25, cfg.DBMaxConns)
		assert.Equal(t, "/data/catalog", cfg.CatalogDir)
		assert.Equal(t, 30*time.Second, cfg.CatalogCacheTTL)
		assert.Equal(t, 15*time.Minute, cfg.CatalogSyncInterval)
		assert.Equal(t, 6, cfg.PathMaxDepth)
		assert.Equal(t, "de", cfg.DefaultLanguage)
		assert.Equal(t, "secret", cfg.APIKey)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	})

	t.Run("memory storage needs no database settings", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("STORAGE", "memory")
		t.Setenv("DB_HOST", "")

		cfg, err := Load()

		require.NoError(t, err)
		assert.False(t, cfg.UsesPostgres())
	})

	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"non numeric port", map[string]string{"PORT": "not-a-number"}, "invalid PORT"},
		{"empty port", map[string]string{"PORT": ""}, "invalid PORT"},
		{"port out of range", map[string]string{"PORT": "65536"}, "Port"},
		{"zero port", map[string]string{"PORT": "0"}, "Port"},
		{"unknown log level", map[string]string{"LOG_LEVEL": "verbose"}, "LogLevel"},
		{"unknown log format", map[string]string{"LOG_FORMAT": "xml"}, "LogFormat"},
		{"unknown storage", map[string]string{"STORAGE": "sqlite"}, "Storage"},
		{"postgres without host", map[string]string{"DB_HOST": ""}, "DBHost"},
		{"path depth too deep", map[string]string{"PATH_MAX_DEPTH": "100"}, "PathMaxDepth"},
		{"bad api url", map[string]string{"API_URL": "not a url"}, "APIURL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "user",
		DBPassword: "p@ss:word",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "raid",
	}

	assert.Equal(t, "postgres://user:p@ss:word@db:5433/raid?sslmode=disable", cfg.GetDBConnString())
}

// clearEnvVars unsets every variable Load reads, restoring them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()

	keys := []string{
		EnvPort, EnvLogLevel, EnvLogFormat, EnvLogDir, EnvEnvironment, EnvVersion, EnvStorage,
		EnvDBUser, EnvDBPassword, EnvDBHost, EnvDBPort, EnvDBName, EnvDBMaxConns,
		EnvCatalogDir, EnvCatalogCacheTTL, EnvCatalogSyncInterval, EnvPathCacheSize, EnvPathCacheTTL,
		EnvDefaultLanguage, EnvPathMaxDepth, EnvAPIKey, EnvTrustedProxies,
		EnvDiscordToken, EnvDiscordAppID, EnvDiscordGuildID, EnvAPIURL,
	}
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
