package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string
	Environment string `validate:"required"`
	Version     string

	Storage    string `validate:"oneof=postgres memory"`
	DBUser     string `validate:"required_if=Storage postgres"`
	DBPassword string
	DBHost     string `validate:"required_if=Storage postgres"`
	DBPort     string `validate:"required_if=Storage postgres"`
	DBName     string `validate:"required_if=Storage postgres"`
	DBMaxConns int    `validate:"min=1"`

	// CatalogDir overrides the embedded catalog when set
	CatalogDir      string
	CatalogCacheTTL time.Duration `validate:"min=0"`
	// CatalogSyncInterval re-syncs catalog files into Postgres periodically; 0 disables it
	CatalogSyncInterval time.Duration `validate:"min=0"`
	PathCacheSize   int           `validate:"min=0"`
	PathCacheTTL    time.Duration `validate:"min=0"`
	DefaultLanguage string        `validate:"required"`
	PathMaxDepth    int           `validate:"min=1,max=32"`

	APIKey string // optional; empty disables API key auth
	// TrustedProxies may set X-Forwarded-For / X-Real-IP
	TrustedProxies []string `validate:"dive,ip"`

	DiscordToken   string
	DiscordAppID   string
	DiscordGuildID string
	APIURL         string `validate:"omitempty,url"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// .env is optional; real env vars take precedence
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:            strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:           strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:              getEnv(EnvLogDir, DefaultLogDir),
		Environment:         getEnv(EnvEnvironment, DefaultEnvironment),
		Version:             getEnv(EnvVersion, "dev"),
		Storage:             strings.ToLower(getEnv(EnvStorage, StoragePostgres)),
		DBUser:              getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:          getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:              getEnv(EnvDBHost, DefaultDBHost),
		DBPort:              getEnv(EnvDBPort, DefaultDBPort),
		DBName:              getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:          getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		CatalogDir:          getEnv(EnvCatalogDir, ""),
		CatalogCacheTTL:     getEnvAsDuration(EnvCatalogCacheTTL, 5*time.Minute),
		CatalogSyncInterval: getEnvAsDuration(EnvCatalogSyncInterval, 0),
		PathCacheSize:       getEnvAsInt(EnvPathCacheSize, DefaultPathCacheSize),
		PathCacheTTL:        getEnvAsDuration(EnvPathCacheTTL, 10*time.Minute),
		DefaultLanguage:     getEnv(EnvDefaultLanguage, DefaultDefaultLanguage),
		PathMaxDepth:        getEnvAsInt(EnvPathMaxDepth, domain.DefaultPathMaxDepth),
		APIKey:              getEnv(EnvAPIKey, ""),
		TrustedProxies:      getEnvAsList(EnvTrustedProxies),
		DiscordToken:        getEnv(EnvDiscordToken, ""),
		DiscordAppID:        getEnv(EnvDiscordAppID, ""),
		DiscordGuildID:      getEnv(EnvDiscordGuildID, ""),
		APIURL:              getEnv(EnvAPIURL, DefaultAPIURL),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UsesPostgres reports whether the configured storage backend is Postgres
func (c *Config) UsesPostgres() bool {
	return c.Storage == StoragePostgres
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
