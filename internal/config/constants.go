package config

// Environment variable names
const (
	EnvPort                = "PORT"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFormat           = "LOG_FORMAT"
	EnvLogDir              = "LOG_DIR"
	EnvEnvironment         = "ENVIRONMENT"
	EnvVersion             = "VERSION"
	EnvStorage             = "STORAGE"
	EnvDBUser              = "DB_USER"
	EnvDBPassword          = "DB_PASSWORD"
	EnvDBHost              = "DB_HOST"
	EnvDBPort              = "DB_PORT"
	EnvDBName              = "DB_NAME"
	EnvDBMaxConns          = "DB_MAX_CONNS"
	EnvCatalogDir          = "CATALOG_DIR"
	EnvCatalogCacheTTL     = "CATALOG_CACHE_TTL"
	EnvCatalogSyncInterval = "CATALOG_SYNC_INTERVAL"
	EnvPathCacheSize       = "PATH_CACHE_SIZE"
	EnvPathCacheTTL        = "PATH_CACHE_TTL"
	EnvDefaultLanguage     = "DEFAULT_LANGUAGE"
	EnvPathMaxDepth        = "PATH_MAX_DEPTH"
	EnvAPIKey              = "API_KEY"
	EnvTrustedProxies      = "TRUSTED_PROXIES"
	EnvDiscordToken        = "DISCORD_TOKEN"
	EnvDiscordAppID        = "DISCORD_APP_ID"
	EnvDiscordGuildID      = "DISCORD_GUILD_ID"
	EnvAPIURL              = "API_URL"
)

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultLogDir          = "logs"
	DefaultEnvironment     = "dev"
	DefaultDBUser          = "postgres"
	DefaultDBPassword      = "postgres"
	DefaultDBHost          = "localhost"
	DefaultDBPort          = "5432"
	DefaultDBName          = "raidcompanion"
	DefaultDBMaxConns      = 10
	DefaultDefaultLanguage = "en"
	DefaultPathCacheSize   = 256
	DefaultAPIURL          = "http://localhost:8080"
)

// Placeholder values shipped in .env.example
const (
	examplePasswordValue = "change_this_secure_password"
	exampleAPIKeyValue   = "generate_with_openssl_rand_hex_32"
)
