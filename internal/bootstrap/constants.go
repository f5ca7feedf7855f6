package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the permission for created directories
	DirPermission = 0755

	// LogFilePermission is the permission for session log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older session logs kept next to the new one
	LogFileRetentionCount = 9
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting RaidCompanion"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Database
// =============================================================================

const (
	DBMaxIdleTime = 5 * time.Minute
	DBMaxLifetime = 30 * time.Minute

	ErrMsgFailedConnectDB = "failed to connect to database"
	ErrMsgFailedMigrate   = "failed to run migrations"
	LogMsgUsingPostgres   = "Using PostgreSQL storage"
	LogMsgUsingMemory     = "Using in-memory storage; progress is lost on restart"
)

// =============================================================================
// Catalog Sync
// =============================================================================

const (
	LogMsgLoadingCatalog      = "Loading catalog files"
	LogMsgCatalogWarning      = "Catalog validation warning"
	LogMsgCatalogSynced       = "Catalog synced successfully"
	LogMsgCatalogUnchanged    = "Catalog unchanged, sync skipped"
	LogMsgCatalogLoaded       = "Catalog loaded"
	ErrMsgFailedLoadCatalog   = "failed to load catalog files"
	ErrMsgInvalidCatalog      = "invalid catalog"
	ErrMsgFailedSyncCatalog   = "failed to sync catalog to database"
	ErrMsgCatalogSyncRequires = "catalog sync requires postgres storage"
)

// =============================================================================
// Background Jobs
// =============================================================================

const (
	BackgroundWorkers   = 1
	BackgroundQueueSize = 1

	JobNameCatalogSync          = "catalog_sync"
	LogMsgBackgroundJobsStarted = "Background jobs started"
	LogMsgStoppingBackground    = "Stopping background jobs"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
)
