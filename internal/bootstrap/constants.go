package bootstrap

// File System Permissions
const (
	DirPermission     = 0755
	LogFilePermission = 0644
)

// Logger Configuration
const (
	// LogFileTimestampFormat is the timestamp format for log filenames
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting material service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Content assembly messages
const (
	LogMsgBuildingRegistry       = "Building material registry"
	LogMsgDiagnosticsReported    = "Material check reported problems"
	ErrMsgFailedLoadItems        = "failed to load item catalog"
	ErrMsgFailedLoadLocale       = "failed to load locale"
	ErrMsgFailedLoadMaterials    = "failed to load material files"
	ErrMsgFailedApplyMaterials   = "failed to apply material definitions"
	ErrMsgStrictDiagnostics      = "material check reported %d problem(s)"
	ErrMsgFailedConnectDatabase  = "failed to connect to database"
	ErrMsgFailedMigrateDatabase  = "failed to migrate database"
)

// Shutdown Messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
)
