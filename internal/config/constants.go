package config

import "time"

const (
	// Configuration file paths
	ConfigPathMaterialsDir = "configs/materials"
	ConfigPathItems        = "configs/items/items.json"
)

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvLogDir            = "LOG_DIR"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvEnvironment       = "ENVIRONMENT"
	EnvAPIKey            = "API_KEY"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvMaterialsDir      = "MATERIALS_DIR"
	EnvItemsPath         = "ITEMS_PATH"
	EnvLocalePath        = "LOCALE_PATH"
	EnvSyncToDB          = "SYNC_TO_DB"
	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
	EnvShutdownTimeout   = "SHUTDOWN_TIMEOUT"
	EnvWatchInterval     = "CONTENT_WATCH_INTERVAL"
	EnvWorkerCount       = "WORKER_COUNT"
	EnvSchemaVersion     = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "materials"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "materials"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultShutdownTimeout = 10 * time.Second
	DefaultWorkerCount     = 1

	// MinWatchInterval bounds how often content files are stat-ed
	MinWatchInterval = time.Second
)
