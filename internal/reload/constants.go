package reload

// Log messages
const (
	LogMsgReloading      = "Reloading material registry"
	LogMsgReloadRejected = "Reload rejected, previous registry keeps serving"
	LogMsgSyncFailed     = "Material snapshot sync failed"
	LogMsgSyncUnchanged  = "Material snapshots unchanged, sync skipped"
	LogMsgSynced         = "Materials synced to database"
	LogMsgPublishFailed  = "Failed to publish registry event"
	LogMsgContentChanged = "Content files changed"
	LogMsgWatchStarted   = "Watching content files"
)

// Error messages
const (
	ErrMsgFingerprintFailed = "failed to fingerprint content: %w"
	ErrMsgSyncMaterials     = "failed to sync materials to database: %w"
)
