package handler

// Client-facing error messages. These never expose internal error details
// except for content errors on admin routes.
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgInvalidRequest      = "Invalid request"
	ErrMsgMaterialNotFound    = "Material not found"
	ErrMsgReloadUnavailable   = "Reload is not configured"
	ErrMsgMissingQueryParam   = "Missing %s query parameter"
	ErrMsgInvalidQueryParam   = "Invalid %s query parameter"
	ErrMsgRegistryNotLoaded   = "material registry not loaded"
	ErrMsgDatabaseUnavailable = "database connection failed"
)

// Success messages
const (
	MsgRegistryReloaded = "Material registry reloaded"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgReloadRequested = "Registry reload requested"
	LogMsgReloadCompleted = "Registry reload completed"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// Operation names used in failure logs
const (
	OpGetMaterial = "Get material"
	OpResist      = "Get resistance"
	OpReload      = "Reload registry"
)
