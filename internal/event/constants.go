package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeySource = "source"
)

// Reload sources
const (
	SourceAdmin  = "admin"
	SourceSignal = "signal"
	SourceWatch  = "watch"
)

// Log message constants
const (
	LogMsgPublishFailed = "Event publish failed"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
