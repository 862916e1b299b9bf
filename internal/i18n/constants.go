package i18n

// DefaultCacheSize bounds the translated-string cache
const DefaultCacheSize = 1024

// Error messages
const (
	ErrMsgReadLocaleFileFailed  = "failed to read locale file: %w"
	ErrMsgParseLocaleFileFailed = "failed to parse locale file: %w"
	ErrMsgInvalidLocaleTag      = "invalid locale tag '%s': %w"
	ErrMsgAddMessageFailed      = "failed to add message '%s': %w"
	ErrMsgCreateCacheFailed     = "failed to create translation cache: %w"
)

// Log messages
const (
	LogMsgLocaleLoaded = "Locale catalog loaded"
)
