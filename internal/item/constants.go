package item

// ==================== Configuration ====================

const (
	// ConfigFileName is the name of the items configuration file
	ConfigFileName = "items.json"

	// ItemsSchemaPath is the JSON schema items files are validated against
	ItemsSchemaPath = "configs/schemas/items.schema.json"

	// LoadKind labels item loads in metrics
	LoadKind = "items"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// ==================== Format Strings for Error Construction ====================

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemAtIndexEmpty     = "%w: item at index %d has empty internal_name"
	ErrFmtItemReservedName     = "%w: item at index %d uses reserved internal_name '%s'"
	ErrFmtItemHasEmptyPublic   = "%w: item '%s' has empty public_name"
	ErrFmtItemHasEmptyDisplay  = "%w: item '%s' has empty default_display"
	ErrFmtItemNegativeMaxStack = "%w: item '%s' has negative max_stack"
	ErrFmtItemNegativeValue    = "%w: item '%s' has negative base_value"
	ErrFmtDuplicateName        = "%w: '%s'"
	ErrFmtItemNotFound         = "%w: '%s'"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)
