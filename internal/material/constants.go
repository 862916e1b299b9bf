package material

// ==================== Content Identity ====================

const (
	// TypeName is the content type handled by the registry
	TypeName = "material"

	// IDField is the member carrying a material's identifier
	IDField = "ident"

	// SchemaPath is the JSON schema material files are validated against
	SchemaPath = "configs/schemas/materials.schema.json"

	// SyncConfigName keys material snapshots in sync metadata
	SyncConfigName = "materials"

	// LoadKind labels material loads in metrics
	LoadKind = "materials"
)

// Supported content file extensions
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// ==================== Defaults ====================

// Untranslated defaults of a material that has not been loaded
const (
	DefaultDmgVerb = "damages"
)

// DefaultDmgAdj holds the untranslated damage adjectives of an unloaded material
var DefaultDmgAdj = [4]string{
	"lightly damaged",
	"damaged",
	"very damaged",
	"thoroughly damaged",
}

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadFileFailed    = "failed to read material file %s: %w"
	ErrMsgParseFileFailed   = "failed to parse material file %s: %w"
	ErrMsgSchemaFailed      = "schema validation failed for %s: %w"
	ErrMsgReadDirFailed     = "failed to read material directory %s: %w"
	ErrMsgLoadFileFailed    = "failed to load material file %s: %w"
	ErrMsgDecodeDefFailed   = "%w: %v"
	ErrMsgDefinitionFailed  = "material '%s': %w"
	ErrFmtMissingFields     = "%w: %s"
	ErrFmtInvalidField      = "%w: field %s failed %s"
	ErrFmtDmgAdjCount       = "%w: got %d"
	ErrFmtBurnLevelCount    = "%w: got %d, max %d"
	ErrFmtUnknownCopyFrom   = "%w: '%s'"
	ErrFmtWrongRecordType   = "%w: '%s'"
	ErrFmtVitaminPairFormat = "vitamin entry must be [id, amount]: %w"
	ErrFmtUnsupportedFormat = "%w: %s"
	ErrFmtEntryDecodeFailed = "entry %d: %w"
)

// Database operation error messages
const (
	ErrMsgListSnapshotsFailed   = "failed to list material snapshots: %w"
	ErrMsgUpsertSnapshotsFailed = "failed to upsert material snapshots: %w"
	ErrMsgDeleteSnapshotsFailed = "failed to delete stale material snapshots: %w"
	ErrMsgEncodeSnapshotFailed  = "failed to encode material '%s': %w"
)

// Check diagnostics. Keep the wording stable: content authors grep for it.
const (
	DiagFmtNoName           = "material %s has no name."
	DiagFmtInvalidSalvage   = `invalid "salvaged_into" %s for %s.`
	DiagFmtInvalidRepair    = `invalid "repaired_with" %s for %s.`
	DiagFmtSuggestionSuffix = ` (did you mean "%s"?)`
)

// ==================== Log Messages ====================

const (
	LogMsgMaterialLoaded   = "Material loaded"
	LogMsgMaterialReplaced = "Material definition replaced an existing one"
	LogMsgFilesParsed      = "Material files parsed"
	LogMsgCheckCompleted   = "Material check completed"
	LogMsgRegistryReset    = "Material registry reset"
	LogMsgSyncUnchanged    = "Material content unchanged, skipping sync"
	LogMsgSyncCompleted    = "Material sync completed"
	LogMsgRegistryBuilt    = "Material registry built"
	LogMsgRegistrySwapped  = "Material registry swapped"
	LogMsgUpdateMetaFailed = "Failed to update material sync metadata"
	LogMsgSkippedFile      = "Skipping non-content file"
	LogMsgReloadFailed     = "Material reload failed, keeping current registry"
)
