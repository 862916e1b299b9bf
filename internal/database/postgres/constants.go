package postgres

// Queries - Material snapshots
const (
	queryListMaterials = `
		SELECT material_id, material_name, payload, synced_at
		FROM materials
		ORDER BY material_id`

	queryGetMaterial = `
		SELECT material_id, material_name, payload, synced_at
		FROM materials
		WHERE material_id = $1`

	queryUpsertMaterial = `
		INSERT INTO materials (material_id, material_name, payload, synced_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (material_id) DO UPDATE SET
			material_name = EXCLUDED.material_name,
			payload = EXCLUDED.payload,
			synced_at = EXCLUDED.synced_at`

	queryDeleteMaterials = `DELETE FROM materials WHERE material_id = ANY($1)`

	queryTruncateSnapshots = `TRUNCATE materials, sync_metadata`
)

// Queries - Sync metadata
const (
	queryGetSyncMetadata = `
		SELECT config_name, last_sync_time, file_hash, file_mod_time
		FROM sync_metadata
		WHERE config_name = $1`

	queryUpsertSyncMetadata = `
		INSERT INTO sync_metadata (config_name, last_sync_time, file_hash, file_mod_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE SET
			last_sync_time = EXCLUDED.last_sync_time,
			file_hash = EXCLUDED.file_hash,
			file_mod_time = EXCLUDED.file_mod_time`
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToCloseBatch        = "failed to close batch"
	LogMsgFailedToRollback          = "Failed to rollback transaction"
)

// Error Messages - Material Operations
const (
	ErrMsgFailedToListMaterials   = "failed to list materials"
	ErrMsgFailedToScanMaterial    = "failed to scan material row"
	ErrMsgFailedToGetMaterial     = "failed to get material"
	ErrMsgFailedToUpsertMaterial  = "failed to upsert material"
	ErrMsgFailedToDeleteMaterials = "failed to delete materials"
	ErrMsgFailedToTruncate        = "failed to truncate snapshot tables"
)

// Error Messages - Sync Metadata Operations
const (
	ErrMsgFailedToGetSyncMetadata    = "failed to get sync metadata"
	ErrMsgFailedToUpsertSyncMetadata = "failed to upsert sync metadata"
	ErrMsgSyncMetadataNotFound       = "sync metadata not found"
)
