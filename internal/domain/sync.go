package domain

import "time"

// SyncMetadata tracks the last sync of a content set into the database
type SyncMetadata struct {
	ConfigName   string    `json:"config_name" db:"config_name"`
	LastSyncTime time.Time `json:"last_sync_time" db:"last_sync_time"`
	FileHash     string    `json:"file_hash" db:"file_hash"`
	FileModTime  time.Time `json:"file_mod_time" db:"file_mod_time"`
}

// MaterialSnapshot is the persisted form of a loaded material
type MaterialSnapshot struct {
	ID       string    `json:"ident" db:"material_id"`
	Name     string    `json:"name" db:"material_name"`
	Payload  []byte    `json:"-" db:"payload"`
	SyncedAt time.Time `json:"synced_at" db:"synced_at"`
}
