package repository

import (
	"context"

	"github.com/osse101/Materials_Go/internal/domain"
)

// Material defines persistence for loaded material snapshots
type Material interface {
	// Snapshot operations
	ListMaterials(ctx context.Context) ([]domain.MaterialSnapshot, error)
	GetMaterial(ctx context.Context, id string) (*domain.MaterialSnapshot, error)
	UpsertMaterials(ctx context.Context, snapshots []domain.MaterialSnapshot) error
	DeleteMaterials(ctx context.Context, ids []string) error

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
