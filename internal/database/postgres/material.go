package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Materials_Go/internal/domain"
	"github.com/osse101/Materials_Go/internal/repository"
)

// MaterialRepository implements repository.Material for PostgreSQL
type MaterialRepository struct {
	pool *pgxpool.Pool
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(pool *pgxpool.Pool) repository.Material {
	return &MaterialRepository{pool: pool}
}

// ListMaterials returns every stored snapshot ordered by ident
func (r *MaterialRepository) ListMaterials(ctx context.Context) ([]domain.MaterialSnapshot, error) {
	rows, err := r.pool.Query(ctx, queryListMaterials)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMaterials, err)
	}

	snapshots, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.MaterialSnapshot])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanMaterial, err)
	}
	return snapshots, nil
}

// GetMaterial returns a single snapshot by ident
func (r *MaterialRepository) GetMaterial(ctx context.Context, id string) (*domain.MaterialSnapshot, error) {
	rows, err := r.pool.Query(ctx, queryGetMaterial, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMaterial, err)
	}

	snap, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.MaterialSnapshot])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMaterialNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMaterial, err)
	}
	return &snap, nil
}

// UpsertMaterials writes all snapshots in a single transaction
func (r *MaterialRepository) UpsertMaterials(ctx context.Context, snapshots []domain.MaterialSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, s := range snapshots {
		batch.Queue(queryUpsertMaterial, s.ID, s.Name, s.Payload, s.SyncedAt)
	}

	br := tx.SendBatch(ctx, batch)
	for _, s := range snapshots {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck
			return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpsertMaterial, s.ID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCloseBatch, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// DeleteMaterials removes the snapshots with the given idents
func (r *MaterialRepository) DeleteMaterials(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.pool.Exec(ctx, queryDeleteMaterials, ids); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteMaterials, err)
	}
	return nil
}

// GetSyncMetadata retrieves sync metadata for a content set
func (r *MaterialRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var meta domain.SyncMetadata
	err := r.pool.QueryRow(ctx, queryGetSyncMetadata, configName).
		Scan(&meta.ConfigName, &meta.LastSyncTime, &meta.FileHash, &meta.FileModTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New(ErrMsgSyncMetadataNotFound)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSyncMetadata, err)
	}
	return &meta, nil
}

// UpsertSyncMetadata inserts or updates sync metadata for a content set
func (r *MaterialRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	_, err := r.pool.Exec(ctx, queryUpsertSyncMetadata,
		metadata.ConfigName, metadata.LastSyncTime, metadata.FileHash, metadata.FileModTime)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertSyncMetadata, err)
	}
	return nil
}

// TruncateSnapshots empties the snapshot tables without dropping them
func TruncateSnapshots(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, queryTruncateSnapshots); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToTruncate, err)
	}
	return nil
}
