package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Materials_Go/internal/domain"
	"github.com/osse101/Materials_Go/internal/material"
)

func snapshot(id, name string, at time.Time) domain.MaterialSnapshot {
	return domain.MaterialSnapshot{
		ID:       id,
		Name:     name,
		Payload:  []byte(`{"ident":"` + id + `","name":"` + name + `"}`),
		SyncedAt: at,
	}
}

func TestMaterialRepository_Snapshots(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.UpsertMaterials(ctx, []domain.MaterialSnapshot{
		snapshot("wood", "Wood", at),
		snapshot("steel", "Steel", at),
	}))

	t.Run("list is ordered by ident", func(t *testing.T) {
		rows, err := repo.ListMaterials(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "steel", rows[0].ID)
		assert.Equal(t, "wood", rows[1].ID)
		assert.JSONEq(t, `{"ident":"wood","name":"Wood"}`, string(rows[1].Payload))
		assert.True(t, at.Equal(rows[1].SyncedAt))
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		require.NoError(t, repo.UpsertMaterials(ctx, []domain.MaterialSnapshot{
			snapshot("wood", "Oak", at.Add(time.Hour)),
		}))
		got, err := repo.GetMaterial(ctx, "wood")
		require.NoError(t, err)
		assert.Equal(t, "Oak", got.Name)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := repo.GetMaterial(ctx, "mithril")
		assert.ErrorIs(t, err, domain.ErrMaterialNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteMaterials(ctx, []string{"steel", "missing"}))
		rows, err := repo.ListMaterials(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "wood", rows[0].ID)
	})

	t.Run("empty inputs are no-ops", func(t *testing.T) {
		assert.NoError(t, repo.UpsertMaterials(ctx, nil))
		assert.NoError(t, repo.DeleteMaterials(ctx, nil))
	})
}

func TestMaterialRepository_SyncMetadata(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetSyncMetadata(ctx, material.SyncConfigName)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgSyncMetadataNotFound)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	meta := &domain.SyncMetadata{
		ConfigName:   material.SyncConfigName,
		LastSyncTime: now,
		FileHash:     "abc",
		FileModTime:  now,
	}
	require.NoError(t, repo.UpsertSyncMetadata(ctx, meta))

	meta.FileHash = "def"
	require.NoError(t, repo.UpsertSyncMetadata(ctx, meta))

	got, err := repo.GetSyncMetadata(ctx, material.SyncConfigName)
	require.NoError(t, err)
	assert.Equal(t, "def", got.FileHash)
	assert.True(t, now.Equal(got.LastSyncTime))
}

func TestMaterialRepository_WithSyncer(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	loader := material.NewLoader()
	defs, err := loader.LoadDir(ctx, "../../../configs/materials")
	require.NoError(t, err)
	reg := material.NewRegistry()
	require.NoError(t, reg.LoadDefs(defs))

	syncer := material.NewSyncer(repo)
	result, err := syncer.Sync(ctx, reg)
	require.NoError(t, err)
	assert.Equal(t, reg.Len(), result.Upserted)

	again, err := syncer.Sync(ctx, reg)
	require.NoError(t, err)
	assert.True(t, again.Unchanged)

	rows, err := repo.ListMaterials(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, reg.Len())
}
