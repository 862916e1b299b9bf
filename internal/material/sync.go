package material

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/Materials_Go/internal/domain"
	"github.com/osse101/Materials_Go/internal/logger"
	"github.com/osse101/Materials_Go/internal/repository"
)

// SyncResult contains the result of syncing materials to the database
type SyncResult struct {
	Upserted  int
	Deleted   int
	Unchanged bool
}

// Syncer writes the loaded registry into persistent storage
type Syncer struct {
	repo repository.Material
	now  func() time.Time
}

// NewSyncer creates a syncer backed by repo
func NewSyncer(repo repository.Material) *Syncer {
	return &Syncer{repo: repo, now: time.Now}
}

// Sync stores a snapshot of every material in reg and removes snapshots of materials
// that are no longer loaded. It does nothing when the content hash matches the last sync.
func (s *Syncer) Sync(ctx context.Context, reg *Registry) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	snapshots, hash, err := s.snapshot(reg)
	if err != nil {
		return nil, err
	}

	// A missing metadata row means first sync
	if meta, err := s.repo.GetSyncMetadata(ctx, SyncConfigName); err == nil && meta.FileHash == hash {
		log.Info(LogMsgSyncUnchanged, "hash", hash)
		return &SyncResult{Unchanged: true}, nil
	}

	existing, err := s.repo.ListMaterials(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSnapshotsFailed, err)
	}

	if err := s.repo.UpsertMaterials(ctx, snapshots); err != nil {
		return nil, fmt.Errorf(ErrMsgUpsertSnapshotsFailed, err)
	}

	var stale []string
	for _, snap := range existing {
		if !reg.IsValid(snap.ID) {
			stale = append(stale, snap.ID)
		}
	}
	if len(stale) > 0 {
		if err := s.repo.DeleteMaterials(ctx, stale); err != nil {
			return nil, fmt.Errorf(ErrMsgDeleteSnapshotsFailed, err)
		}
	}

	if err := s.repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   SyncConfigName,
		LastSyncTime: s.now(),
		FileHash:     hash,
		FileModTime:  s.now(),
	}); err != nil {
		log.Warn(LogMsgUpdateMetaFailed, "error", err)
	}

	result := &SyncResult{Upserted: len(snapshots), Deleted: len(stale)}
	log.Info(LogMsgSyncCompleted, "upserted", result.Upserted, "deleted", result.Deleted)
	return result, nil
}

// snapshot serializes every material in ident order and hashes the result
func (s *Syncer) snapshot(reg *Registry) ([]domain.MaterialSnapshot, string, error) {
	syncedAt := s.now()
	h := sha256.New()

	all := reg.All()
	snapshots := make([]domain.MaterialSnapshot, 0, len(all))
	for _, m := range all {
		payload, err := json.Marshal(m)
		if err != nil {
			return nil, "", fmt.Errorf(ErrMsgEncodeSnapshotFailed, m.Ident(), err)
		}
		h.Write(payload)
		snapshots = append(snapshots, domain.MaterialSnapshot{
			ID:       m.Ident(),
			Name:     m.Name(),
			Payload:  payload,
			SyncedAt: syncedAt,
		})
	}

	return snapshots, hex.EncodeToString(h.Sum(nil)), nil
}
