// Package reload rebuilds the served registry and announces the outcome on the event bus.
package reload

import (
	"context"
	"fmt"

	"github.com/osse101/Materials_Go/internal/event"
	"github.com/osse101/Materials_Go/internal/logger"
	"github.com/osse101/Materials_Go/internal/material"
)

// Syncer persists a registry snapshot
type Syncer interface {
	Sync(ctx context.Context, reg *material.Registry) (*material.SyncResult, error)
}

// Service reloads a material.Store, syncs the result when a Syncer is attached,
// and publishes registry lifecycle events
type Service struct {
	store  *material.Store
	bus    event.Bus
	syncer Syncer
}

// NewService creates a reload service. bus and syncer may be nil.
func NewService(store *material.Store, bus event.Bus, syncer Syncer) *Service {
	return &Service{store: store, bus: bus, syncer: syncer}
}

// Reload rebuilds the registry on behalf of an operator request
func (s *Service) Reload(ctx context.Context) (*material.Registry, error) {
	return s.ReloadFrom(ctx, event.SourceAdmin)
}

// ReloadFrom rebuilds the registry and swaps it in. source names the trigger.
// A sync failure after a successful swap is logged and does not fail the reload.
func (s *Service) ReloadFrom(ctx context.Context, source string) (*material.Registry, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgReloading, "source", source)

	reg, err := s.store.Reload(ctx)
	if err != nil {
		log.Warn(LogMsgReloadRejected, "source", source, "error", err)
		s.publish(ctx, event.NewRegistryReloadFailedEvent(err, source))
		return nil, err
	}
	s.publish(ctx, event.NewRegistryReloadedEvent(reg.Len(), reg.State().String(), source))

	if _, err := s.Sync(ctx, reg, source); err != nil {
		log.Error(LogMsgSyncFailed, "source", source, "error", err)
	}
	return reg, nil
}

// Sync writes reg through the attached Syncer. It is a no-op without one.
func (s *Service) Sync(ctx context.Context, reg *material.Registry, source string) (*material.SyncResult, error) {
	if s.syncer == nil {
		return nil, nil
	}
	log := logger.FromContext(ctx)

	result, err := s.syncer.Sync(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSyncMaterials, err)
	}

	if result.Unchanged {
		log.Info(LogMsgSyncUnchanged)
	} else {
		log.Info(LogMsgSynced, "upserted", result.Upserted, "deleted", result.Deleted)
	}
	s.publish(ctx, event.NewMaterialsSyncedEvent(result.Upserted, result.Deleted, result.Unchanged, source))
	return result, nil
}

func (s *Service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", e.Type, "error", err)
	}
}
