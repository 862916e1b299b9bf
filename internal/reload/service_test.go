package reload

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Materials_Go/internal/event"
	"github.com/osse101/Materials_Go/internal/material"
)

type MockSyncer struct {
	mock.Mock
}

func (m *MockSyncer) Sync(ctx context.Context, reg *material.Registry) (*material.SyncResult, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*material.SyncResult), args.Error(1)
}

// recordBus captures every published event
func recordBus() (*event.MemoryBus, *[]event.Event) {
	bus := event.NewMemoryBus()
	var got []event.Event
	record := func(_ context.Context, e event.Event) error {
		got = append(got, e)
		return nil
	}
	bus.Subscribe(event.RegistryReloaded, record)
	bus.Subscribe(event.RegistryReloadFailed, record)
	bus.Subscribe(event.MaterialsSynced, record)
	return bus, &got
}

func storeBuilding(reg *material.Registry, err error) *material.Store {
	return material.NewStore(nil, func(context.Context) (*material.Registry, error) {
		return reg, err
	})
}

func TestService_ReloadFrom(t *testing.T) {
	ctx := context.Background()

	t.Run("success publishes reload and sync", func(t *testing.T) {
		next := material.NewRegistry()
		bus, got := recordBus()
		syncer := &MockSyncer{}
		syncer.On("Sync", mock.Anything, next).Return(&material.SyncResult{Upserted: 3, Deleted: 1}, nil)

		store := storeBuilding(next, nil)
		reg, err := NewService(store, bus, syncer).ReloadFrom(ctx, event.SourceSignal)
		require.NoError(t, err)
		assert.Same(t, next, reg)
		assert.Same(t, next, store.Registry())

		require.Len(t, *got, 2)
		assert.Equal(t, event.RegistryReloaded, (*got)[0].Type)
		assert.Equal(t, event.SourceSignal, (*got)[0].GetMetadataValue(event.MetadataKeySource))
		assert.Equal(t, event.MaterialsSynced, (*got)[1].Type)
		payload := (*got)[1].Payload.(event.MaterialsSyncedPayloadV1)
		assert.Equal(t, 3, payload.Upserted)
		assert.Equal(t, 1, payload.Deleted)
		syncer.AssertExpectations(t)
	})

	t.Run("build failure keeps serving and skips sync", func(t *testing.T) {
		bus, got := recordBus()
		syncer := &MockSyncer{}
		store := storeBuilding(nil, errors.New("unknown copy-from"))
		before := store.Registry()

		_, err := NewService(store, bus, syncer).ReloadFrom(ctx, event.SourceWatch)
		require.Error(t, err)
		assert.Same(t, before, store.Registry())

		require.Len(t, *got, 1)
		assert.Equal(t, event.RegistryReloadFailed, (*got)[0].Type)
		assert.Equal(t, "unknown copy-from", (*got)[0].Payload.(event.RegistryReloadFailedPayloadV1).Error)
		syncer.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
	})

	t.Run("sync failure does not fail the reload", func(t *testing.T) {
		next := material.NewRegistry()
		bus, got := recordBus()
		syncer := &MockSyncer{}
		syncer.On("Sync", mock.Anything, next).Return(nil, errors.New("connection refused"))

		reg, err := NewService(storeBuilding(next, nil), bus, syncer).Reload(ctx)
		require.NoError(t, err)
		assert.Same(t, next, reg)
		require.Len(t, *got, 1)
		assert.Equal(t, event.RegistryReloaded, (*got)[0].Type)
		assert.Equal(t, event.SourceAdmin, (*got)[0].GetMetadataValue(event.MetadataKeySource))
	})

	t.Run("no bus and no syncer", func(t *testing.T) {
		next := material.NewRegistry()
		reg, err := NewService(storeBuilding(next, nil), nil, nil).Reload(ctx)
		require.NoError(t, err)
		assert.Same(t, next, reg)
	})

	t.Run("publish errors are swallowed", func(t *testing.T) {
		bus := event.NewMemoryBus()
		bus.Subscribe(event.RegistryReloaded, func(context.Context, event.Event) error {
			return errors.New("subscriber down")
		})

		_, err := NewService(storeBuilding(material.NewRegistry(), nil), bus, nil).Reload(ctx)
		assert.NoError(t, err)
	})
}

func TestService_Sync(t *testing.T) {
	ctx := context.Background()
	reg := material.NewRegistry()

	t.Run("unchanged", func(t *testing.T) {
		bus, got := recordBus()
		syncer := &MockSyncer{}
		syncer.On("Sync", mock.Anything, reg).Return(&material.SyncResult{Unchanged: true}, nil)

		result, err := NewService(material.NewStore(reg, nil), bus, syncer).Sync(ctx, reg, "")
		require.NoError(t, err)
		assert.True(t, result.Unchanged)
		require.Len(t, *got, 1)
		assert.True(t, (*got)[0].Payload.(event.MaterialsSyncedPayloadV1).Unchanged)
	})

	t.Run("error is wrapped", func(t *testing.T) {
		syncer := &MockSyncer{}
		syncer.On("Sync", mock.Anything, reg).Return(nil, assert.AnError)

		_, err := NewService(material.NewStore(reg, nil), nil, syncer).Sync(ctx, reg, "")
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to sync materials to database")
	})

	t.Run("without syncer", func(t *testing.T) {
		result, err := NewService(material.NewStore(reg, nil), nil, nil).Sync(ctx, reg, "")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}
