package material

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/osse101/Materials_Go/internal/logger"
	"github.com/osse101/Materials_Go/internal/metrics"
)

// ErrNoBuilder is returned by Reload on a store created without a build function
var ErrNoBuilder = errors.New("material store has no builder")

// BuildFunc produces a fully loaded and checked registry
type BuildFunc func(ctx context.Context) (*Registry, error)

// Store shares one Registry between concurrent readers.
// Reload builds a replacement off to the side and swaps it in only when the build succeeds.
type Store struct {
	current  atomic.Pointer[Registry]
	build    BuildFunc
	reloadMu sync.Mutex
}

// NewStore creates a store serving reg. A nil reg serves an empty registry.
func NewStore(reg *Registry, build BuildFunc) *Store {
	if reg == nil {
		reg = NewRegistry()
	}
	s := &Store{build: build}
	s.Swap(reg)
	return s
}

// Registry returns the registry currently being served. Callers must not mutate it.
func (s *Store) Registry() *Registry {
	return s.current.Load()
}

// Swap replaces the served registry and returns the previous one.
// The materials gauge always follows the registry being served.
func (s *Store) Swap(reg *Registry) *Registry {
	old := s.current.Swap(reg)
	metrics.MaterialsLoaded.Set(float64(reg.Len()))
	return old
}

// Reload rebuilds the registry and swaps it in. On failure the current registry keeps serving.
func (s *Store) Reload(ctx context.Context) (*Registry, error) {
	if s.build == nil {
		return nil, ErrNoBuilder
	}

	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	log := logger.FromContext(ctx)

	reg, err := s.build(ctx)
	metrics.RecordReload(err)
	if err != nil {
		log.Warn(LogMsgReloadFailed, "error", err)
		return nil, err
	}

	s.Swap(reg)
	log.Info(LogMsgRegistrySwapped, "materials", reg.Len())
	return reg, nil
}
