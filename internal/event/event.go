package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string         `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type           `json:"type"`
	Payload  interface{}    `json:"payload"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Registry lifecycle event types
const (
	RegistryReloaded     Type = "registry.reloaded"
	RegistryReloadFailed Type = "registry.reload_failed"
	MaterialsSynced      Type = "materials.synced"
)

// RegistryReloadedPayloadV1 is the typed payload for a successful reload
type RegistryReloadedPayloadV1 struct {
	Materials int    `json:"materials"`
	State     string `json:"state"`
	Timestamp int64  `json:"timestamp"`
}

// RegistryReloadFailedPayloadV1 is the typed payload for a rejected reload.
// The previous registry keeps serving.
type RegistryReloadFailedPayloadV1 struct {
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
}

// MaterialsSyncedPayloadV1 is the typed payload for a snapshot sync
type MaterialsSyncedPayloadV1 struct {
	Upserted  int   `json:"upserted"`
	Deleted   int   `json:"deleted"`
	Unchanged bool  `json:"unchanged"`
	Timestamp int64 `json:"timestamp"`
}

// NewRegistryReloadedEvent creates a reload success event. source names the trigger
// (admin, signal, watch) and is carried in metadata.
func NewRegistryReloadedEvent(materials int, state, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RegistryReloaded,
		Payload: RegistryReloadedPayloadV1{
			Materials: materials,
			State:     state,
			Timestamp: time.Now().Unix(),
		},
		Metadata: sourceMetadata(source),
	}
}

// NewRegistryReloadFailedEvent creates a reload failure event
func NewRegistryReloadFailedEvent(err error, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RegistryReloadFailed,
		Payload: RegistryReloadFailedPayloadV1{
			Error:     err.Error(),
			Timestamp: time.Now().Unix(),
		},
		Metadata: sourceMetadata(source),
	}
}

// NewMaterialsSyncedEvent creates a snapshot sync event
func NewMaterialsSyncedEvent(upserted, deleted int, unchanged bool, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MaterialsSynced,
		Payload: MaterialsSyncedPayloadV1{
			Upserted:  upserted,
			Deleted:   deleted,
			Unchanged: unchanged,
			Timestamp: time.Now().Unix(),
		},
		Metadata: sourceMetadata(source),
	}
}

func sourceMetadata(source string) map[string]any {
	if source == "" {
		return nil
	}
	return map[string]any{MetadataKeySource: source}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event type synchronously.
// A failing handler does not stop the rest; their errors are joined into one.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
