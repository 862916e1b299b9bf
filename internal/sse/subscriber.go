package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/Materials_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers handlers for the registry lifecycle events
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.RegistryReloaded, s.handleReloaded)
	s.bus.Subscribe(event.RegistryReloadFailed, s.handleReloadFailed)
	s.bus.Subscribe(event.MaterialsSynced, s.handleSynced)

	slog.Info(LogMsgSubscriberReady, "types", []string{
		string(event.RegistryReloaded),
		string(event.RegistryReloadFailed),
		string(event.MaterialsSynced),
	})
}

func (s *Subscriber) handleReloaded(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.RegistryReloadedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	s.broadcast(EventTypeRegistryReload, ReloadPayload{
		Source:    sourceOf(evt),
		Materials: payload.Materials,
		State:     payload.State,
	})
	return nil
}

func (s *Subscriber) handleReloadFailed(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.RegistryReloadFailedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	s.broadcast(EventTypeReloadFailed, ReloadPayload{
		Source: sourceOf(evt),
		Error:  payload.Error,
	})
	return nil
}

func (s *Subscriber) handleSynced(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.MaterialsSyncedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	s.broadcast(EventTypeMaterialsSynced, SyncPayload{
		Source:    sourceOf(evt),
		Upserted:  payload.Upserted,
		Deleted:   payload.Deleted,
		Unchanged: payload.Unchanged,
	})
	return nil
}

func (s *Subscriber) broadcast(eventType string, payload interface{}) {
	if s.hub.Broadcast(eventType, payload) {
		slog.Debug(LogMsgEventBroadcast, "event_type", eventType, "clients", s.hub.ClientCount())
	}
}

func sourceOf(evt event.Event) string {
	src, _ := evt.GetMetadataValue(event.MetadataKeySource).(string)
	return src
}
