package types

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/zero-day-ai/foundation/ids"
)

// EventType classifies a ResourceEvent.
type EventType string

const (
	EventCreated      EventType = "created"
	EventUpdated      EventType = "updated"
	EventPersisted    EventType = "persisted"
	EventExpired      EventType = "expired"
	EventDeleted      EventType = "deleted"
	EventStateChanged EventType = "state_changed"
)

// IsValid returns true if t is a known event type.
func (t EventType) IsValid() bool {
	switch t {
	case EventCreated, EventUpdated, EventPersisted, EventExpired, EventDeleted, EventStateChanged:
		return true
	default:
		return false
	}
}

// String returns the string representation of the event type.
func (t EventType) String() string {
	return string(t)
}

// ResourceEvent describes a change to a resource. It is purely informational.
type ResourceEvent struct {
	Type       EventType        `json:"type" validate:"eventtype"`
	ResourceID ids.ResourceID   `json:"resource_id" validate:"identifier"`
	Timestamp  int64            `json:"timestamp" validate:"required,gt=0"`
	Context    ExecutionContext `json:"context"`

	// Data is an optional JSON payload whose shape is defined by the emitter.
	Data json.RawMessage `json:"data,omitempty"`

	// From and To are set for EventStateChanged only.
	From *Lifecycle `json:"from,omitempty" validate:"omitempty,lifecycle"`
	To   *Lifecycle `json:"to,omitempty" validate:"omitempty,lifecycle"`
}

// NewResourceEvent returns an event of type t for resource id, stamped now.
// data, when non-nil, is stored as its JSON encoding.
func NewResourceEvent(t EventType, id ids.ResourceID, ec ExecutionContext, data any) (ResourceEvent, error) {
	ev := ResourceEvent{
		Type:       t,
		ResourceID: id,
		Timestamp:  time.Now().UnixMilli(),
		Context:    ec,
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return ResourceEvent{}, fmt.Errorf("encode %s event data: %w", t, err)
		}
		ev.Data = raw
	}
	return ev, nil
}

// NewStateChangedEvent records a lifecycle transition of resource id.
func NewStateChangedEvent(id ids.ResourceID, from, to Lifecycle, ec ExecutionContext) ResourceEvent {
	return ResourceEvent{
		Type:       EventStateChanged,
		ResourceID: id,
		Timestamp:  time.Now().UnixMilli(),
		Context:    ec,
		From:       from.Ptr(),
		To:         to.Ptr(),
	}
}

// IsStateChange reports whether the event records a lifecycle transition.
func (e ResourceEvent) IsStateChange() bool {
	return e.Type == EventStateChanged
}

// DecodeData unmarshals the event payload into dst. It reports false when the
// event carries no payload.
func (e ResourceEvent) DecodeData(dst any) (bool, error) {
	if len(e.Data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(e.Data, dst); err != nil {
		return true, fmt.Errorf("decode %s event data: %w", e.Type, err)
	}
	return true, nil
}

// Validate checks the event against ResourceEventSchema.
func (e ResourceEvent) Validate() error {
	return ResourceEventSchema.Validate(e).Err()
}

// LogValue implements slog.LogValuer.
func (e ResourceEvent) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", e.Type.String()),
		slog.String("resource_id", e.ResourceID.String()),
		slog.Int64("timestamp", e.Timestamp),
	}
	if e.From != nil {
		attrs = append(attrs, slog.String("from", e.From.String()))
	}
	if e.To != nil {
		attrs = append(attrs, slog.String("to", e.To.String()))
	}
	attrs = append(attrs, slog.Any("context", e.Context))
	return slog.GroupValue(attrs...)
}
