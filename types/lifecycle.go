package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLifecycle is returned when parsing an unknown lifecycle state.
var ErrInvalidLifecycle = errors.New("invalid lifecycle state")

// Lifecycle is the state a tracked resource occupies.
type Lifecycle string

const (
	// LifecycleEphemeral marks a resource that exists only in memory or a
	// short-lived store and has not been persisted.
	LifecycleEphemeral Lifecycle = "ephemeral"

	// LifecyclePersisted marks a resource written to durable storage.
	LifecyclePersisted Lifecycle = "persisted"

	// LifecycleProcessing marks a resource that work is being performed on.
	LifecycleProcessing Lifecycle = "processing"

	// LifecycleCompleted marks a resource whose processing finished successfully.
	LifecycleCompleted Lifecycle = "completed"

	// LifecycleFailed marks a resource whose processing failed.
	LifecycleFailed Lifecycle = "failed"

	// LifecycleExpired marks a resource past its expiry time.
	LifecycleExpired Lifecycle = "expired"

	// LifecycleDeleted marks a resource that has been removed.
	LifecycleDeleted Lifecycle = "deleted"
)

// IsValid returns true if l is one of the defined states.
func (l Lifecycle) IsValid() bool {
	switch l {
	case LifecycleEphemeral, LifecyclePersisted, LifecycleProcessing, LifecycleCompleted,
		LifecycleFailed, LifecycleExpired, LifecycleDeleted:
		return true
	default:
		return false
	}
}

// String returns the string representation of the state.
func (l Lifecycle) String() string {
	return string(l)
}

// Ptr returns a pointer to a copy of l.
func (l Lifecycle) Ptr() *Lifecycle {
	return &l
}

// ParseLifecycle parses s case-insensitively.
func ParseLifecycle(s string) (Lifecycle, error) {
	l := Lifecycle(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLifecycle, s)
	}
	return l, nil
}

// AllLifecycles returns every state in declaration order.
func AllLifecycles() []Lifecycle {
	return []Lifecycle{
		LifecycleEphemeral,
		LifecyclePersisted,
		LifecycleProcessing,
		LifecycleCompleted,
		LifecycleFailed,
		LifecycleExpired,
		LifecycleDeleted,
	}
}
