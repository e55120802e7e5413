package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/zero-day-ai/foundation/types"
)

// EventHandler consumes resource events emitted by adapters.
type EventHandler interface {
	HandleEvent(ctx context.Context, ev types.ResourceEvent) error
}

// EventHandlerFunc adapts a function to EventHandler.
type EventHandlerFunc func(ctx context.Context, ev types.ResourceEvent) error

// HandleEvent calls f(ctx, ev).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, ev types.ResourceEvent) error {
	return f(ctx, ev)
}

// Notify delivers ev to every handler in order. A failing handler does not
// stop delivery; all failures are joined into the returned error.
func Notify(ctx context.Context, ev types.ResourceEvent, handlers ...EventHandler) error {
	var errs []error
	for i, h := range handlers {
		if h == nil {
			continue
		}
		if err := h.HandleEvent(ctx, ev); err != nil {
			errs = append(errs, fmt.Errorf("handler %d: %s event for %s: %w", i, ev.Type, ev.ResourceID, err))
		}
	}
	return errors.Join(errs...)
}
