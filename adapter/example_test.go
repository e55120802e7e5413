package adapter_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/zero-day-ai/foundation/adapter"
	"github.com/zero-day-ai/foundation/types"
)

func ExampleEventHandlerFunc() {
	audit := adapter.EventHandlerFunc(func(_ context.Context, ev types.ResourceEvent) error {
		fmt.Println(ev.Type, ev.ResourceID)
		return nil
	})

	ev, _ := types.NewResourceEvent(types.EventDeleted, "res_42", types.NewExecutionContext("req-1"), nil)
	if err := adapter.Notify(context.Background(), ev, audit); err != nil {
		fmt.Println(err)
	}
	// Output: deleted res_42
}

func ExampleIsNotFound() {
	err := fmt.Errorf("load order: %w", adapter.ErrNotFound)
	fmt.Println(adapter.IsNotFound(err), errors.Is(err, adapter.ErrNotFound))
	// Output: true true
}
