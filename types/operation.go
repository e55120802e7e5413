package types

import (
	"context"

	"github.com/zero-day-ai/foundation/result"
)

// CancellableOperation pairs a pending computation with a way to cancel it.
// It implements no scheduling, retry or ordering policy of its own.
type CancellableOperation[T any] struct {
	done   chan struct{}
	res    result.Result[T]
	cancel context.CancelFunc
}

// StartOperation runs fn in a new goroutine with a cancellable child of ctx.
// A panic in fn is captured as a failure.
func StartOperation[T any](ctx context.Context, fn func(context.Context) (T, error)) *CancellableOperation[T] {
	ctx, cancel := context.WithCancel(ctx)
	op := &CancellableOperation[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}
	go func() {
		defer close(op.done)
		defer cancel()
		op.res = result.Try(func() (T, error) { return fn(ctx) })
	}()
	return op
}

// Cancel signals the computation to stop. It is safe to call more than once
// and after completion.
func (op *CancellableOperation[T]) Cancel() {
	op.cancel()
}

// Done is closed once the computation has returned.
func (op *CancellableOperation[T]) Done() <-chan struct{} {
	return op.done
}

// Wait blocks until the computation returns or ctx ends. When ctx ends first
// the operation keeps running and Wait returns a failure with ctx's error.
func (op *CancellableOperation[T]) Wait(ctx context.Context) result.Result[T] {
	select {
	case <-op.done:
		return op.res
	case <-ctx.Done():
		return result.Err[T](ctx.Err())
	}
}
