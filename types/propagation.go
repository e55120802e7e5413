package types

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

type contextKey struct{}

// WithContext returns a copy of ctx carrying ec.
func WithContext(ctx context.Context, ec ExecutionContext) context.Context {
	return context.WithValue(ctx, contextKey{}, ec)
}

// FromContext returns the ExecutionContext stored in ctx, if any.
func FromContext(ctx context.Context) (ExecutionContext, bool) {
	if ctx == nil {
		return ExecutionContext{}, false
	}
	ec, ok := ctx.Value(contextKey{}).(ExecutionContext)
	return ec, ok
}

// ContextOrNew returns the ExecutionContext stored in ctx, or a new one.
// Either way, a missing correlation id is filled from the active span's
// trace id when ctx carries a valid span.
func ContextOrNew(ctx context.Context) ExecutionContext {
	ec, ok := FromContext(ctx)
	if !ok {
		ec = NewExecutionContext("")
	}
	if ctx != nil {
		ec = ec.WithSpanContext(trace.SpanContextFromContext(ctx))
	}
	return ec
}

// Logger returns base annotated with the identifiers of ec under the "exec"
// group key. A nil base uses slog.Default().
func Logger(base *slog.Logger, ec ExecutionContext) *slog.Logger {
	if base == nil {
		base = slog.Default()
	}
	return base.With(slog.Any("exec", ec))
}
