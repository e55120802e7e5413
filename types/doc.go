// Package types defines the shared resource and execution context types
// passed between components: lifecycle states, resource metadata, execution
// contexts and resource events.
//
// # Lifecycle
//
// Lifecycle is the closed vocabulary of states a tracked resource can be in.
// This package does not enforce transitions; callers decide which moves are
// legal and record them with state-changed events:
//
//	ev := types.NewStateChangedEvent(id, types.LifecycleProcessing, types.LifecycleCompleted, ec)
//
// # Resource Metadata
//
//	meta := types.NewResourceMetadata(time.Now(), "svc-ingest")
//	meta = meta.Touch(time.Now(), "svc-worker") // version 2
//	if err := meta.Validate(); err != nil {
//		return err
//	}
//
// # Execution Context
//
// ExecutionContext carries request, session and correlation identifiers
// through a call chain. It is a value: the With* methods return modified
// copies and never change the receiver.
//
//	ec := types.NewExecutionContext("req-42").
//		WithSession(sessionID).
//		WithCorrelation(ids.NewCorrelationID())
//	ctx = types.WithContext(ctx, ec)
//
// When a context holds an active OpenTelemetry span, ContextOrNew derives an
// execution context whose correlation id is the span's trace id.
//
// # Validation
//
// Every type has a schema (ExecutionContextSchema, ResourceMetadataSchema,
// ResourceEventSchema) that validates untyped input, and a matching
// IsValid* predicate:
//
//	if !types.IsValidExecutionContext(payload) {
//		return errBadContext
//	}
package types
