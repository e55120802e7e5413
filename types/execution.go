package types

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zero-day-ai/foundation/ids"
)

// RequestPrefix prefixes request ids generated by NewExecutionContext.
const RequestPrefix = "req"

// ExecutionContext is the causal and tracing context threaded through a chain
// of operations. Treat it as immutable: the With* methods return copies.
type ExecutionContext struct {
	// RequestID identifies the request that started the chain.
	RequestID string `json:"request_id" validate:"identifier"`

	// Timestamp is when the context was created, in Unix epoch milliseconds.
	Timestamp int64 `json:"timestamp" validate:"required,gt=0"`

	SessionID     ids.SessionID     `json:"session_id,omitempty" validate:"omitempty,identifier"`
	CorrelationID ids.CorrelationID `json:"correlation_id,omitempty" validate:"omitempty,identifier"`
	UserID        string            `json:"user_id,omitempty" validate:"omitempty,identifier"`
	WorkflowID    ids.WorkflowID    `json:"workflow_id,omitempty" validate:"omitempty,identifier"`

	// Metadata holds caller-defined values as raw JSON. Use WithMetadata and
	// MetadataValue to encode and decode entries.
	Metadata map[string]json.RawMessage `json:"metadata,omitempty"`
}

// NewExecutionContext returns a context stamped with the current time.
// An empty requestID is replaced by a generated "req_" id.
func NewExecutionContext(requestID string) ExecutionContext {
	if requestID == "" {
		requestID = ids.Generate(RequestPrefix)
	}
	return ExecutionContext{
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
	}
}

// WithSession returns a copy bound to session id.
func (ec ExecutionContext) WithSession(id ids.SessionID) ExecutionContext {
	out := ec.clone()
	out.SessionID = id
	return out
}

// WithCorrelation returns a copy with correlation id set.
func (ec ExecutionContext) WithCorrelation(id ids.CorrelationID) ExecutionContext {
	out := ec.clone()
	out.CorrelationID = id
	return out
}

// WithUser returns a copy attributed to user id.
func (ec ExecutionContext) WithUser(id string) ExecutionContext {
	out := ec.clone()
	out.UserID = id
	return out
}

// WithWorkflow returns a copy bound to workflow id.
func (ec ExecutionContext) WithWorkflow(id ids.WorkflowID) ExecutionContext {
	out := ec.clone()
	out.WorkflowID = id
	return out
}

// WithTimestamp returns a copy stamped with t.
func (ec ExecutionContext) WithTimestamp(t time.Time) ExecutionContext {
	out := ec.clone()
	out.Timestamp = t.UnixMilli()
	return out
}

// WithMetadata returns a copy with key set to the JSON encoding of value.
func (ec ExecutionContext) WithMetadata(key string, value any) (ExecutionContext, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return ec, fmt.Errorf("encode metadata %q: %w", key, err)
	}
	out := ec.clone()
	if out.Metadata == nil {
		out.Metadata = make(map[string]json.RawMessage)
	}
	out.Metadata[key] = raw
	return out, nil
}

// MetadataValue decodes the entry for key into dst. It reports false when the
// key is absent.
func (ec ExecutionContext) MetadataValue(key string, dst any) (bool, error) {
	raw, ok := ec.Metadata[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("decode metadata %q: %w", key, err)
	}
	return true, nil
}

// WithSpanContext returns a copy whose correlation id is the span's trace id,
// unless a correlation id is already set or sc carries no trace id.
func (ec ExecutionContext) WithSpanContext(sc trace.SpanContext) ExecutionContext {
	if ec.CorrelationID != "" || !sc.HasTraceID() {
		return ec
	}
	return ec.WithCorrelation(ids.AsCorrelationID(sc.TraceID().String()))
}

// Time returns Timestamp as a time.Time.
func (ec ExecutionContext) Time() time.Time {
	return time.UnixMilli(ec.Timestamp)
}

// Validate checks the context against ExecutionContextSchema.
func (ec ExecutionContext) Validate() error {
	return ExecutionContextSchema.Validate(ec).Err()
}

// Attributes returns the identifiers as OpenTelemetry span attributes.
// Empty optional identifiers are omitted.
func (ec ExecutionContext) Attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("exec.request_id", ec.RequestID),
		attribute.Int64("exec.timestamp", ec.Timestamp),
	}
	optional := []struct {
		key, value string
	}{
		{"exec.session_id", ec.SessionID.String()},
		{"exec.correlation_id", ec.CorrelationID.String()},
		{"exec.user_id", ec.UserID},
		{"exec.workflow_id", ec.WorkflowID.String()},
	}
	for _, o := range optional {
		if o.value != "" {
			attrs = append(attrs, attribute.String(o.key, o.value))
		}
	}
	return attrs
}

// LogValue implements slog.LogValuer. Metadata is not logged.
func (ec ExecutionContext) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("request_id", ec.RequestID),
		slog.Int64("timestamp", ec.Timestamp),
	}
	if ec.SessionID != "" {
		attrs = append(attrs, slog.String("session_id", ec.SessionID.String()))
	}
	if ec.CorrelationID != "" {
		attrs = append(attrs, slog.String("correlation_id", ec.CorrelationID.String()))
	}
	if ec.UserID != "" {
		attrs = append(attrs, slog.String("user_id", ec.UserID))
	}
	if ec.WorkflowID != "" {
		attrs = append(attrs, slog.String("workflow_id", ec.WorkflowID.String()))
	}
	return slog.GroupValue(attrs...)
}

func (ec ExecutionContext) clone() ExecutionContext {
	out := ec
	out.Metadata = maps.Clone(ec.Metadata)
	return out
}
