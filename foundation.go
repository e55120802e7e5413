package foundation

import (
	"context"

	"github.com/zero-day-ai/foundation/adapter"
	"github.com/zero-day-ai/foundation/fingerprint"
	"github.com/zero-day-ai/foundation/ids"
	"github.com/zero-day-ai/foundation/result"
	"github.com/zero-day-ai/foundation/schema"
	"github.com/zero-day-ai/foundation/types"
)

// Identifiers.
type (
	ResourceID    = ids.ResourceID
	EphemeralID   = ids.EphemeralID
	SessionID     = ids.SessionID
	CorrelationID = ids.CorrelationID
	WorkflowID    = ids.WorkflowID
)

// Results, schemas and shared types.
type (
	Result[T any]               = result.Result[T]
	Schema[T any]               = schema.Schema[T]
	Issue                       = schema.Issue
	ValidationError             = schema.Error
	Lifecycle                   = types.Lifecycle
	ResourceMetadata            = types.ResourceMetadata
	ExecutionContext            = types.ExecutionContext
	EventType                   = types.EventType
	ResourceEvent               = types.ResourceEvent
	CancellableOperation[T any] = types.CancellableOperation[T]
)

// Adapter contracts.
type (
	Database[T any]  = adapter.Database[T]
	Storage          = adapter.Storage
	Patch            = adapter.Patch
	Filter           = adapter.Filter
	EventHandler     = adapter.EventHandler
	EventHandlerFunc = adapter.EventHandlerFunc
)

// Lifecycle states.
const (
	LifecycleEphemeral  = types.LifecycleEphemeral
	LifecyclePersisted  = types.LifecyclePersisted
	LifecycleProcessing = types.LifecycleProcessing
	LifecycleCompleted  = types.LifecycleCompleted
	LifecycleFailed     = types.LifecycleFailed
	LifecycleExpired    = types.LifecycleExpired
	LifecycleDeleted    = types.LifecycleDeleted
)

// Event types.
const (
	EventCreated      = types.EventCreated
	EventUpdated      = types.EventUpdated
	EventPersisted    = types.EventPersisted
	EventExpired      = types.EventExpired
	EventDeleted      = types.EventDeleted
	EventStateChanged = types.EventStateChanged
)

// Sentinel errors of the sub-packages.
var (
	ErrInvalidID        = ids.ErrInvalidID
	ErrNilFailure       = result.ErrNilFailure
	ErrInvalidLifecycle = types.ErrInvalidLifecycle
	ErrNotFound         = adapter.ErrNotFound
)

// Schemas of the shared types.
var (
	ExecutionContextSchema = types.ExecutionContextSchema
	ResourceMetadataSchema = types.ResourceMetadataSchema
	ResourceEventSchema    = types.ResourceEventSchema
)

// Ok returns a successful Result holding value.
func Ok[T any](value T) Result[T] { return result.Ok(value) }

// Err returns a failed Result holding err.
func Err[T any](err error) Result[T] { return result.Err[T](err) }

// Of lifts a (value, error) pair into a Result.
func Of[T any](value T, err error) Result[T] { return result.Of(value, err) }

// Try runs fn and captures a returned error or a panic as a failure.
func Try[T any](fn func() (T, error)) Result[T] { return result.Try(fn) }

// IsOk reports whether r holds a value.
func IsOk[T any](r Result[T]) bool { return result.IsOk(r) }

// IsErr reports whether r holds an error.
func IsErr[T any](r Result[T]) bool { return result.IsErr(r) }

// Map applies f to a successful value.
func Map[T, U any](r Result[T], f func(T) U) Result[U] { return result.Map(r, f) }

// MapErr applies f to a failure's error.
func MapErr[T any](r Result[T], f func(error) error) Result[T] { return result.MapErr(r, f) }

// Chain feeds a successful value to f.
func Chain[T, U any](r Result[T], f func(T) Result[U]) Result[U] { return result.Chain(r, f) }

// Unwrap returns the value of r or panics with its error.
func Unwrap[T any](r Result[T]) T { return result.Unwrap(r) }

// UnwrapOr returns the value of r, or def on failure.
func UnwrapOr[T any](r Result[T], def T) T { return result.UnwrapOr(r, def) }

// NewSchema builds a Schema for T. See schema.New.
func NewSchema[T any](opts ...schema.Option) (*Schema[T], error) { return schema.New[T](opts...) }

// Validate checks data against s.
func Validate[T any](s *Schema[T], data any) Result[T] { return schema.Validate(s, data) }

// Parse checks data against s and returns the typed value, or a
// *ValidationError listing every issue.
func Parse[T any](s *Schema[T], data any) (T, error) { return schema.Parse(s, data) }

// MustParse is like Parse but panics on failure.
func MustParse[T any](s *Schema[T], data any) T { return s.MustParse(data) }

// Is reports whether data conforms to s.
func Is[T any](s *Schema[T], data any) bool { return schema.Is(s, data) }

// ValidateID reports whether s is a non-blank identifier.
func ValidateID(s string) bool { return ids.Validate(s) }

// ValidateResourceID reports whether s is a resource id.
func ValidateResourceID(s string) bool { return ids.ValidateResourceID(s) }

// ValidateEphemeralID reports whether s is an ephemeral id.
func ValidateEphemeralID(s string) bool { return ids.ValidateEphemeralID(s) }

// GenerateID returns a new time-ordered id with the given prefix.
func GenerateID(prefix string) string { return ids.Generate(prefix) }

// NewResourceID generates a resource id ("res_...").
func NewResourceID() ResourceID { return ids.NewResourceID() }

// NewEphemeralID generates an ephemeral id ("eph_...").
func NewEphemeralID() EphemeralID { return ids.NewEphemeralID() }

// NewSessionID generates a session id ("sess_...").
func NewSessionID() SessionID { return ids.NewSessionID() }

// NewCorrelationID generates a correlation id ("corr_...").
func NewCorrelationID() CorrelationID { return ids.NewCorrelationID() }

// NewWorkflowID generates a workflow id ("wf_...").
func NewWorkflowID() WorkflowID { return ids.NewWorkflowID() }

// Fingerprint returns a short content fingerprint of v. It is not a
// cryptographic hash.
func Fingerprint(v any) (string, error) { return fingerprint.Generate(v) }

// NewExecutionContext returns a context for requestID stamped now.
func NewExecutionContext(requestID string) ExecutionContext {
	return types.NewExecutionContext(requestID)
}

// IsValidExecutionContext reports whether v is a valid ExecutionContext.
func IsValidExecutionContext(v any) bool { return types.IsValidExecutionContext(v) }

// IsValidResourceMetadata reports whether v is valid ResourceMetadata.
func IsValidResourceMetadata(v any) bool { return types.IsValidResourceMetadata(v) }

// IsValidResourceEvent reports whether v is a valid ResourceEvent.
func IsValidResourceEvent(v any) bool { return types.IsValidResourceEvent(v) }

// StartOperation runs fn in a goroutine and returns a handle to cancel or
// await it.
func StartOperation[T any](ctx context.Context, fn func(context.Context) (T, error)) *CancellableOperation[T] {
	return types.StartOperation(ctx, fn)
}
