package foundation

import (
	"errors"
	"fmt"

	"github.com/zero-day-ai/foundation/adapter"
	"github.com/zero-day-ai/foundation/ids"
	"github.com/zero-day-ai/foundation/schema"
	"github.com/zero-day-ai/foundation/types"
)

// Error kinds categorize failures.
const (
	// KindValidation marks input that does not conform to a schema or an
	// identifier format.
	KindValidation = "validation"

	// KindNotFound marks a record or key that does not exist.
	KindNotFound = "not_found"

	// KindAdapter marks a failure reported by a database or storage adapter.
	// The underlying error is adapter-defined.
	KindAdapter = "adapter"

	// KindInternal marks a broken invariant inside this module or its caller.
	KindInternal = "internal"
)

// Error wraps an underlying error with the operation that failed and the
// category of failure.
//
// Error supports errors.Is and errors.As:
//
//	err := foundation.NewNotFoundError("Orders.Get", adapter.ErrNotFound)
//	errors.Is(err, adapter.ErrNotFound)                              // true
//	errors.Is(err, &foundation.Error{Kind: foundation.KindNotFound}) // true
type Error struct {
	// Op is the operation that failed (e.g., "Orders.Get").
	Op string

	// Kind is one of the Kind* constants.
	Kind string

	// Err is the underlying error.
	Err error

	// Context holds optional debugging values such as resource ids.
	Context map[string]any
}

// Error returns the operation, kind and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("foundation: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("foundation: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("foundation: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches a target *Error by Kind, and by Op when the target sets one.
// Any other target is compared against the underlying error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a copy of e with ctx merged into its Context.
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	newErr.Context = make(map[string]any, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		newErr.Context[k] = v
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// NewValidationError creates an Error with KindValidation.
func NewValidationError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindValidation,
		Err:  err,
	}
}

// NewNotFoundError creates an Error with KindNotFound.
func NewNotFoundError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindNotFound,
		Err:  err,
	}
}

// NewAdapterError creates an Error with KindAdapter.
func NewAdapterError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindAdapter,
		Err:  err,
	}
}

// NewInternalError creates an Error with KindInternal.
func NewInternalError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindInternal,
		Err:  err,
	}
}

// KindOf classifies err. An *Error anywhere in the chain reports its own
// Kind. Otherwise schema failures and malformed identifiers or lifecycle
// states are KindValidation, and adapter.ErrNotFound is KindNotFound. Errors
// it cannot classify, and nil, yield "".
func KindOf(err error) string {
	if err == nil {
		return ""
	}

	var fe *Error
	if errors.As(err, &fe) && fe.Kind != "" {
		return fe.Kind
	}

	var se *schema.Error
	switch {
	case errors.As(err, &se),
		errors.Is(err, ids.ErrInvalidID),
		errors.Is(err, types.ErrInvalidLifecycle):
		return KindValidation
	case errors.Is(err, adapter.ErrNotFound):
		return KindNotFound
	default:
		return ""
	}
}
