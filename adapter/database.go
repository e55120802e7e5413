package adapter

import (
	"context"
	"errors"

	"github.com/zero-day-ai/foundation/ids"
	"github.com/zero-day-ai/foundation/result"
)

// ErrNotFound is returned by Get, Update and Delete when no record has the
// requested id, and by Storage.Get when a key is absent.
var ErrNotFound = errors.New("adapter: not found")

// Patch is a partial record: keys are the record's JSON field names.
type Patch map[string]any

// Filter selects records whose fields equal the given values. An empty
// filter matches every record.
type Filter map[string]any

// Database is the contract for a typed record store.
//
// Failures other than ErrNotFound are adapter-defined and are passed through
// unchanged.
type Database[T any] interface {
	// Insert stores rec and returns the stored record, including any
	// fields the adapter assigns such as its id.
	Insert(ctx context.Context, rec T) (T, error)

	// Get returns the record with the given id, or ErrNotFound.
	Get(ctx context.Context, id ids.ResourceID) (T, error)

	// Update applies patch to the record with the given id and returns the
	// updated record.
	Update(ctx context.Context, id ids.ResourceID, patch Patch) (T, error)

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id ids.ResourceID) error

	// Query returns the records matching filter.
	Query(ctx context.Context, filter Filter) ([]T, error)

	// Transaction runs fn with a transactional handle. If fn returns an
	// error, every write made through the handle is rolled back and the
	// error is returned.
	Transaction(ctx context.Context, fn func(ctx context.Context, tx Database[T]) error) error
}

// InTransaction runs fn inside db.Transaction and returns its value.
func InTransaction[T, R any](ctx context.Context, db Database[T], fn func(ctx context.Context, tx Database[T]) (R, error)) (R, error) {
	var out R
	err := db.Transaction(ctx, func(ctx context.Context, tx Database[T]) error {
		v, err := fn(ctx, tx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero R
		return zero, err
	}
	return out, nil
}

// GetResult wraps db.Get in a Result.
func GetResult[T any](ctx context.Context, db Database[T], id ids.ResourceID) result.Result[T] {
	return result.Of(db.Get(ctx, id))
}

// QueryResult wraps db.Query in a Result.
func QueryResult[T any](ctx context.Context, db Database[T], filter Filter) result.Result[[]T] {
	return result.Of(db.Query(ctx, filter))
}

// IsNotFound reports whether err marks a missing record or key.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
