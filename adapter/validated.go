package adapter

import (
	"context"

	"github.com/zero-day-ai/foundation/ids"
	"github.com/zero-day-ai/foundation/schema"
)

type validated[T any] struct {
	db     Database[T]
	schema *schema.Schema[T]
}

// Validated returns a Database that checks records against s before they
// are written. Insert rejects invalid records without calling db. Update runs
// inside a transaction and rolls back when the patched record is invalid.
// Validation failures are *schema.Error values.
func Validated[T any](db Database[T], s *schema.Schema[T]) Database[T] {
	return &validated[T]{db: db, schema: s}
}

func (v *validated[T]) Insert(ctx context.Context, rec T) (T, error) {
	if err := v.schema.Validate(rec).Err(); err != nil {
		var zero T
		return zero, err
	}
	return v.db.Insert(ctx, rec)
}

func (v *validated[T]) Get(ctx context.Context, id ids.ResourceID) (T, error) {
	return v.db.Get(ctx, id)
}

func (v *validated[T]) Update(ctx context.Context, id ids.ResourceID, patch Patch) (T, error) {
	return InTransaction(ctx, v.db, func(ctx context.Context, tx Database[T]) (T, error) {
		rec, err := tx.Update(ctx, id, patch)
		if err != nil {
			return rec, err
		}
		return v.schema.Validate(rec).Get()
	})
}

func (v *validated[T]) Delete(ctx context.Context, id ids.ResourceID) error {
	return v.db.Delete(ctx, id)
}

func (v *validated[T]) Query(ctx context.Context, filter Filter) ([]T, error) {
	return v.db.Query(ctx, filter)
}

func (v *validated[T]) Transaction(ctx context.Context, fn func(ctx context.Context, tx Database[T]) error) error {
	return v.db.Transaction(ctx, func(ctx context.Context, tx Database[T]) error {
		return fn(ctx, &validated[T]{db: tx, schema: v.schema})
	})
}
