package result

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNilFailure stands in for a nil error passed to Err, so that a failure
// Result always carries a non-nil error.
var ErrNilFailure = errors.New("result: failure without error")

// Result is either a success carrying a value of type T or a failure carrying
// an error. Construct Results with Ok, Err, Of or Try. The zero value is not
// a valid Result: it reads as a success holding the zero T only because no
// error is set, and callers must not rely on that.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a success Result wrapping value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err returns a failure Result wrapping err.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Result[T]{err: err}
}

// Of lifts a Go (value, error) pair into a Result.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: err}
	}
	return Ok(value)
}

// Try runs fn and captures its outcome. A panic inside fn becomes a failure;
// panic values that are not errors are wrapped with fmt.Errorf.
func Try[T any](fn func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			if err, ok := p.(error); ok {
				r = Err[T](err)
				return
			}
			r = Err[T](fmt.Errorf("result: panic: %v", p))
		}
	}()
	return Of(fn())
}

// IsOk reports whether r is a success.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether r is a failure.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Value returns the success value and true, or the zero T and false.
func (r Result[T]) Value() (T, bool) {
	if r.err != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure error, or nil for a success.
func (r Result[T]) Err() error { return r.err }

// Get converts r back into a Go (value, error) pair.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// Must returns the success value and panics with the contained error on failure.
func (r Result[T]) Must() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// ValueOr returns the success value, or def on failure.
func (r Result[T]) ValueOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// LogValue implements slog.LogValuer.
func (r Result[T]) LogValue() slog.Value {
	if r.err != nil {
		return slog.GroupValue(
			slog.Bool("ok", false),
			slog.String("error", r.err.Error()),
		)
	}
	return slog.GroupValue(
		slog.Bool("ok", true),
		slog.Any("value", r.value),
	)
}

// String implements fmt.Stringer.
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// IsOk reports whether r is a success.
func IsOk[T any](r Result[T]) bool { return r.IsOk() }

// IsErr reports whether r is a failure.
func IsErr[T any](r Result[T]) bool { return r.IsErr() }

// Map applies f to the value of a success. A failure is returned unchanged
// and f is not called.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Ok(f(r.value))
}

// MapErr applies f to the error of a failure. A success is returned unchanged
// and f is not called.
func MapErr[T any](r Result[T], f func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Err[T](f(r.err))
}

// Chain calls f with the value of a success and returns its Result. A failure
// is returned unchanged and f is not called.
func Chain[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return f(r.value)
}

// Unwrap returns the success value and panics with the contained error on
// failure. See Result.Must.
func Unwrap[T any](r Result[T]) T {
	return r.Must()
}

// UnwrapOr returns the success value, or def on failure. It never panics.
func UnwrapOr[T any](r Result[T], def T) T {
	return r.ValueOr(def)
}
