package foundation

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/zero-day-ai/foundation/adapter"
	"github.com/zero-day-ai/foundation/ids"
	"github.com/zero-day-ai/foundation/schema"
	"github.com/zero-day-ai/foundation/types"
)

// TestErrorError verifies the Error() method formatting.
func TestErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "basic error",
			err: &Error{
				Op:   "Orders.Get",
				Kind: KindNotFound,
				Err:  adapter.ErrNotFound,
			},
			want: "foundation: Orders.Get (not_found): adapter: not found",
		},
		{
			name: "error with context",
			err: &Error{
				Op:   "Orders.Insert",
				Kind: KindAdapter,
				Err:  errors.New("connection reset"),
				Context: map[string]any{
					"resource_id": "res_1",
				},
			},
			want: "foundation: Orders.Insert (adapter): connection reset [context:",
		},
		{
			name: "error without underlying error",
			err: &Error{
				Op:   "Orders.Parse",
				Kind: KindValidation,
			},
			want: "foundation: Orders.Parse: validation",
		},
		{
			name: "error with wrapped error",
			err: &Error{
				Op:   "Orders.Load",
				Kind: KindInternal,
				Err:  fmt.Errorf("decode row: %w", ids.ErrInvalidID),
			},
			want: "foundation: Orders.Load (internal): decode row: invalid identifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if !strings.Contains(got, tt.want) {
				t.Errorf("Error() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

// TestErrorIs verifies errors.Is compatibility.
func TestErrorIs(t *testing.T) {
	notFound := NewNotFoundError("Orders.Get", adapter.ErrNotFound)

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"matches underlying sentinel", notFound, adapter.ErrNotFound, true},
		{"matches through fmt wrapping", fmt.Errorf("outer: %w", notFound), adapter.ErrNotFound, true},
		{"matches by kind", notFound, &Error{Kind: KindNotFound}, true},
		{"matches by kind and op", notFound, &Error{Op: "Orders.Get", Kind: KindNotFound}, true},
		{"different op", notFound, &Error{Op: "Orders.Delete", Kind: KindNotFound}, false},
		{"different kind", notFound, &Error{Kind: KindValidation}, false},
		{"different sentinel", notFound, ids.ErrInvalidID, false},
		{"nil target", notFound, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestErrorAs verifies errors.As extraction.
func TestErrorAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewAdapterError("Blobs.Put", errors.New("quota exceeded")).
		WithContext(map[string]any{"key": "k1"}))

	var fe *Error
	if !errors.As(wrapped, &fe) {
		t.Fatal("errors.As() failed to extract *Error")
	}
	if fe.Op != "Blobs.Put" || fe.Kind != KindAdapter {
		t.Errorf("got Op=%q Kind=%q", fe.Op, fe.Kind)
	}
	if fe.Context["key"] != "k1" {
		t.Errorf("Context[key] = %v, want k1", fe.Context["key"])
	}
}

// TestErrorWithContext verifies WithContext copies instead of mutating.
func TestErrorWithContext(t *testing.T) {
	original := NewInternalError("Schema.Build", errors.New("bad rule"))
	first := original.WithContext(map[string]any{"rule": "self.a > 0"})
	second := first.WithContext(map[string]any{"schema": "Order"})

	if original.Context != nil {
		t.Errorf("original Context mutated: %v", original.Context)
	}
	if len(first.Context) != 1 {
		t.Errorf("first Context = %v, want one entry", first.Context)
	}
	if len(second.Context) != 2 || second.Context["rule"] != "self.a > 0" {
		t.Errorf("second Context = %v, want both entries", second.Context)
	}
}

// TestConstructors verifies each constructor sets its kind.
func TestConstructors(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		err  *Error
		kind string
	}{
		{NewValidationError("op", cause), KindValidation},
		{NewNotFoundError("op", cause), KindNotFound},
		{NewAdapterError("op", cause), KindAdapter},
		{NewInternalError("op", cause), KindInternal},
	}
	for _, tt := range tests {
		if tt.err.Kind != tt.kind {
			t.Errorf("Kind = %q, want %q", tt.err.Kind, tt.kind)
		}
		if tt.err.Op != "op" || !errors.Is(tt.err, cause) {
			t.Errorf("constructor for %s lost op or cause", tt.kind)
		}
	}
}

// TestKindOf verifies classification of package errors.
func TestKindOf(t *testing.T) {
	_, parseErr := types.ExecutionContextSchema.Parse(map[string]any{})
	_, idErr := ids.ParseResourceID("order-1")
	_, lifecycleErr := types.ParseLifecycle("archived")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"schema error", parseErr, KindValidation},
		{"wrapped schema error", fmt.Errorf("load: %w", parseErr), KindValidation},
		{"invalid id", idErr, KindValidation},
		{"invalid lifecycle", lifecycleErr, KindValidation},
		{"not found", fmt.Errorf("get: %w", adapter.ErrNotFound), KindNotFound},
		{"explicit kind wins", NewAdapterError("Orders.Get", adapter.ErrNotFound), KindAdapter},
		{"unclassified", errors.New("disk on fire"), ""},
	}

	var se *schema.Error
	if !errors.As(parseErr, &se) {
		t.Fatalf("Parse error %T is not a *schema.Error", parseErr)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}
