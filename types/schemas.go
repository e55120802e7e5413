package types

import (
	"github.com/go-playground/validator/v10"

	"github.com/zero-day-ai/foundation/schema"
)

// Schemas for the shared types. They accept the same input forms as any
// schema.Schema: typed values, decoded JSON or YAML maps and raw JSON bytes.
var (
	ExecutionContextSchema = schema.MustNew[ExecutionContext]()

	ResourceMetadataSchema = schema.MustNew[ResourceMetadata](
		schema.WithValidation("lifecycle", validLifecycle),
		schema.WithRule("self.updated_at >= self.created_at",
			[]string{"updated_at"}, "must not precede created_at"),
	)

	ResourceEventSchema = schema.MustNew[ResourceEvent](
		schema.WithValidation("lifecycle", validLifecycle),
		schema.WithValidation("eventtype", validEventType),
		schema.WithRule("self.type != 'state_changed' || (has(self.from) && has(self.to))",
			[]string{"to"}, "state_changed events require from and to"),
	)
)

// IsValidExecutionContext reports whether v conforms to ExecutionContextSchema.
func IsValidExecutionContext(v any) bool {
	return ExecutionContextSchema.Is(v)
}

// IsValidResourceMetadata reports whether v conforms to ResourceMetadataSchema.
func IsValidResourceMetadata(v any) bool {
	return ResourceMetadataSchema.Is(v)
}

// IsValidResourceEvent reports whether v conforms to ResourceEventSchema.
func IsValidResourceEvent(v any) bool {
	return ResourceEventSchema.Is(v)
}

func validLifecycle(fl validator.FieldLevel) bool {
	return Lifecycle(fl.Field().String()).IsValid()
}

func validEventType(fl validator.FieldLevel) bool {
	return EventType(fl.Field().String()).IsValid()
}
