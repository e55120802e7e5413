// Package foundation provides the shared building blocks used across the
// platform's libraries: branded identifiers, a Result type, schema
// validation, resource lifecycle and metadata types, execution contexts,
// resource events and the persistence adapter contracts.
//
// The root package is the single import surface. It re-exports the types of
// the sub-packages as aliases and forwards their constructors, so callers
// can depend on one path:
//
//	import "github.com/zero-day-ai/foundation"
//
//	ec := foundation.NewExecutionContext("")
//	id := foundation.NewResourceID()
//
// The sub-packages can also be imported directly:
//
//   - ids: branded identifier types, id generation and format checks
//   - result: Result[T] and its combinators
//   - schema: struct-tag and CEL rule validation of untyped input
//   - fingerprint: short non-cryptographic content fingerprints
//   - types: Lifecycle, ResourceMetadata, ExecutionContext, ResourceEvent
//   - adapter: Database, Storage and EventHandler contracts
//
// # Results
//
// Expected failures such as bad input or a missing record are values, not
// panics:
//
//	r := foundation.Validate(foundation.ExecutionContextSchema, payload)
//	ec, err := r.Get()
//
// Unwrap and MustParse are the only helpers that panic, and they panic with
// the original error.
//
// # Error Handling
//
// Error attaches an operation and a kind to an underlying error. KindOf
// classifies errors from every sub-package:
//
//	switch foundation.KindOf(err) {
//	case foundation.KindValidation:
//		// reject the request
//	case foundation.KindNotFound:
//		// 404
//	}
//
// # Thread Safety
//
// Schemas and id generators are safe for concurrent use. All shared types
// are values; their With* methods return modified copies.
package foundation
