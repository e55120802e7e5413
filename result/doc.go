// Package result provides a success-or-failure Result type and combinators
// for sequencing fallible operations without nested error branches.
//
// A Result holds either a value (Ok) or an error (Err), never both:
//
//	r := result.Ok(21)
//	r = result.Map(r, func(n int) int { return n * 2 })
//	n := result.UnwrapOr(r, 0) // 42
//
// Map, MapErr and Chain only touch the channel they are named after; a
// failure flows through Map and Chain untouched and the mapping function is
// never invoked:
//
//	r := result.Chain(parseID(raw), load) // load runs only if parseID succeeded
//
// Functions passed to Map must not panic. Wrap code that can fail with Try or
// Of before feeding it into a pipeline.
//
// Unwrap (and the Must method) panic with the contained error. Use them only at
// program boundaries where an unhandled failure should abort; everywhere else
// prefer Get, UnwrapOr or the predicates.
package result
