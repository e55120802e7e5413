// Package schema adapts a struct-tag validation engine into typed,
// Result-returning validation of free-form input.
//
// A Schema[T] describes how untyped input (decoded JSON, YAML, maps, raw
// bytes or an existing T) becomes a checked T. Field constraints are declared
// with `validate` struct tags (github.com/go-playground/validator) and
// cross-field invariants with CEL expressions evaluated against the value's
// JSON form, bound to the variable self.
//
// # Defining a schema
//
//	type Window struct {
//		Start int64 `json:"start" validate:"required"`
//		End   int64 `json:"end" validate:"required"`
//		Owner string `json:"owner" validate:"identifier"`
//	}
//
//	var WindowSchema = schema.MustNew[Window](
//		schema.WithRule("self.end >= self.start", []string{"end"}, "must not precede start"),
//	)
//
// # Validating
//
// Validate never panics; failures carry a *schema.Error listing every issue
// with the path of the offending field:
//
//	r := WindowSchema.Validate(map[string]any{"start": 10, "end": 5})
//	if r.IsErr() {
//		var verr *schema.Error
//		errors.As(r.Err(), &verr) // verr.Issues[0].Path == []string{"end"}
//	}
//
// Parse returns a plain (T, error) pair whose message joins each issue as
// "path: message", separated by ", ". Is discards both value and issues.
//
// # Built-in tags
//
// Every schema registers these tags in addition to the engine's own:
//
//	identifier   non-empty after trimming whitespace
//	resourceid   "res_" prefixed resource identifier
//	ephemeralid  "eph_" prefixed ephemeral identifier
//
// Field names in issue paths are taken from `json` tags.
package schema
