// Package ids provides branded identifier types and identifier generators.
//
// Each identifier category is a distinct Go type, so a ResourceID cannot be
// passed where a SessionID is expected without an explicit conversion:
//
//	func Load(id ids.ResourceID) error
//
//	Load(ids.NewResourceID())      // ok
//	Load(ids.NewSessionID())       // compile error
//
// # Construction
//
// The As* functions convert a raw string without any checks. The Parse*
// functions enforce the category prefix and return ErrInvalidID otherwise:
//
//	id := ids.AsResourceID(row.ID)             // trusted source
//	id, err := ids.ParseResourceID(req.ID)     // untrusted input
//
// # Generation
//
// Generated identifiers combine a base-36 timestamp with a base-36 random
// component:
//
//	ids.Generate("wf")   // "wf_lz3k9x2a_2n8c5u1xq0m4f"
//	ids.Generate("")     // "lz3k9x2a_2n8c5u1xq0m4f"
//
// They are collision resistant at normal call rates but are not secure
// tokens and must not be used as secrets.
package ids
