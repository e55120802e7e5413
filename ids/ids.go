package ids

import (
	"errors"
	"fmt"
	"strings"
)

// Category prefixes. Generated and validated identifiers carry the prefix
// followed by an underscore.
const (
	ResourcePrefix    = "res"
	EphemeralPrefix   = "eph"
	SessionPrefix     = "sess"
	CorrelationPrefix = "corr"
	WorkflowPrefix    = "wf"
)

// Separator joins the prefix, timestamp and random parts of an identifier.
const Separator = "_"

// ErrInvalidID is returned when a string does not satisfy the format of the
// requested identifier category.
var ErrInvalidID = errors.New("invalid identifier")

// ResourceID identifies a persisted resource.
type ResourceID string

// EphemeralID identifies a short-lived resource that has not been persisted.
type EphemeralID string

// SessionID identifies a user or client session.
type SessionID string

// CorrelationID ties together operations that belong to the same causal chain.
type CorrelationID string

// WorkflowID identifies a multi-step workflow run.
type WorkflowID string

func (id ResourceID) String() string    { return string(id) }
func (id EphemeralID) String() string   { return string(id) }
func (id SessionID) String() string     { return string(id) }
func (id CorrelationID) String() string { return string(id) }
func (id WorkflowID) String() string    { return string(id) }

// AsResourceID converts s without validation.
func AsResourceID(s string) ResourceID { return ResourceID(s) }

// AsEphemeralID converts s without validation.
func AsEphemeralID(s string) EphemeralID { return EphemeralID(s) }

// AsSessionID converts s without validation.
func AsSessionID(s string) SessionID { return SessionID(s) }

// AsCorrelationID converts s without validation.
func AsCorrelationID(s string) CorrelationID { return CorrelationID(s) }

// AsWorkflowID converts s without validation.
func AsWorkflowID(s string) WorkflowID { return WorkflowID(s) }

// ParseResourceID returns s as a ResourceID if it carries the resource prefix.
func ParseResourceID(s string) (ResourceID, error) {
	if !ValidateResourceID(s) {
		return "", fmt.Errorf("%w: resource id %q must start with %q", ErrInvalidID, s, ResourcePrefix+Separator)
	}
	return ResourceID(s), nil
}

// ParseEphemeralID returns s as an EphemeralID if it carries the ephemeral prefix.
func ParseEphemeralID(s string) (EphemeralID, error) {
	if !ValidateEphemeralID(s) {
		return "", fmt.Errorf("%w: ephemeral id %q must start with %q", ErrInvalidID, s, EphemeralPrefix+Separator)
	}
	return EphemeralID(s), nil
}

// Validate reports whether s is usable as a generic identifier: it must be
// non-empty after trimming whitespace.
func Validate(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ValidateResourceID reports whether s is a well-formed resource identifier.
func ValidateResourceID(s string) bool {
	return hasCategoryPrefix(s, ResourcePrefix)
}

// ValidateEphemeralID reports whether s is a well-formed ephemeral identifier.
func ValidateEphemeralID(s string) bool {
	return hasCategoryPrefix(s, EphemeralPrefix)
}

func hasCategoryPrefix(s, prefix string) bool {
	return s != "" && strings.HasPrefix(s, prefix+Separator)
}
