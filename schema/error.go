package schema

import (
	"log/slog"
	"strings"
)

// Issue is a single validation failure.
type Issue struct {
	// Path locates the offending field: object keys and, for sequences,
	// decimal indices. An empty path refers to the input as a whole.
	Path []string `json:"path"`

	// Message describes the failure in human-readable form.
	Message string `json:"message"`
}

// PathString joins the path with dots.
func (i Issue) PathString() string {
	return strings.Join(i.Path, ".")
}

// String renders the issue as "path: message", or just the message when the
// issue has no path.
func (i Issue) String() string {
	if len(i.Path) == 0 {
		return i.Message
	}
	return i.PathString() + ": " + i.Message
}

// Error is returned when input does not conform to a schema.
type Error struct {
	// Schema names the target type.
	Schema string `json:"schema"`

	// Issues lists every failure found, in discovery order.
	Issues []Issue `json:"issues"`
}

// Error joins the issues with ", ".
func (e *Error) Error() string {
	if len(e.Issues) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return strings.Join(parts, ", ")
}

// Has reports whether any issue points at path (dot-joined).
func (e *Error) Has(path string) bool {
	for _, issue := range e.Issues {
		if issue.PathString() == path {
			return true
		}
	}
	return false
}

// Paths returns the distinct dot-joined issue paths.
func (e *Error) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, issue := range e.Issues {
		p := issue.PathString()
		if !seen[p] {
			paths = append(paths, p)
			seen[p] = true
		}
	}
	return paths
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("schema", e.Schema),
		slog.Int("issues", len(e.Issues)),
		slog.String("detail", e.Error()),
	)
}
