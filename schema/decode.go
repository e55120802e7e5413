package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// decode turns untyped input into a T. Values that are not already a T are
// round-tripped through JSON, which handles decoded documents, maps and
// foreign structs alike.
func decode[T any](data any) (T, []Issue) {
	var zero T

	switch v := data.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return zero, []Issue{{Message: "is required"}}
		}
		return *v, nil
	case nil:
		return zero, []Issue{{Message: "is required"}}
	case json.RawMessage:
		return decodeJSON[T](v)
	case []byte:
		return decodeJSON[T](v)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return zero, []Issue{{Message: fmt.Sprintf("cannot decode %T: %v", data, err)}}
	}
	return decodeJSON[T](raw)
}

func decodeJSON[T any](raw []byte) (T, []Issue) {
	var out T
	err := json.Unmarshal(raw, &out)
	if err == nil {
		return out, nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		var path []string
		if typeErr.Field != "" {
			path = strings.Split(typeErr.Field, ".")
		}
		return out, []Issue{{
			Path:    path,
			Message: fmt.Sprintf("expected %s, received %s", jsonKind(typeErr.Type), typeErr.Value),
		}}
	case errors.As(err, &syntaxErr):
		return out, []Issue{{Message: fmt.Sprintf("invalid JSON at offset %d: %v", syntaxErr.Offset, err)}}
	default:
		return out, []Issue{{Message: err.Error()}}
	}
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Pointer:
		return jsonKind(t.Elem())
	}
	return t.String()
}

// namespacePath converts a validator namespace such as
// "ExecutionContext.metadata[trace].value" into path segments, dropping the
// leading type name. Dots inside brackets do not split: the root of a
// generic type reads "page[example.com/pkg.item]" and map keys may contain
// dots.
func namespacePath(ns string) []string {
	root := indexOutsideBrackets(ns, '.')
	if root < 0 {
		return nil
	}

	var path []string
	rest := ns[root+1:]
	for rest != "" {
		switch rest[0] {
		case '.':
			rest = rest[1:]
		case '[':
			end := closingBracket(rest)
			if end < 0 {
				path = append(path, rest[1:])
				return path
			}
			path = append(path, rest[1:end])
			rest = rest[end+1:]
		default:
			end := strings.IndexAny(rest, ".[")
			if end < 0 {
				end = len(rest)
			}
			path = append(path, rest[:end])
			rest = rest[end:]
		}
	}
	return path
}

// indexOutsideBrackets returns the index of the first c not enclosed in
// square brackets, or -1.
func indexOutsideBrackets(s string, c byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case c:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// closingBracket returns the index of the bracket closing s[0], or -1.
func closingBracket(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func describe(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required", "required_with", "required_without":
		return "is required"
	case "gt":
		return "must be greater than " + param
	case "gte", "min":
		if unit := sizeUnit(fe.Kind()); unit != "" {
			return "must contain at least " + param + " " + unit
		}
		return "must be greater than or equal to " + param
	case "lt":
		return "must be less than " + param
	case "lte", "max":
		if unit := sizeUnit(fe.Kind()); unit != "" {
			return "must contain at most " + param + " " + unit
		}
		return "must be less than or equal to " + param
	case "len":
		return "must have length " + param
	case "oneof":
		return "must be one of [" + param + "]"
	case "identifier":
		return "must not be blank"
	case "resourceid":
		return "must be a resource id starting with \"res_\""
	case "ephemeralid":
		return "must be an ephemeral id starting with \"eph_\""
	}
	if param != "" {
		return fmt.Sprintf("failed %q rule (%s)", fe.Tag(), param)
	}
	return fmt.Sprintf("failed %q rule", fe.Tag())
}

func sizeUnit(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return "characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return "items"
	}
	return ""
}
