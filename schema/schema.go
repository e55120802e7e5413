package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/cel-go/cel"
	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/foundation/ids"
	"github.com/zero-day-ai/foundation/result"
)

// Schema validates untyped input into values of type T.
// A Schema is safe for concurrent use.
type Schema[T any] struct {
	name     string
	validate *validator.Validate
	rules    []rule
	logger   *slog.Logger
}

type rule struct {
	ruleSpec
	program cel.Program
}

// New builds a Schema for T. It fails if a custom tag cannot be registered or
// a rule does not compile to a boolean CEL expression.
func New[T any](opts ...Option) (*Schema[T], error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Schema[T]{
		name:     reflect.TypeFor[T]().String(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   cfg.logger,
	}
	s.validate.RegisterTagNameFunc(jsonFieldName)

	builtins := map[string]validator.Func{
		"identifier":  stringCheck(ids.Validate),
		"resourceid":  stringCheck(ids.ValidateResourceID),
		"ephemeralid": stringCheck(ids.ValidateEphemeralID),
	}
	for tag, fn := range builtins {
		if err := s.validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("schema %s: register %q: %w", s.name, tag, err)
		}
	}
	for tag, fn := range cfg.validations {
		if err := s.validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("schema %s: register %q: %w", s.name, tag, err)
		}
	}

	if err := s.checkTags(); err != nil {
		return nil, fmt.Errorf("schema %s: %w", s.name, err)
	}

	if len(cfg.rules) > 0 {
		env, err := cel.NewEnv(cel.Variable("self", cel.DynType))
		if err != nil {
			return nil, fmt.Errorf("schema %s: create rule environment: %w", s.name, err)
		}
		for _, spec := range cfg.rules {
			prg, err := compileRule(env, spec.expr)
			if err != nil {
				return nil, fmt.Errorf("schema %s: %w", s.name, err)
			}
			s.rules = append(s.rules, rule{ruleSpec: spec, program: prg})
		}
	}

	return s, nil
}

// MustNew is like New but panics on error. It is intended for package-level
// schema variables.
func MustNew[T any](opts ...Option) *Schema[T] {
	s, err := New[T](opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func compileRule(env *cel.Env, expr string) (cel.Program, error) {
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("compile rule %q: %w", expr, iss.Err())
	}
	out := ast.OutputType()
	if !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("rule %q must evaluate to bool, got %s", expr, out)
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build rule %q: %w", expr, err)
	}
	return prg, nil
}

// Name returns the name of the target type.
func (s *Schema[T]) Name() string {
	return s.name
}

// Validate decodes and checks data. On success the Result holds the decoded
// value; on failure it holds a *Error. Validate never panics.
func (s *Schema[T]) Validate(data any) result.Result[T] {
	value, issues := decode[T](data)
	if len(issues) == 0 {
		issues = s.check(value)
	}
	if len(issues) == 0 {
		issues = s.evalRules(value)
	}
	if len(issues) > 0 {
		return result.Err[T](s.fail(issues))
	}
	return result.Ok(value)
}

// ValidateYAML decodes a YAML document and validates it like Validate.
func (s *Schema[T]) ValidateYAML(doc []byte) result.Result[T] {
	var tree any
	if err := yaml.Unmarshal(doc, &tree); err != nil {
		return result.Err[T](s.fail([]Issue{{Message: "invalid YAML: " + err.Error()}}))
	}
	return s.Validate(tree)
}

// Parse validates data and returns the value, or a *Error whose message lists
// every issue.
func (s *Schema[T]) Parse(data any) (T, error) {
	return s.Validate(data).Get()
}

// MustParse is like Parse but panics with the *Error on failure.
func (s *Schema[T]) MustParse(data any) T {
	return s.Validate(data).Must()
}

// Is reports whether data conforms to the schema.
func (s *Schema[T]) Is(data any) bool {
	return s.Validate(data).IsOk()
}

func (s *Schema[T]) fail(issues []Issue) *Error {
	err := &Error{Schema: s.name, Issues: issues}
	if s.logger != nil {
		s.logger.LogAttrs(context.Background(), slog.LevelDebug, "schema validation failed",
			slog.Any("error", err))
	}
	return err
}

// checkTags runs the tag engine once over a zero T so that unknown or
// malformed validate tags fail construction instead of the first Validate.
func (s *Schema[T]) checkTags() (err error) {
	rt := reflect.TypeFor[T]()
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("invalid validate tag: %v", p)
		}
	}()
	_ = s.validate.Struct(reflect.New(rt).Elem().Interface())
	return nil
}

// check runs the struct tag engine. Non-struct targets have no tags to check;
// a nil pointer target is reported as missing.
func (s *Schema[T]) check(value T) (issues []Issue) {
	rv := reflect.ValueOf(&value).Elem()
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return []Issue{{Message: "is required"}}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	// Tags of nested structs reached only through non-nil pointers are not
	// seen by checkTags.
	defer func() {
		if p := recover(); p != nil {
			issues = []Issue{{Message: fmt.Sprintf("invalid validate tag: %v", p)}}
		}
	}()

	err := s.validate.Struct(rv.Interface())
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Issue{{Message: err.Error()}}
	}

	issues = make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, Issue{
			Path:    namespacePath(fe.Namespace()),
			Message: describe(fe),
		})
	}
	return issues
}

func (s *Schema[T]) evalRules(value T) []Issue {
	if len(s.rules) == 0 {
		return nil
	}

	self, err := ruleInput(value)
	if err != nil {
		return []Issue{{Message: err.Error()}}
	}

	var issues []Issue
	for _, r := range s.rules {
		out, _, err := r.program.Eval(map[string]any{"self": self})
		if err != nil {
			issues = append(issues, Issue{Path: r.path, Message: fmt.Sprintf("%s (%v)", r.message, err)})
			continue
		}
		if ok, isBool := out.Value().(bool); !isBool || !ok {
			issues = append(issues, Issue{Path: r.path, Message: r.message})
		}
	}
	return issues
}

// ruleInput renders value as the JSON tree bound to self. Integral numbers
// stay int64 so comparisons of large values are exact.
func ruleInput(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode for rule evaluation: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("decode for rule evaluation: %w", err)
	}
	return numbersToNative(tree), nil
}

func numbersToNative(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			v[k] = numbersToNative(e)
		}
		return v
	case []any:
		for i, e := range v {
			v[i] = numbersToNative(e)
		}
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		f, _ := v.Float64()
		return f
	default:
		return v
	}
}

// Validate is the function form of Schema.Validate.
func Validate[T any](s *Schema[T], data any) result.Result[T] {
	return s.Validate(data)
}

// Parse is the function form of Schema.Parse.
func Parse[T any](s *Schema[T], data any) (T, error) {
	return s.Parse(data)
}

// Is is the function form of Schema.Is.
func Is[T any](s *Schema[T], data any) bool {
	return s.Is(data)
}

func stringCheck(fn func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return fn(field.String())
	}
}

// jsonFieldName reports struct fields by their JSON name so issue paths match
// the input keys.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
