package schema

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
)

// Option configures a Schema.
type Option func(*config)

type config struct {
	rules       []ruleSpec
	validations map[string]validator.Func
	logger      *slog.Logger
}

type ruleSpec struct {
	expr    string
	path    []string
	message string
}

// WithRule adds a cross-field rule. expr is a CEL expression over the
// variable self (the value's JSON object form) that must evaluate to true.
// A failing rule is reported at path with message.
//
// Rules only run once the value has decoded and passed its struct tags.
func WithRule(expr string, path []string, message string) Option {
	return func(c *config) {
		c.rules = append(c.rules, ruleSpec{expr: expr, path: path, message: message})
	}
}

// WithValidation registers a custom struct tag for this schema.
func WithValidation(tag string, fn validator.Func) Option {
	return func(c *config) {
		if c.validations == nil {
			c.validations = make(map[string]validator.Func)
		}
		c.validations[tag] = fn
	}
}

// WithLogger makes the schema log rejected input at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
