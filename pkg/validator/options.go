package validator

import (
	"log/slog"
	"maps"
)

// Option configures a Validator.
type Option func(*Validator)

// WithPolicy sets the failure policy.
func WithPolicy(p Policy) Option {
	return func(v *Validator) { v.policy = p }
}

// WithAutoThrow controls whether the FailFast policy returns a
// ValidationError after the pass. ThrowOnFirst always returns one.
func WithAutoThrow(enabled bool) Option {
	return func(v *Validator) { v.autoThrow = enabled }
}

// WithMessages registers message overrides keyed by "field.kind" or "field".
// Later calls add to and replace earlier entries.
func WithMessages(messages map[string]string) Option {
	return func(v *Validator) {
		if len(messages) == 0 {
			return
		}
		if v.overrides == nil {
			v.overrides = make(map[string]string, len(messages))
		}
		maps.Copy(v.overrides, messages)
	}
}

// WithMessage registers a single override, e.g. WithMessage("age.between", "...").
func WithMessage(key, message string) Option {
	return WithMessages(map[string]string{key: message})
}

// WithCatalog replaces the message catalog. Nil is ignored.
func WithCatalog(c *Catalog) Option {
	return func(v *Validator) {
		if c != nil {
			v.catalog = c
		}
	}
}

// WithLocale selects the built-in catalog matching a language tag.
func WithLocale(tag string) Option {
	return func(v *Validator) { v.catalog = CatalogFor(tag) }
}

// WithErrorCode sets the code carried by ValidationError.
func WithErrorCode(code int) Option {
	return func(v *Validator) { v.code = code }
}

// WithLogger sets the logger used for failure and declaration diagnostics.
// Nil is ignored; the default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// CheckOption adjusts a single Check call.
type CheckOption func(*checkConfig)

type checkConfig struct {
	only   map[string]bool
	policy *Policy
}

// OnlyFields restricts a check to the named fields, keeping declaration order.
func OnlyFields(fields ...string) CheckOption {
	return func(c *checkConfig) {
		if c.only == nil {
			c.only = make(map[string]bool, len(fields))
		}
		for _, f := range fields {
			c.only[f] = true
		}
	}
}

// UsePolicy overrides the failure policy for a single check.
func UsePolicy(p Policy) CheckOption {
	return func(c *checkConfig) { c.policy = &p }
}
