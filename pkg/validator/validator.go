package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// Policy decides what happens after a field fails. Within a field,
// evaluation always stops at the first failing rule.
type Policy int

const (
	// Aggregate checks every field and never returns a ValidationError.
	Aggregate Policy = iota
	// FailFast checks every field and, when auto-throw is on, returns one
	// ValidationError built from the first failure after the pass.
	FailFast
	// ThrowOnFirst returns a ValidationError at the first failing rule.
	ThrowOnFirst
)

func (p Policy) String() string {
	switch p {
	case Aggregate:
		return "aggregate"
	case FailFast:
		return "fail-fast"
	case ThrowOnFirst:
		return "throw-on-first"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy parses the names returned by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aggregate", "aggregate-all":
		return Aggregate, nil
	case "fail-fast", "fail-fast-per-field", "failfast":
		return FailFast, nil
	case "throw-on-first", "throw":
		return ThrowOnFirst, nil
	}
	return 0, fmt.Errorf("%w: unknown failure policy %q", ErrSpecification, s)
}

// State is the lifecycle stage of a Validator.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Outcome is the result of a Check.
type Outcome struct {
	OK     bool
	Errors map[string][]string
	// Fields lists failed fields in declaration order.
	Fields []string
}

// Validator checks records against a FieldRuleSet and keeps the errors of
// the last check. Rules and catalogs are immutable and shared; the error
// accumulator is not, so a Validator must not run concurrent checks. Use
// one per request, or Clone.
type Validator struct {
	rules     FieldRuleSet
	policy    Policy
	autoThrow bool
	overrides map[string]string
	catalog   *Catalog
	code      int
	logger    *slog.Logger

	state  atomic.Int32
	errs   map[string][]string
	failed []string
}

// New prepares the rule set and returns a Validator. Every rule is checked
// up front: unknown kinds, missing parameters and invalid patterns are
// reported here, joined into one error.
//
// The default policy is FailFast with auto-throw enabled.
func New(set FieldRuleSet, opts ...Option) (*Validator, error) {
	v := &Validator{
		policy:    FailFast,
		autoThrow: true,
		catalog:   DefaultCatalog(),
		code:      DefaultErrorCode,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}

	rules, err := compileSet(set)
	if err != nil {
		v.logger.Error("invalid validation rules", logger.Error(err))
		return nil, err
	}
	v.rules = rules
	return v, nil
}

// MustNew is like New but panics on an invalid rule set.
func MustNew(set FieldRuleSet, opts ...Option) *Validator {
	v, err := New(set, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// NewFromSpec parses the compact grammar and builds a Validator.
// spec is a list of field/rules pairs as accepted by Parse.
func NewFromSpec(spec []string, opts ...Option) (*Validator, error) {
	set, err := Parse(spec...)
	if err != nil {
		return nil, err
	}
	return New(set, opts...)
}

func compileSet(set FieldRuleSet) (FieldRuleSet, error) {
	out := make(FieldRuleSet, 0, len(set))
	var errs []error
	for _, fr := range set {
		if fr.Field == "" {
			errs = append(errs, &SpecificationError{Reason: "empty field name"})
			continue
		}
		compiled := FieldRules{Field: fr.Field, Title: fr.title(), Rules: make([]Rule, 0, len(fr.Rules))}
		for _, rule := range fr.Rules {
			prepared, err := prepare(fr.Field, rule)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			compiled.Rules = append(compiled.Rules, prepared)
		}
		out = append(out, compiled)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// Clone returns a fresh Validator sharing the rules and configuration.
func (v *Validator) Clone() *Validator {
	return &Validator{
		rules:     v.rules,
		policy:    v.policy,
		autoThrow: v.autoThrow,
		overrides: v.overrides,
		catalog:   v.catalog,
		code:      v.code,
		logger:    v.logger,
	}
}

// Rules returns the prepared rule set.
func (v *Validator) Rules() FieldRuleSet { return slices.Clone(v.rules) }

// Policy returns the configured failure policy.
func (v *Validator) Policy() Policy { return v.policy }

// State returns the lifecycle stage.
func (v *Validator) State() State { return State(v.state.Load()) }

// Check validates record. The error accumulator is reset first. It returns a
// *ValidationError when the policy mandates throwing, and declaration errors
// (unknown kinds, missing or malformed parameters) as soon as they are hit.
func (v *Validator) Check(record Record, opts ...CheckOption) (Outcome, error) {
	if !v.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) &&
		!v.state.CompareAndSwap(int32(StateDone), int32(StateRunning)) {
		return Outcome{}, ErrConcurrentCheck
	}
	defer v.state.Store(int32(StateDone))

	var cfg checkConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	policy := v.policy
	if cfg.policy != nil {
		policy = *cfg.policy
	}

	v.errs = make(map[string][]string)
	v.failed = nil

	for _, fr := range v.rules {
		if cfg.only != nil && !cfg.only[fr.Field] {
			continue
		}
		value, _ := Resolve(record, fr.Field)
		for _, rule := range fr.Rules {
			ok, custom, err := evaluate(rule, value, record)
			if err != nil {
				err = fieldError(fr.Field, err)
				v.logger.Error("validation rule is broken",
					logger.Field(fr.Field), logger.Rule(rule.kind), logger.Error(err))
				return v.outcome(), err
			}
			if ok {
				continue
			}

			msg := custom
			if msg == "" {
				msg = v.message(fr, rule)
			}
			v.add(fr.Field, msg)
			v.logger.Debug("validation rule failed",
				logger.Field(fr.Field), logger.Rule(rule.kind), logger.Policy(policy.String()))

			if policy == ThrowOnFirst {
				return v.outcome(), v.raise(fr.Field, msg)
			}
			break
		}
	}

	out := v.outcome()
	if !out.OK && policy == FailFast && v.autoThrow {
		field := v.failed[0]
		return out, v.raise(field, v.errs[field][0])
	}
	return out, nil
}

// Validate is a shortcut for Check that only reports the error.
func (v *Validator) Validate(record Record) error {
	_, err := v.Check(record)
	return err
}

func fieldError(field string, err error) error {
	var spec *SpecificationError
	if errors.As(err, &spec) && spec.Field == "" {
		return &SpecificationError{Field: field, Reason: spec.Reason}
	}
	return err
}

func (v *Validator) add(field, msg string) {
	if _, seen := v.errs[field]; !seen {
		v.failed = append(v.failed, field)
	}
	v.errs[field] = append(v.errs[field], msg)
}

func (v *Validator) raise(field, msg string) *ValidationError {
	return &ValidationError{
		Message: msg,
		Code:    v.code,
		Field:   field,
		Errors:  v.Errors(),
	}
}

func (v *Validator) outcome() Outcome {
	return Outcome{
		OK:     len(v.errs) == 0,
		Errors: v.Errors(),
		Fields: slices.Clone(v.failed),
	}
}

// message picks the template for a failed rule: "field.kind" override,
// "field" override, rule message, catalog entry, catalog fallback.
func (v *Validator) message(fr FieldRules, rule Rule) string {
	kind := rule.kind
	tmpl, ok := v.overrides[fr.Field+"."+kind]
	if !ok {
		tmpl, ok = v.overrides[fr.Field]
	}
	if !ok && rule.message != "" {
		tmpl, ok = rule.message, true
	}
	if !ok {
		tmpl, ok = v.catalog.Lookup(kind)
	}
	if !ok {
		tmpl = v.catalog.Fallback()
	}
	return Render(tmpl, fr.title(), kind, rule.params)
}

// Errors returns a copy of the error accumulator of the last check.
func (v *Validator) Errors() map[string][]string {
	out := make(map[string][]string, len(v.errs))
	for field, msgs := range v.errs {
		out[field] = slices.Clone(msgs)
	}
	return out
}

// FieldErrors returns the messages recorded for field by the last check.
func (v *Validator) FieldErrors(field string) []string {
	return slices.Clone(v.errs[field])
}

// HasErrors reports whether the last check recorded any failure.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// ErrorInfo joins all messages of the last check into one string: messages
// of one field are separated by ";" and fields by "|", in declaration order.
func (v *Validator) ErrorInfo() string {
	parts := make([]string, 0, len(v.failed))
	for _, field := range v.failed {
		parts = append(parts, strings.Join(v.errs[field], ";"))
	}
	return strings.Join(parts, "|")
}

// Overrides returns a copy of the configured message overrides.
func (v *Validator) Overrides() map[string]string {
	return maps.Clone(v.overrides)
}
