package validator

import (
	"reflect"
	"regexp"
	"slices"
	"strings"
)

// Record is the flat or nested data a Validator checks, e.g. merged
// query and body parameters of a request.
type Record map[string]any

// RuleFunc is a caller-supplied predicate. It receives the resolved field
// value (nil when absent) and the whole record. A non-empty message returned
// together with false replaces the rendered failure message.
//
// Functions must be synchronous and free of side effects.
type RuleFunc func(value any, record Record) (ok bool, message string)

type ruleTag uint8

const (
	tagNamed ruleTag = iota
	tagCallable
)

// Rule is one immutable validation directive: a kind, its parameters and an
// optional message override.
type Rule struct {
	kind    string
	tag     ruleTag
	fn      RuleFunc
	params  []any
	message string
	re      *regexp.Regexp
}

// NewRule returns a named rule. Aliases such as ">" or "same" are resolved
// here. A single slice argument is expanded into the parameter list, so
// NewRule("in", []string{"a", "b"}) and NewRule("in", "a", "b") are equal.
func NewRule(kind string, params ...any) Rule {
	return Rule{
		kind:   ResolveAlias(strings.TrimSpace(kind)),
		tag:    tagNamed,
		params: flattenParams(params),
	}
}

// Func returns a callable rule. The name is used as the rule kind for message
// overrides ("field.name") and logging; it defaults to "func".
func Func(name string, fn RuleFunc) Rule {
	if name == "" {
		name = "func"
	}
	return Rule{kind: name, tag: tagCallable, fn: fn}
}

// BoolFunc adapts a plain boolean predicate into a callable rule.
func BoolFunc(name string, fn func(value any, record Record) bool) Rule {
	if fn == nil {
		return Func(name, nil)
	}
	return Func(name, func(value any, record Record) (bool, string) {
		return fn(value, record), ""
	})
}

// WithMessage returns a copy of the rule carrying msg as its message.
func (r Rule) WithMessage(msg string) Rule {
	r.message = msg
	return r
}

// Kind returns the canonical rule kind, or the function name for callable rules.
func (r Rule) Kind() string { return r.kind }

// Params returns a copy of the rule parameters.
func (r Rule) Params() []any { return slices.Clone(r.params) }

// Message returns the rule-level message override, if any.
func (r Rule) Message() string { return r.message }

// IsFunc reports whether the rule wraps a caller-supplied function.
func (r Rule) IsFunc() bool { return r.tag == tagCallable }

// FieldRules binds an ordered rule list to one field. Field may be a dotted
// path; Title is the display name used in rendered messages.
type FieldRules struct {
	Field string
	Title string
	Rules []Rule
}

func (fr FieldRules) title() string {
	if fr.Title != "" {
		return fr.Title
	}
	return fr.Field
}

// FieldRuleSet is the ordered field-to-rules declaration checked by a Validator.
type FieldRuleSet []FieldRules

// Set builds a FieldRuleSet from already structured entries.
func Set(entries ...FieldRules) FieldRuleSet {
	return FieldRuleSet(entries)
}

// Rules binds structured rules to a field key. The key may carry a
// "field|Display Name" suffix. No parsing takes place.
func Rules(key string, rules ...Rule) FieldRules {
	field, title := splitFieldKey(key)
	return FieldRules{Field: field, Title: title, Rules: rules}
}

// Fields returns the field names in declaration order.
func (s FieldRuleSet) Fields() []string {
	out := make([]string, 0, len(s))
	for _, fr := range s {
		out = append(out, fr.Field)
	}
	return out
}

// Lookup returns the first entry declared for field.
func (s FieldRuleSet) Lookup(field string) (FieldRules, bool) {
	for _, fr := range s {
		if fr.Field == field {
			return fr, true
		}
	}
	return FieldRules{}, false
}

// Merge returns a new set with other appended after s.
func (s FieldRuleSet) Merge(other FieldRuleSet) FieldRuleSet {
	out := make(FieldRuleSet, 0, len(s)+len(other))
	out = append(out, s...)
	return append(out, other...)
}

func splitFieldKey(key string) (field, title string) {
	key = strings.TrimSpace(key)
	if i := strings.Index(key, "|"); i > 0 {
		return strings.TrimSpace(key[:i]), strings.TrimSpace(key[i+1:])
	}
	return key, key
}

func flattenParams(params []any) []any {
	if len(params) != 1 {
		return params
	}
	switch params[0].(type) {
	case nil:
		return nil
	case string, []byte, *regexp.Regexp:
		return params
	}
	rv := reflect.ValueOf(params[0])
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return params
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
