package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Parse builds a FieldRuleSet from the compact grammar. Arguments are
// key/value pairs in declaration order:
//
//	set, err := validator.Parse(
//		"name|Name", "require|length:3,4",
//		"age", "number|between:1,120",
//		"password2", "require|confirm:password",
//	)
//
// Each rule string is split on "|". A token "kind:p1,p2" names a kind and a
// comma-separated parameter list; a token without a colon is a zero-parameter
// kind when known and an inline regular expression otherwise. Tokens written
// as "/pattern/flags" are always regular expressions and are never split on
// commas.
func Parse(kv ...string) (FieldRuleSet, error) {
	if len(kv)%2 != 0 {
		return nil, &SpecificationError{Field: kv[len(kv)-1], Reason: "rule specification has no rules"}
	}
	set := make(FieldRuleSet, 0, len(kv)/2)
	var errs []error
	for i := 0; i < len(kv); i += 2 {
		fr, err := ParseField(kv[i], kv[i+1])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		set = append(set, fr)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return set, nil
}

// MustParse is like Parse but panics on a malformed specification.
func MustParse(kv ...string) FieldRuleSet {
	set, err := Parse(kv...)
	if err != nil {
		panic(err)
	}
	return set
}

// ParseField parses the compact rule string of a single field key.
func ParseField(key, spec string) (FieldRules, error) {
	field, title := splitFieldKey(key)
	if field == "" {
		return FieldRules{}, &SpecificationError{Reason: fmt.Sprintf("empty field name in key %q", key)}
	}
	fr := FieldRules{Field: field, Title: title}
	for _, token := range splitTokens(spec) {
		rule, err := prepare(field, parseToken(token))
		if err != nil {
			return FieldRules{}, err
		}
		fr.Rules = append(fr.Rules, rule)
	}
	return fr, nil
}

// ParseFieldMessages parses a compact rule string and attaches messages to
// its rules by position. A single message applies to every rule; empty
// entries leave the rule on its catalog message.
func ParseFieldMessages(key, spec string, msgs ...string) (FieldRules, error) {
	fr, err := ParseField(key, spec)
	if err != nil {
		return FieldRules{}, err
	}
	if len(msgs) > 1 && len(msgs) != len(fr.Rules) {
		return FieldRules{}, &SpecificationError{Field: fr.Field, Reason: fmt.Sprintf("%d messages for %d rules", len(msgs), len(fr.Rules))}
	}
	for i := range fr.Rules {
		msg := ""
		switch len(msgs) {
		case 0:
		case 1:
			msg = msgs[0]
		default:
			msg = msgs[i]
		}
		if msg != "" {
			fr.Rules[i] = fr.Rules[i].WithMessage(msg)
		}
	}
	return fr, nil
}

// ParseTuples builds field rules from structured entries of the form
// [kind-or-function, params, message]. The kind may be a string (aliases
// allowed), a Rule, a RuleFunc or a func(any, Record) bool. Params may be
// nil, a scalar or a slice; message is an optional string.
func ParseTuples(key string, tuples ...[]any) (FieldRules, error) {
	field, title := splitFieldKey(key)
	if field == "" {
		return FieldRules{}, &SpecificationError{Reason: fmt.Sprintf("empty field name in key %q", key)}
	}
	fr := FieldRules{Field: field, Title: title}
	for i, tuple := range tuples {
		rule, err := tupleRule(field, i, tuple)
		if err != nil {
			return FieldRules{}, err
		}
		if rule, err = prepare(field, rule); err != nil {
			return FieldRules{}, err
		}
		fr.Rules = append(fr.Rules, rule)
	}
	return fr, nil
}

func tupleRule(field string, i int, tuple []any) (Rule, error) {
	if len(tuple) == 0 {
		return Rule{}, &SpecificationError{Field: field, Reason: fmt.Sprintf("rule #%d is empty", i)}
	}

	var rule Rule
	switch head := tuple[0].(type) {
	case Rule:
		rule = head
	case RuleFunc:
		rule = Func("", head)
	case func(any, Record) (bool, string):
		rule = Func("", head)
	case func(any, Record) bool:
		rule = BoolFunc("", head)
	case string:
		if strings.TrimSpace(head) == "" {
			return Rule{}, &SpecificationError{Field: field, Reason: fmt.Sprintf("rule #%d has an empty kind", i)}
		}
		rule = NewRule(head)
	default:
		return Rule{}, &SpecificationError{Field: field, Reason: fmt.Sprintf("rule #%d has no resolvable kind (got %T)", i, tuple[0])}
	}

	if len(tuple) > 1 && tuple[1] != nil && !rule.IsFunc() {
		rule.params = flattenParams([]any{tuple[1]})
	}
	if len(tuple) > 2 {
		switch msg := tuple[2].(type) {
		case nil:
		case string:
			rule.message = msg
		default:
			return Rule{}, &SpecificationError{Field: field, Reason: fmt.Sprintf("rule #%d message must be a string, got %T", i, tuple[2])}
		}
	}
	return rule, nil
}

func parseToken(token string) Rule {
	if strings.HasPrefix(token, "/") {
		return Rule{kind: "regex", params: []any{token}}
	}
	if i := strings.Index(token, ":"); i > 0 {
		kind := ResolveAlias(token[:i])
		return Rule{kind: kind, params: splitParams(kind, token[i+1:])}
	}
	if kind := ResolveAlias(token); KnownKind(kind) {
		return Rule{kind: kind}
	}
	return Rule{kind: "regex", params: []any{token}}
}

func splitParams(kind, raw string) []any {
	if raw == "" {
		return nil
	}
	if kind == "regex" {
		return []any{raw}
	}
	parts := strings.Split(raw, ",")
	out := make([]any, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// splitTokens splits a rule string on "|" while keeping "/pattern/flags"
// tokens (bare or after "regex:") intact even when the pattern contains "|".
func splitTokens(spec string) []string {
	var tokens []string
	for rest := strings.TrimSpace(spec); rest != ""; {
		var token string
		token, rest = nextToken(rest)
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func nextToken(s string) (token, rest string) {
	start := -1
	switch {
	case strings.HasPrefix(s, "/"):
		start = 0
	case strings.HasPrefix(s, "regex:/"):
		start = len("regex:")
	}
	if start >= 0 {
		if end, ok := delimitedEnd(s, start); ok {
			return s[:end], strings.TrimPrefix(s[end:], "|")
		}
	}
	if i := strings.IndexByte(s, '|'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// delimitedEnd finds the end of a "/body/flags" literal beginning at start:
// the first unescaped "/" that is followed by flags and then "|" or the end.
func delimitedEnd(s string, start int) (int, bool) {
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '/':
			j := i + 1
			for j < len(s) && strings.IndexByte(regexFlags, s[j]) >= 0 {
				j++
			}
			if j == len(s) || s[j] == '|' {
				return j, true
			}
		}
	}
	return 0, false
}
