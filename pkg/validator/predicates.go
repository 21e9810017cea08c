package validator

import (
	"fmt"
	"sort"
)

// predicateFunc checks a present value against its parameters.
type predicateFunc func(value any, params []any, record Record) (bool, error)

type predicate struct {
	check predicateFunc
	// minParams is the number of parameters the kind cannot run without.
	minParams int
	// always marks kinds evaluated even when the value is absent.
	always bool
}

// predicates is the dispatch table of built-in rule kinds. Read-only after init.
var predicates = map[string]predicate{
	// presence and type
	"require":  {check: checkRequire, always: true},
	"string":   {check: checkString},
	"number":   {check: checkNumber},
	"float":    {check: checkFloat},
	"integer":  {check: checkInteger},
	"boolean":  {check: checkBoolean},
	"array":    {check: checkArray},
	"accepted": {check: checkAccepted},

	// formats
	"email": {check: checkEmail},
	"url":   {check: checkURL},
	"ip":    {check: checkIP},
	"uuid":  {check: checkUUID},

	// character classes
	"alpha":       {check: matchClass(alphaRegex)},
	"alphaNum":    {check: matchClass(alphaNumRegex)},
	"alphaDash":   {check: matchClass(alphaDashRegex)},
	"chs":         {check: matchClass(chsRegex)},
	"chsAlpha":    {check: matchClass(chsAlphaRegex)},
	"chsAlphaNum": {check: matchClass(chsAlphaNumRegex)},
	"chsDash":     {check: matchClass(chsDashRegex)},

	// dates
	"date":   {check: checkDate},
	"after":  {check: checkAfter, minParams: 1},
	"before": {check: checkBefore, minParams: 1},

	// membership and ranges
	"in":         {check: checkIn, minParams: 1},
	"notIn":      {check: checkNotIn, minParams: 1},
	"between":    {check: checkBetween, minParams: 2},
	"notBetween": {check: checkNotBetween, minParams: 2},

	// length
	"length": {check: checkLength, minParams: 1},
	"max":    {check: checkMax, minParams: 1},
	"min":    {check: checkMin, minParams: 1},

	// cross-field
	"confirm":   {check: checkConfirm, minParams: 1, always: true},
	"different": {check: checkDifferent, minParams: 1, always: true},

	// comparison
	"gt":  {check: checkGt, minParams: 1},
	"egt": {check: checkEgt, minParams: 1},
	"lt":  {check: checkLt, minParams: 1},
	"elt": {check: checkElt, minParams: 1},
	"eq":  {check: checkEq, minParams: 1},
	"eqi": {check: checkEqi, minParams: 1},

	// pattern
	"regex": {check: checkRegex, minParams: 1},
}

// KnownKind reports whether kind, after alias resolution, has a built-in predicate.
func KnownKind(kind string) bool {
	_, ok := predicates[ResolveAlias(kind)]
	return ok
}

// Kinds returns the sorted names of all built-in rule kinds.
func Kinds() []string {
	out := make([]string, 0, len(predicates))
	for k := range predicates {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Evaluate runs a single rule against value. Rules other than require,
// confirm, different and callable rules pass when the value is absent.
// A false result is a validation failure, not an error; errors signal a
// broken rule declaration.
func Evaluate(rule Rule, value any, record Record) (bool, error) {
	ok, _, err := evaluate(rule, value, record)
	return ok, err
}

func evaluate(rule Rule, value any, record Record) (bool, string, error) {
	if isEmpty(value) {
		value = nil
	}
	if rule.tag == tagCallable {
		if rule.fn == nil {
			return false, "", &SpecificationError{Reason: fmt.Sprintf("rule %q has a nil function", rule.kind)}
		}
		ok, msg := rule.fn(value, record)
		return ok, msg, nil
	}

	kind := ResolveAlias(rule.kind)
	p, found := predicates[kind]
	if !found {
		return false, "", &UnknownRuleError{Kind: rule.kind}
	}
	if len(rule.params) < p.minParams {
		return false, "", missingParams(kind)
	}
	if value == nil && !p.always {
		return true, "", nil
	}

	params := rule.params
	if kind == "regex" && rule.re != nil {
		params = []any{rule.re}
	}
	ok, err := p.check(value, params, record)
	return ok, "", err
}

// prepare validates a rule declaration once, ahead of any evaluation: the
// kind must be known, required parameters present and patterns compilable.
func prepare(field string, rule Rule) (Rule, error) {
	if rule.tag == tagCallable {
		if rule.fn == nil {
			return rule, &SpecificationError{Field: field, Reason: fmt.Sprintf("rule %q has a nil function", rule.kind)}
		}
		return rule, nil
	}
	if rule.kind == "" {
		return rule, &SpecificationError{Field: field, Reason: "rule has no kind"}
	}
	rule.kind = ResolveAlias(rule.kind)
	p, ok := predicates[rule.kind]
	if !ok {
		return rule, &UnknownRuleError{Kind: rule.kind}
	}
	if len(rule.params) < p.minParams {
		return rule, fmt.Errorf("field %q: %w", field, missingParams(rule.kind))
	}
	if rule.kind == "regex" && rule.re == nil {
		re, err := compilePattern(rule.params[0])
		if err != nil {
			return rule, &SpecificationError{Field: field, Reason: err.Error()}
		}
		rule.re = re
	}
	return rule, nil
}
