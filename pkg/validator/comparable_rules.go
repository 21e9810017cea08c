package validator

import (
	"golang.org/x/text/cases"
)

// Ordering rules follow compareValues: numeric when both sides are numbers,
// lexicographic otherwise. Incomparable values fail.

func compareWith(value, param any, accept func(int) bool) bool {
	c, ok := compareValues(value, param)
	return ok && accept(c)
}

func checkGt(value any, params []any, _ Record) (bool, error) {
	return compareWith(value, params[0], func(c int) bool { return c > 0 }), nil
}

func checkEgt(value any, params []any, _ Record) (bool, error) {
	return compareWith(value, params[0], func(c int) bool { return c >= 0 }), nil
}

func checkLt(value any, params []any, _ Record) (bool, error) {
	return compareWith(value, params[0], func(c int) bool { return c < 0 }), nil
}

func checkElt(value any, params []any, _ Record) (bool, error) {
	return compareWith(value, params[0], func(c int) bool { return c <= 0 }), nil
}

func checkEq(value any, params []any, _ Record) (bool, error) {
	return equalValues(value, params[0]), nil
}

// checkEqi compares text forms after Unicode case folding.
func checkEqi(value any, params []any, _ Record) (bool, error) {
	a, okA := toText(value)
	b, okB := toText(params[0])
	if !okA || !okB {
		return false, nil
	}
	fold := cases.Fold()
	return fold.String(a) == fold.String(b), nil
}

// checkBetween is inclusive on both ends.
func checkBetween(value any, params []any, _ Record) (bool, error) {
	lo, okLo := compareValues(value, params[0])
	hi, okHi := compareValues(value, params[1])
	return okLo && okHi && lo >= 0 && hi <= 0, nil
}

// checkNotBetween passes when the value lies strictly outside the range.
func checkNotBetween(value any, params []any, _ Record) (bool, error) {
	lo, okLo := compareValues(value, params[0])
	hi, okHi := compareValues(value, params[1])
	return okLo && okHi && (lo < 0 || hi > 0), nil
}

// checkConfirm passes when the value equals the field named by the parameter.
func checkConfirm(value any, params []any, record Record) (bool, error) {
	other, _ := Resolve(record, paramString(params[0]))
	return equalValues(value, other), nil
}

// checkDifferent passes when the value differs from the field named by the parameter.
func checkDifferent(value any, params []any, record Record) (bool, error) {
	other, _ := Resolve(record, paramString(params[0]))
	return !equalValues(value, other), nil
}
