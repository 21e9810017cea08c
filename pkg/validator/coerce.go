package validator

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// Coercion rules shared by the predicates:
//
//   - toNumber: Go numeric kinds, json.Number and strings accepted by
//     strconv.ParseFloat (after trimming spaces). Booleans are never numbers.
//   - toText: strings, []byte, fmt.Stringer and scalars accepted by
//     cast.ToStringE. Slices and maps have no text form.
//   - compareValues: numeric comparison when both sides are numbers,
//     lexicographic comparison when both have a text form, otherwise the
//     values are not comparable and the predicate fails.

func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(v)
		return f, err == nil
	}
	return 0, false
}

func toText(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case []byte:
		return string(t), true
	case fmt.Stringer:
		return t.String(), true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct, reflect.Func, reflect.Chan:
		return "", false
	}
	s, err := cast.ToStringE(v)
	return s, err == nil
}

// toInt converts a rule parameter to an int. Strings are parsed in base 10.
func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	}
	f, ok := toNumber(v)
	if !ok || f != math.Trunc(f) || f < math.MinInt || f >= -math.MinInt {
		return 0, false
	}
	n, err := cast.ToIntE(v)
	return n, err == nil
}

func compareValues(a, b any) (int, bool) {
	if x, ok := toNumber(a); ok {
		if y, ok := toNumber(b); ok {
			if math.IsNaN(x) || math.IsNaN(y) {
				return 0, false
			}
			return cmp.Compare(x, y), true
		}
	}
	x, okA := toText(a)
	y, okB := toText(b)
	if !okA || !okB {
		return 0, false
	}
	return strings.Compare(x, y), true
}

// equalValues compares two resolved values. Absent values are equal only to
// each other.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if c, ok := compareValues(a, b); ok {
		return c == 0
	}
	return reflect.DeepEqual(a, b)
}

// lengthOf returns the element count of slices, arrays and maps, or the
// rune count of the value's text form.
func lengthOf(v any) (int, bool) {
	if v == nil {
		return 0, true
	}
	switch t := v.(type) {
	case string:
		return utf8.RuneCountInString(t), true
	case []byte:
		return utf8.RuneCount(t), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	s, ok := toText(v)
	if !ok {
		return 0, false
	}
	return utf8.RuneCountInString(s), true
}

func paramText(params []any) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, paramString(p))
	}
	return strings.Join(parts, ",")
}

func paramString(p any) string {
	if s, ok := toText(p); ok {
		return s
	}
	return fmt.Sprint(p)
}
