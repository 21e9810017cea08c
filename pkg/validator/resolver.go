package validator

import (
	"math"
	"net/url"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Resolve looks up a dotted path in record. The path is split on its first
// dot and the remainder is resolved against the nested value, so "a.b.c"
// walks two levels of maps. Present but empty values (nil, "", false,
// numeric zero, NaN) are reported as absent; the string "0" is present.
func Resolve(record Record, path string) (any, bool) {
	v, ok := lookup(map[string]any(record), path)
	if !ok || isEmpty(v) {
		return nil, false
	}
	return v, true
}

func lookup(m map[string]any, path string) (any, bool) {
	if m == nil {
		return nil, false
	}
	i := strings.IndexByte(path, '.')
	if i <= 0 {
		v, ok := m[path]
		return v, ok
	}
	v, ok := m[path[:i]]
	if !ok {
		return nil, false
	}
	child, ok := asMap(v)
	if !ok {
		return nil, false
	}
	return lookup(child, path[i+1:])
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case nil, string:
		return nil, false
	case Record:
		return map[string]any(m), true
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	case url.Values:
		return valuesToMap(m), true
	case map[string][]string:
		return valuesToMap(m), true
	}
	out, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, false
	}
	return out, true
}

// valuesToMap flattens single-valued entries to strings and keeps
// repeated ones as []string.
func valuesToMap(values map[string][]string) map[string]any {
	out := make(map[string]any, len(values))
	for k, vs := range values {
		switch len(vs) {
		case 0:
			out[k] = nil
		case 1:
			out[k] = vs[0]
		default:
			out[k] = vs
		}
	}
	return out
}

// isEmpty reports whether v counts as absent for rule evaluation.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
