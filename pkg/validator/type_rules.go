package validator

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// acceptedTokens are the values the accepted rule takes as consent.
var acceptedTokens = []string{"1", "on", "yes"}

func checkRequire(value any, _ []any, _ Record) (bool, error) {
	return !isEmpty(value), nil
}

func checkString(value any, _ []any, _ Record) (bool, error) {
	_, ok := value.(string)
	return ok, nil
}

// checkNumber accepts any value toNumber understands, except NaN.
func checkNumber(value any, _ []any, _ Record) (bool, error) {
	f, ok := toNumber(value)
	return ok && !math.IsNaN(f), nil
}

// checkFloat accepts finite numbers, including whole ones, and numeric strings.
func checkFloat(value any, _ []any, _ Record) (bool, error) {
	f, ok := toNumber(value)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0), nil
}

// checkInteger accepts Go integer kinds, whole floats and base-10 integer strings.
func checkInteger(value any, _ []any, _ Record) (bool, error) {
	if s, ok := value.(string); ok {
		_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		return err == nil, nil
	}
	f, ok := toNumber(value)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
		return false, nil
	}
	return f == math.Trunc(f), nil
}

// checkBoolean accepts bool values, the numbers 0 and 1 and the strings
// "0", "1", "true" and "false".
func checkBoolean(value any, _ []any, _ Record) (bool, error) {
	switch t := value.(type) {
	case bool:
		return true, nil
	case string:
		switch t {
		case "0", "1", "true", "false":
			return true, nil
		}
		return false, nil
	}
	f, ok := toNumber(value)
	return ok && (f == 0 || f == 1), nil
}

func checkArray(value any, _ []any, _ Record) (bool, error) {
	if value == nil {
		return false, nil
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true, nil
	}
	return false, nil
}

func checkAccepted(value any, _ []any, _ Record) (bool, error) {
	s, ok := toText(value)
	if !ok {
		return false, nil
	}
	for _, token := range acceptedTokens {
		if s == token {
			return true, nil
		}
	}
	return false, nil
}
