package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// dateRegex matches YYYY-(M)M-(D)D with an optional (H)H:(M)M:(S)S part.
// Slashes are accepted as date separators too.
var dateRegex = regexp.MustCompile(`^(\d+)[-/](\d{1,2})[-/](\d{1,2})(?:\s+(\d{1,2}):(\d{1,2}):(\d{1,2}))?$`)

// parseDate parses a calendar date strictly: the components are rebuilt
// from the normalised time and must match, so "2023-02-30" is rejected.
func parseDate(value any) (time.Time, bool) {
	if t, ok := value.(time.Time); ok {
		return t, !t.IsZero()
	}
	s, ok := toText(value)
	if !ok {
		return time.Time{}, false
	}
	m := dateRegex.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	parts := make([]int, 6)
	for i := 1; i <= 6; i++ {
		if m[i] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i])
		if err != nil {
			return time.Time{}, false
		}
		parts[i-1] = n
	}

	year, month, day := parts[0], parts[1], parts[2]
	hour, minute, second := parts[3], parts[4], parts[5]
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)

	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	if t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, false
	}
	return t, true
}

func checkDate(value any, _ []any, _ Record) (bool, error) {
	_, ok := parseDate(value)
	return ok, nil
}

func boundaryDate(kind string, param any) (time.Time, error) {
	t, ok := parseDate(param)
	if !ok {
		return time.Time{}, &SpecificationError{Reason: fmt.Sprintf("%s expects a date parameter, got %q", kind, paramString(param))}
	}
	return t, nil
}

// checkAfter passes when the value is on or after the parameter date.
func checkAfter(value any, params []any, _ Record) (bool, error) {
	bound, err := boundaryDate("after", params[0])
	if err != nil {
		return false, err
	}
	t, ok := parseDate(value)
	return ok && !t.Before(bound), nil
}

// checkBefore passes when the value is on or before the parameter date.
func checkBefore(value any, params []any, _ Record) (bool, error) {
	bound, err := boundaryDate("before", params[0])
	if err != nil {
		return false, err
	}
	t, ok := parseDate(value)
	return ok && !t.After(bound), nil
}
