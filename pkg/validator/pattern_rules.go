package validator

import (
	"fmt"
	"regexp"
	"strings"
)

const regexFlags = "gimsuy"

// compilePattern accepts a compiled *regexp.Regexp, a bare pattern, or a
// "/pattern/flags" literal. Flags i, m and s map to Go inline flags; g, u
// and y have no meaning for a single match and are ignored.
func compilePattern(p any) (*regexp.Regexp, error) {
	switch t := p.(type) {
	case *regexp.Regexp:
		if t == nil {
			return nil, fmt.Errorf("regex parameter is nil")
		}
		return t, nil
	}
	src, ok := toText(p)
	if !ok {
		return nil, fmt.Errorf("regex parameter must be a pattern, got %T", p)
	}
	if body, flags, ok := splitDelimited(src); ok {
		src = inlineFlags(flags) + body
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", src, err)
	}
	return re, nil
}

// splitDelimited unwraps "/body/flags". It reports false when s is not in
// the delimited form, including when the tail holds anything but regex flags.
func splitDelimited(s string) (body, flags string, ok bool) {
	if len(s) < 2 || s[0] != '/' {
		return "", "", false
	}
	end := strings.LastIndexByte(s, '/')
	if end <= 0 {
		return "", "", false
	}
	flags = s[end+1:]
	for _, r := range flags {
		if !strings.ContainsRune(regexFlags, r) {
			return "", "", false
		}
	}
	return s[1:end], flags, true
}

func inlineFlags(flags string) string {
	var b strings.Builder
	for _, f := range "ims" {
		if strings.ContainsRune(flags, f) {
			b.WriteRune(f)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "(?" + b.String() + ")"
}

func checkRegex(value any, params []any, _ Record) (bool, error) {
	re, err := compilePattern(params[0])
	if err != nil {
		return false, &SpecificationError{Reason: err.Error()}
	}
	s, ok := toText(value)
	if !ok {
		return false, nil
	}
	return re.MatchString(s), nil
}
