package validator

import "regexp"

// Character-class patterns. The chs family covers the CJK Unified
// Ideographs block U+4E00..U+9FA5.
var (
	alphaRegex       = regexp.MustCompile(`^[A-Za-z]+$`)
	alphaNumRegex    = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	alphaDashRegex   = regexp.MustCompile(`^[A-Za-z0-9\-_]+$`)
	chsRegex         = regexp.MustCompile(`^[\x{4e00}-\x{9fa5}]+$`)
	chsAlphaRegex    = regexp.MustCompile(`^[\x{4e00}-\x{9fa5}a-zA-Z]+$`)
	chsAlphaNumRegex = regexp.MustCompile(`^[\x{4e00}-\x{9fa5}a-zA-Z0-9]+$`)
	chsDashRegex     = regexp.MustCompile(`^[\x{4e00}-\x{9fa5}a-zA-Z0-9_\-]+$`)
)

func matchClass(re *regexp.Regexp) predicateFunc {
	return func(value any, _ []any, _ Record) (bool, error) {
		s, ok := toText(value)
		if !ok {
			return false, nil
		}
		return re.MatchString(s), nil
	}
}
