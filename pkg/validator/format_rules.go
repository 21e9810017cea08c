package validator

import (
	"github.com/google/uuid"

	playground "github.com/go-playground/validator/v10"
)

// formats checks well-known string formats. *playground.Validate is safe
// for concurrent use and caches parsed tags.
var formats = playground.New()

func checkFormat(value any, tag string) bool {
	s, ok := toText(value)
	if !ok || s == "" {
		return false
	}
	return formats.Var(s, tag) == nil
}

func checkEmail(value any, _ []any, _ Record) (bool, error) {
	return checkFormat(value, "email"), nil
}

func checkURL(value any, _ []any, _ Record) (bool, error) {
	return checkFormat(value, "url"), nil
}

func checkIP(value any, _ []any, _ Record) (bool, error) {
	return checkFormat(value, "ip"), nil
}

// checkUUID accepts the canonical 36-character hyphenated form only.
func checkUUID(value any, _ []any, _ Record) (bool, error) {
	s, ok := toText(value)
	if !ok || len(s) != 36 {
		return false, nil
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false, nil
	}
	_, err := uuid.Parse(s)
	return err == nil, nil
}
