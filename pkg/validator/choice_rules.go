package validator

// in and notIn compare text forms: the value and every list entry are
// stringified before the membership test, so 1 matches "1".

func inList(value any, params []any) (bool, bool) {
	s, ok := toText(value)
	if !ok {
		return false, false
	}
	for _, p := range params {
		if allowed, ok := toText(p); ok && allowed == s {
			return true, true
		}
	}
	return false, true
}

func checkIn(value any, params []any, _ Record) (bool, error) {
	found, _ := inList(value, params)
	return found, nil
}

func checkNotIn(value any, params []any, _ Record) (bool, error) {
	found, comparable := inList(value, params)
	return comparable && !found, nil
}
