package validator

import "fmt"

func lengthBound(kind string, param any) (int, error) {
	n, ok := toInt(param)
	if !ok {
		return 0, &SpecificationError{Reason: fmt.Sprintf("%s expects an integer parameter, got %q", kind, paramString(param))}
	}
	return n, nil
}

// checkLength matches an exact length with one parameter, or an inclusive
// range with two.
func checkLength(value any, params []any, _ Record) (bool, error) {
	n, ok := lengthOf(value)
	if !ok {
		return false, nil
	}
	if len(params) >= 2 {
		lo, err := lengthBound("length", params[0])
		if err != nil {
			return false, err
		}
		hi, err := lengthBound("length", params[1])
		if err != nil {
			return false, err
		}
		return n >= lo && n <= hi, nil
	}
	exact, err := lengthBound("length", params[0])
	if err != nil {
		return false, err
	}
	return n == exact, nil
}

func checkMax(value any, params []any, _ Record) (bool, error) {
	n, ok := lengthOf(value)
	if !ok {
		return false, nil
	}
	limit, err := lengthBound("max", params[0])
	if err != nil {
		return false, err
	}
	return n <= limit, nil
}

func checkMin(value any, params []any, _ Record) (bool, error) {
	n, ok := lengthOf(value)
	if !ok {
		return false, nil
	}
	limit, err := lengthBound("min", params[0])
	if err != nil {
		return false, err
	}
	return n >= limit, nil
}
