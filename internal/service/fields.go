package service

import (
	"fmt"
	"strconv"
	"strings"
)

// floatField coerces a decoded JSON value to float64. Absent fields
// default to zero, anything non-numeric is a validation error.
func floatField(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case string:
		if strings.TrimSpace(x) == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: Invalid numeric values", ErrValidation)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: Invalid numeric values", ErrValidation)
	}
}

func intField(v any) (int, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return int(x), nil
	case int:
		return x, nil
	case string:
		if strings.TrimSpace(x) == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, fmt.Errorf("%w: Invalid numeric values", ErrValidation)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: Invalid numeric values", ErrValidation)
	}
}

// present reports whether a request field carried any value at all,
// "" and nil both count as missing.
func present(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return false
	}
	return true
}
