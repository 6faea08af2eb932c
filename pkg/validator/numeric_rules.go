package validator

import "fmt"

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// Integer validates that value holds one of Go's integer kinds.
// It returns the value converted to int64 alongside the rule so callers can
// chain range checks. Unsigned values above math.MaxInt64 are rejected.
func Integer(field string, value any) (int64, Rule) {
	n, ok := toInt64(value)
	return n, Rule{
		Check: func() bool {
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be an integer",
			TranslationKey: "validation.integer",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return uint64ToInt64(uint64(v))
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return uint64ToInt64(v)
	default:
		return 0, false
	}
}

func uint64ToInt64(v uint64) (int64, bool) {
	if v > 1<<63-1 {
		return 0, false
	}
	return int64(v), true
}
