package strparse

import "math"

// TryParseFloat converts text to float32, failures return zero
func TryParseFloat(text string) (float32, bool) {
	value, ok := parseFloat(text, 32)
	return float32(value), ok
}

// ParseFloat converts text to float32, failures return NaN
func ParseFloat(text *string) (float32, error) {
	if text == nil {
		return 0, absentError("float32")
	}
	if value, ok := TryParseFloat(*text); ok {
		return value, nil
	}
	return float32(math.NaN()), nil
}

// TryParseDouble converts text to float64, failures return zero
func TryParseDouble(text string) (float64, bool) {
	return parseFloat(text, 64)
}

// ParseDouble converts text to float64.
// Failures return math.SmallestNonzeroFloat64 rather than NaN.
func ParseDouble(text *string) (float64, error) {
	if text == nil {
		return 0, absentError("float64")
	}
	if value, ok := TryParseDouble(*text); ok {
		return value, nil
	}
	return math.SmallestNonzeroFloat64, nil
}
