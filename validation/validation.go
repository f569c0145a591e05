package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"garment-flow/apperr"
)

// Field validators used by the repositories before anything touches the
// database. They accept interface{} because form submissions may deliver
// numbers as strings; a string that survives coercion as NaN is rejected.

// RequireNumber checks the value is present, numeric and not negative,
// and returns the coerced number.
func RequireNumber(value interface{}, field string) (float64, error) {
	if value == nil {
		return 0, apperr.Validationf("%s is required", field)
	}

	var num float64
	switch v := value.(type) {
	case float64:
		num = v
	case float32:
		num = float64(v)
	case int:
		num = float64(v)
	case int64:
		num = float64(v)
	case uint:
		num = float64(v)
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, apperr.Validationf("%s is required", field)
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, apperr.Validationf("%s must be a valid number", field)
		}
		num = parsed
	default:
		return 0, apperr.Validationf("%s must be a valid number", field)
	}

	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, apperr.Validationf("%s must be a valid number", field)
	}
	if num < 0 {
		return 0, apperr.Validationf("%s cannot be negative", field)
	}
	return num, nil
}

// RequireInteger applies RequireNumber and additionally rejects values
// with a fractional part.
func RequireInteger(value interface{}, field string) (int, error) {
	num, err := RequireNumber(value, field)
	if err != nil {
		return 0, err
	}
	if num != math.Trunc(num) {
		return 0, apperr.Validationf("%s must be a whole number", field)
	}
	return int(num), nil
}

// RequireString checks the value is present and its trimmed length is at
// least minLength.
func RequireString(value interface{}, field string, minLength int) (string, error) {
	if value == nil {
		return "", apperr.Validationf("%s is required", field)
	}
	str := strings.TrimSpace(fmt.Sprintf("%v", value))
	if str == "" {
		return "", apperr.Validationf("%s cannot be empty", field)
	}
	if len(str) < minLength {
		return "", apperr.Validationf("%s must be at least %d characters", field, minLength)
	}
	return str, nil
}

// RequireFields fails on the first missing key in obj, naming the field.
func RequireFields(obj map[string]interface{}, fields []string) error {
	for _, field := range fields {
		if v, ok := obj[field]; !ok || v == nil {
			return apperr.Validationf("Missing required field: %s", field)
		}
	}
	return nil
}
