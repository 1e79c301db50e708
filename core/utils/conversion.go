package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ToFloat converts loader option values to float64.
// It handles Go numeric types, json.Number and numeric strings. The second
// result is false when the value cannot be read as a number.
func ToFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case int16:
		return float64(v), true
	case int8:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint8:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	case []byte:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// ToInt converts loader option values to int, truncating fractions.
func ToInt(val any) (int, bool) {
	if s, ok := val.(string); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i, true
		}
	}
	f, ok := ToFloat(val)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts loader option values to bool.
// Numbers are true when non-zero; strings accept "1", "true", "yes", "on" and
// their negatives, case-insensitively.
func ToBool(val any) (bool, bool) {
	switch v := val.(type) {
	case bool:
		return v, true
	case string:
		return parseBool(v)
	case []byte:
		return parseBool(string(v))
	default:
		f, ok := ToFloat(v)
		if !ok {
			return false, false
		}
		return f != 0, true
	}
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off", "":
		return false, true
	default:
		return false, false
	}
}
