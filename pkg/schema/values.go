package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// maxSafeInteger is the largest integer every JSON parser represents exactly.
const maxSafeInteger = 1<<53 - 1

// AsNumber reports whether v is a JSON number and returns its value.
// It accepts float64 (encoding/json default), json.Number (UseNumber) and
// native Go integer and float types for programmatically built values.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		f := float64(n)
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// AsID reports whether v is an integral JSON number usable as a node id.
// Values such as 3.0 and 3e0 are accepted; 3.5 and out-of-range values are not.
func AsID(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return i, true
		}
	}
	f, ok := AsNumber(v)
	if !ok || f != math.Trunc(f) || math.Abs(f) > maxSafeInteger {
		return 0, false
	}
	return int64(f), true
}

func joinPath(parent, field string) string {
	if parent == "" {
		return field
	}
	return parent + "." + field
}

func indexPath(parent, field string, i int) string {
	return fmt.Sprintf("%s[%d]", joinPath(parent, field), i)
}

// typeName describes a decoded JSON value for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	}
	if _, ok := AsNumber(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
