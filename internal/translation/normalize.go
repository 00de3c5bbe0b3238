package translation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Normalize returns the canonical comparison form of a field value. Absent and
// falsy values (nil, "", false, numeric zero, empty lists and objects) map to
// the empty string; everything else is stringified and trimmed.
func Normalize(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case bool:
		if !v {
			return ""
		}
		return "True"
	case json.Number:
		if isZeroNumber(string(v)) {
			return ""
		}
		return strings.TrimSpace(v.String())
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		if v == 0 {
			return ""
		}
		return strconv.Itoa(v)
	case int64:
		if v == 0 {
			return ""
		}
		return strconv.FormatInt(v, 10)
	case []any:
		if len(v) == 0 {
			return ""
		}
		return compactJSON(v)
	case map[string]any:
		if len(v) == 0 {
			return ""
		}
		return compactJSON(v)
	case Record:
		if len(v) == 0 {
			return ""
		}
		return compactJSON(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func isZeroNumber(literal string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(literal), 64)
	return err == nil && f == 0
}

func compactJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return strings.TrimSpace(fmt.Sprint(v))
	}
	return strings.TrimSpace(string(data))
}
