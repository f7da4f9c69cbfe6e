package grid

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Record is one row of tabular data: field name to a displayable value
// (string or number).
type Record map[string]any

// Keys returns the record's field names in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Text returns the display form of the field at key, or "" when absent.
func (r Record) Text(key string) string {
	return FormatValue(r[key])
}

// FormatValue converts a cell value to its display string.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Falsy reports whether v counts as an absent value: nil, the empty string,
// false, or a numeric zero.
func Falsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case json.Number:
		f, err := val.Float64()
		return err == nil && f == 0
	case int:
		return val == 0
	case int64:
		return val == 0
	case int32:
		return val == 0
	case uint:
		return val == 0
	case uint64:
		return val == 0
	case float64:
		return val == 0
	case float32:
		return val == 0
	default:
		return false
	}
}
