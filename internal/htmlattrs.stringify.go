package internal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Stringify renders a non-string attribute value. Strings are returned
// as-is; escaping is the caller's concern. Slices are joined with a single
// space, matching class-list syntax, not with commas.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return StringValueEmpty
	case string:
		return v
	case bool:
		if v {
			return StringValueTrue
		}
		return StringValueFalse
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	case map[string]any:
		return stringifyMap(v)
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return stringifyMap(m)
	case []string:
		return strings.Join(v, StringItemSep)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = Stringify(item)
		}
		return strings.Join(parts, StringItemSep)
	default:
		return fmt.Sprint(v)
	}
}

// StringifyPairs renders ordered key/value pairs in Go's map notation.
func StringifyPairs(keys []string, values []any) string {
	var b strings.Builder
	b.WriteString(StringMapOpen)
	for i, k := range keys {
		if i > 0 {
			b.WriteString(StringItemSep)
		}
		b.WriteString(k)
		b.WriteString(StringPairSep)
		b.WriteString(Stringify(values[i]))
	}
	b.WriteString(StringMapClose)
	return b.String()
}

func stringifyMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]any, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	return StringifyPairs(keys, values)
}
