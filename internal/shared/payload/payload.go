// Package payload reads values out of loosely shaped backend JSON objects.
// The backend is inconsistent about field naming (snake_case vs camelCase)
// and about id types (numeric vs string), so every accessor takes a list of
// aliases in priority order and coerces the first present, non-null value.
package payload

import (
	"strconv"
	"strings"
	"time"
)

// Lookup returns the first present, non-nil value among the aliases.
func Lookup(obj map[string]any, aliases ...string) (any, bool) {
	for _, key := range aliases {
		if v, ok := obj[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Str returns the first alias coerced to a string, or "".
func Str(obj map[string]any, aliases ...string) string {
	v, ok := Lookup(obj, aliases...)
	if !ok {
		return ""
	}
	return CoerceString(v)
}

// Num returns the first alias coerced to a float64, or 0.
func Num(obj map[string]any, aliases ...string) float64 {
	v, ok := Lookup(obj, aliases...)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if n {
			return 1
		}
		return 0
	}
	return 0
}

// Int returns the first alias coerced to an int, or 0.
func Int(obj map[string]any, aliases ...string) int {
	return int(Num(obj, aliases...))
}

// Bool returns the first alias coerced to a bool, or false.
func Bool(obj map[string]any, aliases ...string) bool {
	v, ok := Lookup(obj, aliases...)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		return b == "true" || b == "1"
	}
	return false
}

// StrList returns the first alias coerced to a string slice. A missing or
// non-list value yields an empty (non-nil) slice.
func StrList(obj map[string]any, aliases ...string) []string {
	v, ok := Lookup(obj, aliases...)
	if !ok {
		return []string{}
	}
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if item == nil {
				continue
			}
			out = append(out, CoerceString(item))
		}
		return out
	}
	return []string{}
}

// List returns the first alias as a slice of objects, skipping entries that
// are not objects. Missing values yield an empty slice.
func List(obj map[string]any, aliases ...string) []map[string]any {
	v, ok := Lookup(obj, aliases...)
	if !ok {
		return []map[string]any{}
	}
	raw, ok := v.([]any)
	if !ok {
		return []map[string]any{}
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// Timestamp returns the first alias as a string timestamp, or the current
// time in RFC3339 when absent. The now-default is a known imprecision
// carried over from the backend contract, not a claim of accuracy.
func Timestamp(obj map[string]any, aliases ...string) string {
	if s := Str(obj, aliases...); s != "" {
		return s
	}
	return time.Now().UTC().Format(time.RFC3339)
}

// CoerceString stringifies ids and other scalar values the backend may emit
// as either numbers or strings. Integral floats render without a decimal
// point so numeric id 7 becomes "7".
func CoerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	}
	return ""
}

// EqualIDs compares two ids after trimming and stringification. Empty ids
// never match anything, including each other.
func EqualIDs(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return a == b
}
