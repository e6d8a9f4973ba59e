package lessons

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Submissions arrive as untyped JSON/YAML trees; these helpers read them
// without panicking on unexpected shapes.

func stringFromAny(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}

func intFromAny(v any, def int) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case json.Number:
		i, _ := t.Int64()
		return int(i)
	default:
		return def
	}
}

func sliceAny(v any) []any {
	if arr, ok := v.([]any); ok {
		return arr
	}
	return nil
}

func mapFromAny(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// stringKeys rewrites a YAML-decoded tree in place so every mapping is a
// map[string]any. Non-string keys are formatted with fmt.Sprint.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = stringKeys(e)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = stringKeys(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = stringKeys(e)
		}
		return t
	}
	return v
}

func stringsFromAny(v any) []string {
	arr := sliceAny(v)
	if arr == nil {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, it := range arr {
		out = append(out, stringFromAny(it))
	}
	return out
}

// truthy mirrors how the submission authors' tooling treats presence:
// empty strings, zero numbers, false and null are absent; lists and
// objects are present even when empty.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case int:
		return t != 0
	case int64:
		return t != 0
	case json.Number:
		return t.String() != "0"
	default:
		return true
	}
}

// firstTruthy returns the first present value, or nil.
func firstTruthy(vals ...any) any {
	for _, v := range vals {
		if truthy(v) {
			return v
		}
	}
	return nil
}

func firstString(vals ...any) string {
	return stringFromAny(firstTruthy(vals...))
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// decodeInto converts an untyped tree into v through a JSON round trip.
func decodeInto(raw any, v any) error {
	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
