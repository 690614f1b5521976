package filters

import (
	"math"
	"strconv"
	"strings"
)

// toStrings flattens a scalar or list into a fresh []string.
func toStrings(v any) ([]string, bool) {
	switch x := v.(type) {
	case string:
		return []string{x}, true
	case []string:
		return append([]string(nil), x...), true
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := stringValue(item)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	if s, ok := stringValue(v); ok {
		return []string{s}, true
	}
	return nil, false
}

// stringValue returns the scalar form of v. For lists the first element wins.
func stringValue(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []string:
		if len(x) == 0 {
			return "", false
		}
		return x[0], true
	case []any:
		if len(x) == 0 {
			return "", false
		}
		return stringValue(x[0])
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case bool:
		return strconv.FormatBool(x), true
	}
	return "", false
}

// floatValue parses v as a finite number.
func floatValue(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	default:
		s, ok := stringValue(v)
		if !ok {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// boolValue accepts true/false, 1/0, yes/no and on/off.
func boolValue(v any) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	s, ok := stringValue(v)
	if !ok {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}

func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case Params:
		return x, true
	case map[string]any:
		return x, true
	}
	return nil, false
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with wildcards in s escaped.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
