package filters

// Clean drops nil and empty-string members from v and reports whether anything
// meaningful is left. Lists are meaningful when at least one member survives.
// Maps are cleaned entry by entry and are meaningful when at least one entry is.
func Clean(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case string:
		return x, x != ""
	case []string:
		out := make([]string, 0, len(x))
		for _, s := range x {
			if s != "" {
				out = append(out, s)
			}
		}
		return out, len(out) > 0
	case []any:
		out := make([]any, 0, len(x))
		for _, item := range x {
			if cleaned, ok := Clean(item); ok {
				out = append(out, cleaned)
			}
		}
		return out, len(out) > 0
	case Params:
		return cleanMap(x)
	case map[string]any:
		return cleanMap(x)
	default:
		return v, true
	}
}

// Meaningful reports whether v survives Clean.
func Meaningful(v any) bool {
	_, ok := Clean(v)
	return ok
}

func cleanMap(m map[string]any) (any, bool) {
	out := make(map[string]any, len(m))
	for k, item := range m {
		if cleaned, ok := Clean(item); ok {
			out[k] = cleaned
		}
	}
	return out, len(out) > 0
}
