package filters

import (
	"net/url"
	"sort"
	"strings"
)

// Params is the decoded request parameter bag. Values are string, []string
// or nested map[string]any.
type Params map[string]any

// FromQuery decodes a query string into a Params bag. Bracketed keys nest:
// attributes[color][]=red becomes {"attributes": {"color": ["red"]}} and
// near[lat]=30 becomes {"near": {"lat": "30"}}. Keys ending in [] or
// repeated keys produce lists.
func FromQuery(values url.Values) Params {
	p := Params{}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		vals := values[key]
		if len(vals) == 0 {
			continue
		}
		path, isList := splitKey(key)
		if len(path) == 0 {
			continue
		}

		var v any
		if isList || len(vals) > 1 {
			v = append([]string(nil), vals...)
		} else {
			v = vals[0]
		}
		setPath(p, path, v)
	}
	return p
}

// Get returns the raw value stored under key.
func (p Params) Get(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

func splitKey(key string) ([]string, bool) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return []string{key}, false
	}
	if open == 0 {
		return nil, false
	}

	path := []string{key[:open]}
	rest := key[open:]
	isList := false
	for strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			break
		}
		seg := rest[1:end]
		rest = rest[end+1:]
		if seg == "" {
			isList = true
			continue
		}
		path = append(path, seg)
	}
	return path, isList
}

func setPath(m map[string]any, path []string, v any) {
	for _, k := range path[:len(path)-1] {
		next, ok := m[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[k] = next
		}
		m = next
	}

	last := path[len(path)-1]
	if existing, ok := m[last]; ok {
		m[last] = merge(existing, v)
		return
	}
	m[last] = v
}

func merge(a, b any) any {
	as, aok := toStrings(a)
	bs, bok := toStrings(b)
	if !aok || !bok {
		return b
	}
	return append(as, bs...)
}
