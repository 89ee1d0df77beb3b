package render

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

func isFunctionLiteral(s string) bool {
	return strings.HasPrefix(strings.TrimLeft(s, " \t\r\n"), "function")
}

// containsFunction walks marshaled grid arguments and reports whether
// any string value, at any depth, is a function literal.
func containsFunction(raw []byte) bool {
	return anyFunction(gjson.ParseBytes(raw))
}

func anyFunction(res gjson.Result) bool {
	if res.Type == gjson.String {
		return isFunctionLiteral(res.Str)
	}
	if res.IsObject() || res.IsArray() {
		found := false
		res.ForEach(func(_, v gjson.Result) bool {
			if anyFunction(v) {
				found = true
				return false
			}
			return true
		})
		return found
	}
	return false
}

// dumpWithFunctions serializes grid arguments to JSON, except that
// string values starting with "function" are spliced in unquoted so
// the page evaluates them. Map keys are emitted sorted to keep the
// output deterministic.
func dumpWithFunctions(v any) (string, error) {
	switch x := v.(type) {
	case string:
		if isFunctionLiteral(x) {
			return x, nil
		}
	case []any:
		parts := make([]string, len(x))
		for i, item := range x {
			s, err := dumpWithFunctions(item)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			s, err := dumpWithFunctions(x[k])
			if err != nil {
				return "", err
			}
			parts[i] = `"` + k + `": ` + s
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
