package validino

import "strings"

// DefaultSeparator is the path separator used for dotted keys.
const DefaultSeparator = "."

// DictNest turns a flat map with separated keys into nested maps:
// {"a.b": 1} becomes {"a": {"b": 1}}. Keys are processed in sorted order;
// a scalar that sits where a branch is needed is replaced by the branch.
func DictNest(data map[string]any, sep string) map[string]any {
	if sep == "" {
		sep = DefaultSeparator
	}
	res := make(map[string]any)
	for _, k := range sortedKeys(data) {
		levels := strings.Split(k, sep)
		d := res
		for _, level := range levels[:len(levels)-1] {
			next, ok := d[level].(map[string]any)
			if !ok {
				next = make(map[string]any)
				d[level] = next
			}
			d = next
		}
		leaf := levels[len(levels)-1]
		if _, isBranch := d[leaf].(map[string]any); isBranch {
			continue
		}
		d[leaf] = data[k]
	}
	return res
}

// DictUnnest is the inverse of DictNest: nested maps become separated keys.
func DictUnnest(data map[string]any, sep string) map[string]any {
	if sep == "" {
		sep = DefaultSeparator
	}
	res := make(map[string]any)
	for k, v := range data {
		if m, ok := v.(map[string]any); ok {
			for k1, v1 := range DictUnnest(m, sep) {
				res[k+sep+k1] = v1
			}
			continue
		}
		res[k] = v
	}
	return res
}
