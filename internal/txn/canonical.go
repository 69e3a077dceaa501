package txn

import (
	"encoding/json"
	"sort"
	"strings"
)

// CanonicalJSON serializes a free-form string mapping (agent configuration,
// profile social links) to the single opaque string argument the remote
// functions accept. The canonicalization rule is: keys in lexicographic
// order, compact JSON encoding, so equal inputs always produce equal bytes.
func CanonicalJSON(m map[string]string) string {
	if len(m) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, _ := json.Marshal(k)
		vb, _ := json.Marshal(m[k])
		b.Write(kb)
		b.WriteByte(':')
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.String()
}

// SplitTags normalizes a comma-separated tag string into an ordered list:
// entries are trimmed and empties dropped, relative order preserved.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
