// Package commalist converts the free-text comma-separated lists the
// dashboard forms use (achievements, technologies) to and from ordered
// string slices. The round trip is lossless as long as items themselves
// contain no commas.
package commalist

import "strings"

// Split parses "a, b,  c" into ["a","b","c"]: items are trimmed and
// empty items dropped. An all-whitespace input yields an empty slice,
// never nil.
func Split(s string) []string {
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if item := strings.TrimSpace(p); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Join renders the canonical edit-form representation: "a, b, c".
func Join(items []string) string {
	return strings.Join(items, ", ")
}
