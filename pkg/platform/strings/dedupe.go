// Package strings holds small helpers for list-valued settings.
package strings

import "strings"

// DedupeAndTrim trims each value and keeps the first occurrence of every
// non-empty one, in input order. Used for comma-separated env lists such as
// "broker-1:9092, broker-2:9092,,broker-1:9092".
func DedupeAndTrim(values []string) []string {
	out := values[:0:0]
	seen := map[string]bool{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
