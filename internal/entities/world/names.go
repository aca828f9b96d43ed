package world

import "strings"

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// indexNames builds a case-insensitive lookup table for a string enum
func indexNames[T ~string](values []T) map[string]T {
	idx := make(map[string]T, len(values))
	for _, v := range values {
		idx[normalizeName(string(v))] = v
	}
	return idx
}

func namesOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
