package utils

import "strings"

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeSeat uppercases a seat code and strips all whitespace.
func NormalizeSeat(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

// SplitList splits comma/semicolon separated values into cleaned slices.
// Nothing usable yields nil so callers' omitempty fields stay empty.
func SplitList(raw string) []string {
	var out []string
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
