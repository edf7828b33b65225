// Package slug derives URL slugs from titles. The same derivation is used by the
// importer and by every model's pre-save hook, so equivalent titles always map to
// the same identifier.
package slug

import "strings"

// turkishFold maps the Turkish letters to their ASCII counterparts. Everything
// else outside [a-z0-9 -] is dropped, not transliterated.
var turkishFold = map[rune]rune{
	'ı': 'i', 'İ': 'i',
	'ğ': 'g', 'Ğ': 'g',
	'ş': 's', 'Ş': 's',
	'ç': 'c', 'Ç': 'c',
	'ö': 'o', 'Ö': 'o',
	'ü': 'u', 'Ü': 'u',
}

// Make converts a title into a slug: Turkish letters folded to ASCII, lowercased,
// characters outside [a-z0-9 -] stripped, whitespace runs collapsed to single
// hyphens, leading/trailing hyphens trimmed.
func Make(title string) string {
	var sb strings.Builder
	sb.Grow(len(title))
	for _, r := range title {
		if folded, ok := turkishFold[r]; ok {
			r = folded
		}
		switch {
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r + ('a' - 'A'))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '-', r == '\t', r == '\n':
			sb.WriteRune(r)
		}
	}

	fields := strings.Fields(sb.String())
	s := strings.Join(fields, "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}
