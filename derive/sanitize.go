package derive

import (
	"strings"

	"github.com/arran4/strings2"
)

// kebabCase converts a Go identifier to the kebab-case used in long
// argument names. Acronyms split on word boundaries: JSONData becomes
// json-data, OptStr becomes opt-str.
func kebabCase(s string) string {
	res, err := strings2.ToKebab(s, strings2.WithNumberSplitting(true))
	if err != nil {
		return strings.ToLower(strings.ReplaceAll(s, "_", "-"))
	}
	return strings.ToLower(res)
}

// snakeCase is kebabCase with underscores, used for generated file names.
func snakeCase(s string) string {
	return strings.ReplaceAll(kebabCase(s), "-", "_")
}

// inferShort picks the implicit short name for a field: the first ASCII
// alphabetic character of its identifier, lowercased. Returns 0 when the
// identifier contains no ASCII letter.
func inferShort(name string) rune {
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r >= 'a' && r <= 'z':
			return r
		}
	}
	return 0
}
