// Package normalize derives comparison keys from free-text player and team names.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonASCII = runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })

// foldASCII decomposes to compatibility form and drops whatever is left
// outside ASCII: combining marks and letters with no ASCII decomposition.
// A chain buffers between its stages, so every call gets its own.
func foldASCII() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(nonASCII))
}

var stripPunctuation = strings.NewReplacer(".", "", "'", "", "*", "")

// Name returns the matching key for a player or team name.
//
// "  Nikola  Jokić* " and "nikola jokic" share the key "nikola jokic".
// Lower-casing runs after the ASCII fold so that compatibility characters
// which decompose to upper case still fold to the same key.
func Name(name string) string {
	if name == "" {
		return ""
	}
	folded, _, err := transform.String(foldASCII(), name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(folded)
	folded = stripPunctuation.Replace(folded)
	return strings.Join(strings.Fields(folded), " ")
}
