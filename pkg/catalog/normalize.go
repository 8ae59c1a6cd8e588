package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gnames/gnlib"
	"golang.org/x/text/cases"
)

// CapitalizeTitle uppercases the first letter of every space-separated
// word and lowercases the rest.
func CapitalizeTitle(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = capitalize(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

// CapitalizeScientific trims and lowercases a scientific name, leaving
// only the first letter (the genus) capitalized. Internal whitespace is
// collapsed.
func CapitalizeScientific(s string) string {
	s = gnlib.FixUtf8(s)
	s = strings.Join(strings.Fields(s), " ")
	return capitalize(strings.ToLower(s))
}

// NormalizeUseName trims the name, collapses internal whitespace and
// capitalizes every word.
func NormalizeUseName(s string) string {
	s = gnlib.FixUtf8(s)
	s = strings.Join(strings.Fields(s), " ")
	return CapitalizeTitle(s)
}

// NameKey returns the case-folded form of a name. Names with equal keys
// are duplicates. Folding covers the whole of Unicode, so "Érable" and
// "ÉRABLE" share a key.
func NameKey(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return cases.Fold().String(s)
}

// NormalizeUseNames converts free-text medicinal use names into a clean
// list. Entries are split on commas, normalized by NormalizeUseName,
// empty entries are dropped and case-insensitive duplicates removed.
// The order of first appearance is kept.
func NormalizeUseNames(names []string) []string {
	res := make([]string, 0, len(names))
	seen := make(map[string]struct{})
	for _, raw := range names {
		for part := range strings.SplitSeq(raw, ",") {
			name := NormalizeUseName(part)
			if name == "" {
				continue
			}
			key := NameKey(name)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			res = append(res, name)
		}
	}
	return res
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
