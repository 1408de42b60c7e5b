// Package textnorm folds accented characters and normalizes whitespace so
// that name matching against curated tables (chain patterns, guide lists,
// the local-institution table, diaspora street cuisines) is robust to
// inconsistent diacritics in scraped provider data.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips combining diacritical marks (é→e, ç→c, ô→o),
// via NFD decomposition followed by removal of the mark runes.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Stopwords removed when comparing diaspora-street cuisine word lists
// against a record's cuisine, per spec.
var Stopwords = map[string]bool{
	"de": true, "la": true, "le": true, "du": true, "des": true, "l": true, "d": true,
}

// Words splits a folded string into lowercase words, dropping punctuation
// and stopwords.
func Words(s string) []string {
	folded := Fold(s)
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if w == "" || Stopwords[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// WordOverlap reports whether the (stopword-stripped, folded) word sets of a
// and b share at least one word.
func WordOverlap(a, b string) bool {
	bWords := make(map[string]bool)
	for _, w := range Words(b) {
		bWords[w] = true
	}
	for _, w := range Words(a) {
		if bWords[w] {
			return true
		}
	}
	return false
}
