package similarity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransform strips combining marks so accented and plain spellings of the
// same name compare equal ("Café" vs "Cafe").
var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName lowercases a name, strips diacritics, and collapses runs of
// whitespace. It is applied to both sides before scoring so the similarity
// threshold is not sensitive to casing or accent differences.
func NormalizeName(s string) string {
	folded, _, err := transform.String(foldTransform, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// Score normalizes both names and returns their Jaro-Winkler similarity.
func Score(a, b string) float64 {
	return JaroWinkler(NormalizeName(a), NormalizeName(b))
}
