package clean

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var lower = cases.Lower(language.Und)

// Name returns the index key form of s: NFC-normalized, case-folded, with
// every rune that is not a letter or digit discarded.
//
// Name("Legal Person") == Name("legal-person") == Name("LEGAL_PERSON")
func Name(s string) string {
	normalized := norm.NFC.String(s)
	folded := lower.String(normalized)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Capitalize uppercases the leading rune of a clean name, the display-name
// form Expand synthesizes for a brand-new entity from a catalog key (spec
// §4.6: "name = capitalized clean_name"). Name's output is already a single
// lowercase run with every separator stripped, so there is never more than
// one rune to touch.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
