package intent

import (
	"strings"
	"unicode"
)

// tokenize lowercases text and splits it on anything that is not a letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// normalizedText is the padded, single-spaced token string used for phrase matching.
// Padding lets a phrase be matched on word boundaries with a plain substring search.
func normalizedText(tokens []string) string {
	return " " + strings.Join(tokens, " ") + " "
}

// Tokens returns the lowercase word tokens of text, split the same way the
// classifier splits them.
func Tokens(text string) []string {
	return tokenize(text)
}
