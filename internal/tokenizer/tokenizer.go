// Package tokenizer splits raw text into ordered word and punctuation tokens.
//
// Segmentation is whitespace- and punctuation-driven only: no case folding,
// no stemming. Morphological variance is absorbed downstream by the fuzzy
// trigger matching in the knowledge base, so the tokenizer must leave
// word-internal script characters (including Sinhala combining marks and
// zero-width joiners) intact.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
)

// Zero-width joiner/non-joiner occur inside Sinhala conjunct clusters and
// must not split a word.
const (
	zwj  = '‍'
	zwnj = '‌'
)

// Tokenize splits text into an ordered token sequence. Punctuation becomes
// its own token. Empty or whitespace-only input yields an empty sequence,
// never an error. Tokenizing the same string twice yields identical output.
func Tokenize(text string) []domain.Token {
	var tokens []domain.Token
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, domain.Token{Text: word.String(), Index: len(tokens)})
			word.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
		case isWordRune(r):
			word.WriteRune(r)
		default:
			flush()
			tokens = append(tokens, domain.Token{Text: string(r), Index: len(tokens)})
		}
	}
	flush()

	return tokens
}

func isWordRune(r rune) bool {
	if r == zwj || r == zwnj {
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
