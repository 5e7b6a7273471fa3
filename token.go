package dragnet

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Token is a normalized word unit compared by equality during alignment.
type Token string

// Tokenize splits text on whitespace and normalizes each word: NFKC
// normalization, Unicode case folding, and removal of punctuation and
// symbol runes. Words that normalize to nothing are dropped.
func Tokenize(text string) []Token {
	return TokenizeWords(strings.Fields(text))
}

// TokenizeWords normalizes already-split words. See Tokenize.
func TokenizeWords(words []string) []Token {
	if len(words) == 0 {
		return nil
	}
	folder := cases.Fold()
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		if t := normalizeWord(folder, w); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// NormalizeWord returns the token for a single word, or "" if nothing is left.
func NormalizeWord(word string) Token {
	return normalizeWord(cases.Fold(), word)
}

func normalizeWord(folder cases.Caser, w string) Token {
	w = folder.String(norm.NFKC.String(w))
	var sb strings.Builder
	sb.Grow(len(w))
	for _, r := range w {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r) || unicode.IsControl(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return Token(sb.String())
}
