// Package filter drops stopwords, digits-only tokens, and short tokens from
// a token sequence, either destructively or by producing a fresh copy.
package filter

import (
	"unicode/utf8"

	"github.com/cognicore/lexifreq/pkg/lexifreq/stopword"
)

const minCodepoints = 2

// Valid reports whether tok should be kept: at least two codepoints, not
// composed entirely of ASCII digits, and not a stopword.
func Valid(tok string, stops *stopword.Set) bool {
	if utf8.RuneCountInString(tok) < minCodepoints {
		return false
	}
	if isDigitsOnly(tok) {
		return false
	}
	if stops.Contains(tok) {
		return false
	}
	return true
}

// Copy returns a new slice containing only the tokens that pass Valid,
// leaving the input sequence untouched. Bigram counting needs the raw
// sequence preserved while word counting consumes the filtered one, so this
// non-destructive variant is what the orchestrator uses on every page.
func Copy(tokens []string, stops *stopword.Set) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if Valid(tok, stops) {
			out = append(out, tok)
		}
	}
	return out
}

// InPlace filters tokens in place, returning the retained prefix. The
// backing array is reused and the tail beyond the returned length should be
// considered freed — callers that also need the untouched raw sequence must
// use Copy instead.
func InPlace(tokens []string, stops *stopword.Set) []string {
	n := 0
	for _, tok := range tokens {
		if Valid(tok, stops) {
			tokens[n] = tok
			n++
		}
	}
	return tokens[:n]
}

func isDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
