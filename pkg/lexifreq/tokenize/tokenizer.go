// Package tokenize splits raw page text into normalized, countable tokens.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Extra token boundaries beyond ASCII whitespace/punctuation: en dash, em
// dash, and horizontal bar. These arrive UTF-8 encoded and lie outside the
// ASCII range that isBoundary's whitespace/punctuation test covers, so the
// splitter checks for them explicitly.
const (
	enDash        = '–'
	emDash        = '—'
	horizontalBar = '―'
)

// minCodepoints is the shortest token kept after tokenization. Tokens
// shorter than this carry too little signal for counting and are dropped
// here so every downstream component (filter, both counters) sees only
// tokens that already satisfy the length rule.
const minCodepoints = 2

// Stats holds the token-count statistics produced alongside a token
// sequence. WordCount and WordCharCount are always derived from the raw
// (pre-filter) sequence per the no-ambiguity rule adopted here: stats
// reflect what the tokenizer produced, not what survives stopword
// filtering.
type Stats struct {
	WordCount     uint64
	WordCharCount uint64
}

// Tokenize splits text into an ordered sequence of lowercased tokens plus
// the stats that describe it. A token boundary is any ASCII whitespace, any
// ASCII punctuation rune, or one of the UTF-8 dash runes above. Runs of
// boundaries collapse; no empty tokens are emitted. Only the ASCII A-Z
// range is case-folded — non-ASCII letters are passed through verbatim.
//
// Malformed UTF-8 does not abort tokenization: invalid byte sequences decode
// to utf8.RuneError and are treated as ordinary (non-boundary) runes, so they
// end up embedded in whatever token surrounds them.
func Tokenize(text string) ([]string, Stats) {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		tok := current.String()
		current.Reset()
		if utf8.RuneCountInString(tok) < minCodepoints {
			return
		}
		tokens = append(tokens, tok)
	}

	for _, r := range text {
		if isBoundary(r) {
			flush()
			continue
		}
		current.WriteRune(foldASCII(r))
	}
	flush()

	stats := Stats{WordCount: uint64(len(tokens))}
	for _, tok := range tokens {
		stats.WordCharCount += uint64(utf8.RuneCountInString(tok))
	}
	return tokens, stats
}

// CharCount returns the codepoint length of raw text, used for
// TextMetrics.CharCount — deliberately a rune count, not a byte count.
func CharCount(text string) uint64 {
	return uint64(utf8.RuneCountInString(text))
}

func isBoundary(r rune) bool {
	switch r {
	case enDash, emDash, horizontalBar:
		return true
	}
	if r > unicode.MaxASCII {
		return false
	}
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}

// foldASCII lowercases only the ASCII A-Z range, leaving every other byte
// (including non-ASCII letters) untouched.
func foldASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
