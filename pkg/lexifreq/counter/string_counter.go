package counter

import (
	"github.com/cognicore/lexifreq/pkg/lexifreq/filter"
	"github.com/cognicore/lexifreq/pkg/lexifreq/stopword"
)

// StringCounter is the baseline counter: plain Go maps keyed by the token
// string itself. It is the reference implementation against which the ID
// variant's output must be a byte-for-byte equivalent multiset (see the
// parity law checked in parity_test.go).
type StringCounter struct{}

// Count implements Counter.
func (StringCounter) Count(filtered, raw []string, stops *stopword.Set, bigrams bool) ([]WordCount, []BigramCount, error) {
	words := countWords(filtered)
	if !bigrams {
		return words, nil, nil
	}
	return words, countBigrams(raw, stops), nil
}

func countWords(filtered []string) []WordCount {
	counts := make(map[string]uint64, len(filtered))
	for _, tok := range filtered {
		counts[tok]++
	}
	out := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		out = append(out, WordCount{Word: word, Count: count})
	}
	return out
}

// countBigrams walks the raw sequence maintaining a "previous valid token"
// register. On a valid token it counts the pair with the previous valid
// token if the two were immediately adjacent (no dropped token between
// them); on an invalid token it clears the register, which is exactly what
// makes bridging impossible — invariant 7.
func countBigrams(raw []string, stops *stopword.Set) []BigramCount {
	counts := make(map[[2]string]uint64, len(raw))
	prevValid := false
	var prevTok string

	for _, tok := range raw {
		if !filter.Valid(tok, stops) {
			prevValid = false
			continue
		}
		if prevValid {
			counts[[2]string{prevTok, tok}]++
		}
		prevTok = tok
		prevValid = true
	}

	out := make([]BigramCount, 0, len(counts))
	for pair, count := range counts {
		out = append(out, BigramCount{W1: pair[0], W2: pair[1], Count: count})
	}
	return out
}

