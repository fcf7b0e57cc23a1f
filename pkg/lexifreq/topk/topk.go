// Package topk produces deterministic top-k views of frequency lists
// without mutating the input.
package topk

import (
	"sort"

	"github.com/cognicore/lexifreq/pkg/lexifreq/counter"
)

// Words returns a new slice holding a deep copy of the top k entries of in,
// ordered by count descending, tie-broken by word ascending. k = 0 returns
// an empty slice; callers that want the full list must pass k = len(in).
func Words(in []counter.WordCount, k int) []counter.WordCount {
	if k <= 0 || len(in) == 0 {
		return []counter.WordCount{}
	}
	sorted := append([]counter.WordCount(nil), in...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Word < sorted[j].Word
	})
	if k > len(sorted) {
		k = len(sorted)
	}
	out := make([]counter.WordCount, k)
	copy(out, sorted[:k])
	return out
}

// Bigrams returns a new slice holding a deep copy of the top k entries of
// in, ordered by count descending, tie-broken by w1 then w2 ascending.
func Bigrams(in []counter.BigramCount, k int) []counter.BigramCount {
	if k <= 0 || len(in) == 0 {
		return []counter.BigramCount{}
	}
	sorted := append([]counter.BigramCount(nil), in...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		if sorted[i].W1 != sorted[j].W1 {
			return sorted[i].W1 < sorted[j].W1
		}
		return sorted[i].W2 < sorted[j].W2
	})
	if k > len(sorted) {
		k = len(sorted)
	}
	out := make([]counter.BigramCount, k)
	copy(out, sorted[:k])
	return out
}
