// Package aggregate folds per-page frequency lists into one domain-level
// list, summing counts of equal keys.
package aggregate

import "github.com/cognicore/lexifreq/pkg/lexifreq/counter"

// Words sums counts for equal words across all page lists, retaining one
// entry per distinct word. Order of the input lists does not affect the
// result (the aggregation law).
func Words(pages ...[]counter.WordCount) []counter.WordCount {
	totals := make(map[string]uint64)
	order := make([]string, 0)
	for _, page := range pages {
		for _, wc := range page {
			if _, seen := totals[wc.Word]; !seen {
				order = append(order, wc.Word)
			}
			totals[wc.Word] += wc.Count
		}
	}
	out := make([]counter.WordCount, 0, len(order))
	for _, word := range order {
		out = append(out, counter.WordCount{Word: word, Count: totals[word]})
	}
	return out
}

// Bigrams sums counts for equal (w1, w2) pairs across all page lists.
func Bigrams(pages ...[]counter.BigramCount) []counter.BigramCount {
	type key struct{ w1, w2 string }
	totals := make(map[key]uint64)
	order := make([]key, 0)
	for _, page := range pages {
		for _, bc := range page {
			k := key{bc.W1, bc.W2}
			if _, seen := totals[k]; !seen {
				order = append(order, k)
			}
			totals[k] += bc.Count
		}
	}
	out := make([]counter.BigramCount, 0, len(order))
	for _, k := range order {
		out = append(out, counter.BigramCount{W1: k.w1, W2: k.w2, Count: totals[k]})
	}
	return out
}
