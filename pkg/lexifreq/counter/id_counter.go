package counter

import (
	"github.com/cognicore/lexifreq/pkg/lexifreq/filter"
	"github.com/cognicore/lexifreq/pkg/lexifreq/stopword"
)

// IDCounter interns tokens into a dictionary scoped to one call and counts
// words in a dense id-indexed array and bigrams in an open-addressed hash
// keyed by packed (id1,id2) pairs. It is chosen over StringCounter for
// larger inputs; its output is required to be multiset-identical to
// StringCounter's for the same input (the parity law).
//
// Unlike StringCounter, IDCounter does not consume the pre-filtered slice:
// it re-derives validity from raw against stops while walking once, exactly
// as the execution model in the design calls for. filtered is accepted only
// to keep one Counter interface across both variants.
type IDCounter struct{}

// Count implements Counter.
func (IDCounter) Count(filtered, raw []string, stops *stopword.Set, bigrams bool) ([]WordCount, []BigramCount, error) {
	d := newDict()
	wordCounts := make([]uint64, 0, len(raw))

	var bigramTab *bigramTable
	if bigrams {
		bigramTab = newBigramTable()
	}

	var prevID int32 // 0 is the "none" sentinel
	for _, tok := range raw {
		if !filter.Valid(tok, stops) {
			prevID = 0
			continue
		}
		id := d.intern(tok)
		for int(id) > len(wordCounts) {
			wordCounts = append(wordCounts, 0)
		}
		wordCounts[id-1]++

		if bigrams && prevID != 0 {
			bigramTab.increment(prevID, id)
		}
		prevID = id
	}

	words := make([]WordCount, 0, d.numIDs())
	for id := int32(1); id <= d.numIDs(); id++ {
		count := wordCounts[id-1]
		if count == 0 {
			continue
		}
		words = append(words, WordCount{Word: d.lookup(id), Count: count})
	}

	if !bigrams {
		return words, nil, nil
	}

	bigramList := make([]BigramCount, 0, bigramTab.count)
	bigramTab.each(func(id1, id2 int32, count uint64) {
		bigramList = append(bigramList, BigramCount{W1: d.lookup(id1), W2: d.lookup(id2), Count: count})
	})
	return words, bigramList, nil
}
