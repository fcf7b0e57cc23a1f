package topk

import (
	"testing"

	"github.com/cognicore/lexifreq/pkg/lexifreq/counter"
)

func TestWordsOrdersByCountThenLex(t *testing.T) {
	in := []counter.WordCount{
		{Word: "banane", Count: 1},
		{Word: "birne", Count: 1},
		{Word: "apfel", Count: 3},
	}
	got := Words(in, 2)
	want := []counter.WordCount{{Word: "apfel", Count: 3}, {Word: "banane", Count: 1}}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWordsZeroKReturnsEmpty(t *testing.T) {
	in := []counter.WordCount{{Word: "a", Count: 1}}
	got := Words(in, 0)
	if len(got) != 0 {
		t.Fatalf("k=0 returned %v, want empty", got)
	}
}

func TestWordsKGreaterThanLen(t *testing.T) {
	in := []counter.WordCount{{Word: "a", Count: 1}}
	got := Words(in, 5)
	if len(got) != 1 {
		t.Fatalf("got %v, want len 1", got)
	}
}

func TestWordsDoesNotMutateInput(t *testing.T) {
	in := []counter.WordCount{{Word: "z", Count: 1}, {Word: "a", Count: 1}}
	orig := append([]counter.WordCount(nil), in...)
	Words(in, 1)
	for i := range in {
		if in[i] != orig[i] {
			t.Fatalf("input mutated: %v vs original %v", in, orig)
		}
	}
}

func TestWordsIdempotent(t *testing.T) {
	in := []counter.WordCount{
		{Word: "c", Count: 2}, {Word: "a", Count: 5}, {Word: "b", Count: 5},
	}
	once := Words(in, len(in))
	twice := Words(once, len(once))
	if len(once) != len(twice) {
		t.Fatalf("lengths differ: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("index %d: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestBigramsOrdersByCountThenLexPair(t *testing.T) {
	in := []counter.BigramCount{
		{W1: "b", W2: "a", Count: 1},
		{W1: "a", W2: "z", Count: 1},
		{W1: "a", W2: "a", Count: 1},
	}
	got := Bigrams(in, 3)
	want := []counter.BigramCount{
		{W1: "a", W2: "a", Count: 1},
		{W1: "a", W2: "z", Count: 1},
		{W1: "b", W2: "a", Count: 1},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBigramsZeroKReturnsEmpty(t *testing.T) {
	if got := Bigrams([]counter.BigramCount{{W1: "a", W2: "b", Count: 1}}, 0); len(got) != 0 {
		t.Fatalf("k=0 returned %v, want empty", got)
	}
}
