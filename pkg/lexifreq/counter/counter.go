// Package counter implements the dual-pipeline frequency counter: a
// string-keyed baseline and an ID-interned hash variant that produce
// identical results (see TestStringAndIDCounterParity in parity_test.go) from
// different representations.
package counter

import "github.com/cognicore/lexifreq/pkg/lexifreq/stopword"

// WordCount is a single distinct word and its occurrence count.
type WordCount struct {
	Word  string
	Count uint64
}

// BigramCount is a single ordered adjacent token pair and its occurrence
// count.
type BigramCount struct {
	W1, W2 string
	Count  uint64
}

// Counter counts words over the filtered sequence and, if bigrams is true,
// adjacency bigrams over the raw sequence with the no-bridging rule: a
// dropped token breaks adjacency rather than letting its neighbors bridge
// across it.
//
// filtered and raw must come from the same page: filtered is the
// non-destructive filter copy, raw is the unfiltered tokenizer output. stops
// is consulted wherever validity is re-derived from raw: StringCounter does so
// for bigrams only, while IDCounter does so for words and bigrams alike and
// ignores filtered entirely. Both implementations accept the same arguments
// for a uniform call site.
type Counter interface {
	Count(filtered, raw []string, stops *stopword.Set, bigrams bool) ([]WordCount, []BigramCount, error)
}

// Kind names a dual-pipeline selection, honored verbatim when explicit or
// resolved from input size when Auto.
type Kind int

const (
	Auto Kind = iota
	String
	ID
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case ID:
		return "id"
	default:
		return "auto"
	}
}

// ParseKind maps the HTTP/CLI option string to a Kind. An empty or unknown
// string resolves to Auto.
func ParseKind(s string) Kind {
	switch s {
	case "string":
		return String
	case "id":
		return ID
	default:
		return Auto
	}
}
