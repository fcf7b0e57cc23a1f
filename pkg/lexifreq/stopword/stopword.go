// Package stopword loads and exposes membership testing for the noise-word
// list used by filtering and bigram exclusion.
package stopword

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cognicore/lexifreq/internal/internalerr"
)

// Set is an immutable, concurrency-safe collection of normalized stopwords.
// Once built it is read-only and may be shared by reference across
// concurrently running analyses.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from a literal word list, normalizing each entry the same
// way Load does (lowercase ASCII, trimmed, blanks dropped).
func New(words []string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if norm := normalize(w); norm != "" {
			s.words[norm] = struct{}{}
		}
	}
	return s
}

// Contains reports whether word (assumed already lowercased by the caller's
// tokenizer) is a stopword. Lookups are checked against the normalized form
// so a caller need not pre-normalize.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[normalize(word)]
	return ok
}

// Len returns the number of distinct stopwords.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Load reads a stopword resource: one word per line, blank lines ignored,
// trailing CR/LF stripped, entries lowercased (ASCII subset) on load. A
// missing or unreadable file is surfaced as a StopwordsUnavailable error —
// analysis cannot proceed without its noise-word list.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, internalerr.Wrap(internalerr.StopwordsUnavailable, fmt.Errorf("open stopwords file %s: %w", path, err))
	}
	defer f.Close()

	words := make([]string, 0, 256)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, internalerr.Wrap(internalerr.StopwordsUnavailable, fmt.Errorf("read stopwords file %s: %w", path, err))
	}
	return New(words), nil
}

func normalize(w string) string {
	w = strings.TrimRight(w, "\r\n")
	w = strings.TrimSpace(w)
	if w == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, w)
}

// Cache is a process-wide, mtime-keyed cache of loaded stopword sets. A
// stopword file rarely changes during a process's lifetime, so repeated
// analyses against the same path reuse one immutable Set instead of
// re-reading and re-normalizing the resource on every request.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	modTime time.Time
	set     *Set
}

// NewCache creates an empty stopword cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Load returns the cached Set for path if its mtime hasn't changed since the
// last load, re-reading the file otherwise.
func (c *Cache) Load(path string) (*Set, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, internalerr.Wrap(internalerr.StopwordsUnavailable, fmt.Errorf("stat stopwords file %s: %w", path, err))
	}

	c.mu.Lock()
	if e, ok := c.entries[path]; ok && e.modTime.Equal(info.ModTime()) {
		c.mu.Unlock()
		return e.set, nil
	}
	c.mu.Unlock()

	set, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[path] = cacheEntry{modTime: info.ModTime(), set: set}
	c.mu.Unlock()
	return set, nil
}

// DefaultCache is the shared singleton cache used by transports that don't
// need an isolated cache of their own.
var DefaultCache = NewCache()
