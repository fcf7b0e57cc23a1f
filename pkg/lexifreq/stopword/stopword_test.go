package stopword

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cognicore/lexifreq/internal/internalerr"
)

func TestNewNormalizesEntries(t *testing.T) {
	s := New([]string{"The", " and \r\n", "", "OF"})
	if !s.Contains("the") {
		t.Error("expected 'the' to be a stopword (case-folded)")
	}
	if !s.Contains("and") {
		t.Error("expected 'and' to be a stopword (trimmed)")
	}
	if !s.Contains("of") {
		t.Error("expected 'of' to be a stopword (case-folded)")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (blank entry dropped)", s.Len())
	}
}

func TestContainsOnNilSet(t *testing.T) {
	var s *Set
	if s.Contains("anything") {
		t.Error("nil Set must report no membership")
	}
	if s.Len() != 0 {
		t.Error("nil Set must report Len() == 0")
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stops.txt")
	contents := "the\n\nAND\r\nof  \n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write stopword file: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !s.Contains("the") || !s.Contains("and") || !s.Contains("of") {
		t.Errorf("expected the/and/of to load, got set with Len=%d", s.Len())
	}
}

func TestLoadMissingFileIsStopwordsUnavailable(t *testing.T) {
	_, err := Load("/nonexistent/stopwords.txt")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if internalerr.Of(err) != internalerr.StopwordsUnavailable {
		t.Errorf("Kind = %v, want StopwordsUnavailable", internalerr.Of(err))
	}
}

func TestCacheReloadsOnMtimeChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stops.txt")
	if err := os.WriteFile(path, []byte("alpha\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c := NewCache()
	s1, err := c.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !s1.Contains("alpha") {
		t.Fatal("expected alpha in first load")
	}

	later := time.Now().Add(time.Second)
	if err := os.WriteFile(path, []byte("beta\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	s2, err := c.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !s2.Contains("beta") {
		t.Fatal("expected cache to reload after mtime change")
	}
}

func TestCacheReturnsCachedSetWhenUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stops.txt")
	if err := os.WriteFile(path, []byte("alpha\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c := NewCache()
	s1, err := c.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	s2, err := c.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s1 != s2 {
		t.Error("expected the same *Set instance when mtime is unchanged")
	}
}
