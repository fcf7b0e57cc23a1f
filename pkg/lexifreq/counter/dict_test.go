package counter

import "testing"

func TestDictInternAssignsStableFirstSeenIDs(t *testing.T) {
	d := newDict()
	if id := d.intern("alpha"); id != 1 {
		t.Fatalf("first intern id = %d, want 1", id)
	}
	if id := d.intern("beta"); id != 2 {
		t.Fatalf("second intern id = %d, want 2", id)
	}
	if id := d.intern("alpha"); id != 1 {
		t.Fatalf("re-intern of alpha = %d, want 1", id)
	}
	if d.numIDs() != 2 {
		t.Fatalf("numIDs = %d, want 2", d.numIDs())
	}
}

func TestDictLookupRoundTrips(t *testing.T) {
	d := newDict()
	words := []string{"zero", "one", "two", "three"}
	ids := make([]int32, len(words))
	for i, w := range words {
		ids[i] = d.intern(w)
	}
	for i, w := range words {
		if got := d.lookup(ids[i]); got != w {
			t.Errorf("lookup(%d) = %q, want %q", ids[i], got, w)
		}
	}
}

func TestDictFindWithoutInsert(t *testing.T) {
	d := newDict()
	if _, ok := d.find("missing"); ok {
		t.Fatal("find on empty dict reported ok")
	}
	d.intern("present")
	if id, ok := d.find("present"); !ok || id != 1 {
		t.Fatalf("find(present) = (%d, %v), want (1, true)", id, ok)
	}
	if d.numIDs() != 1 {
		t.Fatalf("find must not insert: numIDs = %d", d.numIDs())
	}
}

func TestDictGrowsAndPreservesMapping(t *testing.T) {
	d := newDict()
	const n = 500
	ids := make(map[string]int32, n)
	for i := 0; i < n; i++ {
		w := wordAt(i)
		ids[w] = d.intern(w)
	}
	if d.cap <= dictInitialCap {
		t.Fatalf("expected dict to grow past initial capacity, cap = %d", d.cap)
	}
	for w, id := range ids {
		if d.lookup(id) != w {
			t.Errorf("after growth, lookup(%d) = %q, want %q", id, d.lookup(id), w)
		}
		if gotID, ok := d.find(w); !ok || gotID != id {
			t.Errorf("after growth, find(%q) = (%d, %v), want (%d, true)", w, gotID, ok, id)
		}
	}
}

func wordAt(i int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	if i < len(alphabet) {
		return string(alphabet[i])
	}
	return string(alphabet[i%len(alphabet)]) + wordAt(i/len(alphabet)-1)
}
