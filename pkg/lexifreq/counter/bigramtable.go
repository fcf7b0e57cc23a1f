package counter

// bigramTable is an open-addressed hash table counting occurrences of an
// ordered pair of interned ids, packed into one 64-bit key
// (id1<<32 | id2). Since every real id is >= 1, a packed key can only be the
// zero value if both ids are 0, which never happens for a materialized
// entry — so 0 doubles as the "empty slot" sentinel with no separate
// occupancy bit needed.
type bigramTable struct {
	cap     uint64
	mask    uint64
	count   int
	buckets []bigramSlot
}

type bigramSlot struct {
	key   uint64
	value uint64
}

const bigramInitialCap = 16

func newBigramTable() *bigramTable {
	return &bigramTable{
		cap:     bigramInitialCap,
		mask:    bigramInitialCap - 1,
		buckets: make([]bigramSlot, bigramInitialCap),
	}
}

func packPair(id1, id2 int32) uint64 {
	return uint64(uint32(id1))<<32 | uint64(uint32(id2))
}

func unpackPair(key uint64) (int32, int32) {
	return int32(key >> 32), int32(key & 0xffffffff)
}

// mix64 is the 64-bit finalizer from MurmurHash3, used to spread the packed
// id-pair key across buckets (the raw key itself is too structured — low
// bits alone would cluster heavily for small vocabularies).
func mix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

// increment adds one to the count for (id1, id2), inserting a new slot if
// needed.
func (t *bigramTable) increment(id1, id2 int32) {
	if (t.count+1)*loadFactorDenominator >= int(t.cap)*loadFactorNumerator {
		t.grow()
	}
	key := packPair(id1, id2)
	idx := mix64(key) & t.mask
	for {
		slot := &t.buckets[idx]
		if slot.key == 0 {
			*slot = bigramSlot{key: key, value: 1}
			t.count++
			return
		}
		if slot.key == key {
			slot.value++
			return
		}
		idx = (idx + 1) & t.mask
	}
}

func (t *bigramTable) grow() {
	old := t.buckets
	t.cap *= 2
	t.mask = t.cap - 1
	t.buckets = make([]bigramSlot, t.cap)
	for _, slot := range old {
		if slot.key == 0 {
			continue
		}
		idx := mix64(slot.key) & t.mask
		for t.buckets[idx].key != 0 {
			idx = (idx + 1) & t.mask
		}
		t.buckets[idx] = slot
	}
}

// each calls fn for every occupied slot, unpacking the id pair.
func (t *bigramTable) each(fn func(id1, id2 int32, count uint64)) {
	for _, slot := range t.buckets {
		if slot.key == 0 {
			continue
		}
		id1, id2 := unpackPair(slot.key)
		fn(id1, id2, slot.value)
	}
}
