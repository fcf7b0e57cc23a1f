// Package runid mints monotonic, lexically sortable IDs for analysis runs
// and for pages that arrive without a caller-supplied id.
package runid

import (
	"crypto/rand"
	"encoding/binary"
	"sync"

	"github.com/oklog/ulid/v2"
)

// Minter mints ULIDs from one monotonic entropy source, so IDs minted within
// the same millisecond still sort in mint order.
type Minter struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates a Minter backed by crypto/rand.
func New() *Minter {
	return &Minter{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Mint returns a new ULID string. Safe for concurrent use across analyses.
func (m *Minter) Mint() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ulid.MustNew(ulid.Now(), m.entropy).String()
}

// MintID returns a new, non-negative int64 derived from a freshly minted
// ULID's low 8 bytes (the monotonic-entropy half of the identifier), for
// auto-assigning Page.ID when a caller omits one. Collisions are as
// unlikely as a ULID collision within the same Minter.
func (m *Minter) MintID() int64 {
	m.mu.Lock()
	id := ulid.MustNew(ulid.Now(), m.entropy)
	m.mu.Unlock()

	v := binary.BigEndian.Uint64(id[8:16])
	return int64(v &^ (1 << 63))
}

// Default is the process-wide minter used when a run or page has no
// caller-supplied identifier.
var Default = New()
