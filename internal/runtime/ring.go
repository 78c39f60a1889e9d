package runtime

import "github.com/aretw0/automat/pkg/domain"

// ring is a fixed-capacity circular buffer of history entries.
// When full, pushing a new entry overwrites the oldest one. Insertion is O(1)
// and the buffer never grows after construction.
type ring struct {
	buf  []domain.HistoryEntry
	head int // index of the oldest entry
	size int
}

// newRing allocates a buffer with the given capacity.
// Capacity 0 disables history: every push is a no-op.
func newRing(capacity int) *ring {
	if capacity < 0 {
		capacity = 0
	}
	return &ring{buf: make([]domain.HistoryEntry, capacity)}
}

func (r *ring) push(e domain.HistoryEntry) {
	if len(r.buf) == 0 {
		return
	}
	tail := (r.head + r.size) % len(r.buf)
	r.buf[tail] = e
	if r.size < len(r.buf) {
		r.size++
	} else {
		// Buffer full: the slot we just wrote was the oldest entry.
		r.head = (r.head + 1) % len(r.buf)
	}
}

// entries returns the retained history, oldest first.
func (r *ring) entries() []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, 0, r.size)
	for i := 0; i < r.size; i++ {
		out = append(out, r.buf[(r.head+i)%len(r.buf)])
	}
	return out
}

func (r *ring) len() int { return r.size }

func (r *ring) capacity() int { return len(r.buf) }
