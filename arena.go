package lzw12

// span is a handle to bytes carved out of an arena.
type span struct {
	off int32 // Offset into the arena buffer.
	n   int32 // Length in bytes.
}

// arena is a bump allocator over one pre-sized buffer.
// Allocations are never freed individually; rewind drops everything past a mark.
type arena struct {
	buf []byte // Backing storage, never grown.
	off int    // Next free offset.
}

// newArena creates an arena of exactly size bytes.
func newArena(size int) *arena {
	return &arena{buf: make([]byte, size)}
}

// alloc carves n bytes, rounding the reservation up to arenaAlign.
func (a *arena) alloc(n int) (span, error) {
	size := (n + arenaAlign - 1) &^ (arenaAlign - 1)
	if a.off+size > len(a.buf) {
		return span{}, ErrArenaExhausted
	}

	s := span{off: int32(a.off), n: int32(n)} // #nosec G115 -- bounded by ArenaSize
	a.off += size

	return s, nil
}

// bytes returns the storage behind s.
func (a *arena) bytes(s span) []byte {
	return a.buf[s.off : s.off+s.n]
}

// mark returns the current allocation offset.
func (a *arena) mark() int {
	return a.off
}

// rewind invalidates every allocation made after m. Memory is not zeroed.
func (a *arena) rewind(m int) {
	a.off = m
}
