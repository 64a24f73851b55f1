package lzw12

// table is the decoder dictionary: code -> byte sequence stored in an arena.
type table struct {
	entries  []span // Entry per code; only indexes below dictSize are valid.
	dictSize int    // Number of valid codes.
	mem      *arena // Storage for all sequences.
	base     int    // Arena offset just after the literal entries.
}

// newTable builds a table holding the LiteralCodes single-byte entries.
func newTable() (*table, error) {
	t := &table{
		entries:  make([]span, DictMax),
		dictSize: LiteralCodes,
		mem:      newArena(ArenaSize),
	}

	for i := range LiteralCodes {
		s, err := t.mem.alloc(1)
		if err != nil {
			return nil, err
		}
		t.mem.bytes(s)[0] = byte(i)
		t.entries[i] = s
	}
	t.base = t.mem.mark()

	return t, nil
}

// seq returns the bytes of code. The slice aliases arena storage.
func (t *table) seq(code uint16) []byte {
	return t.mem.bytes(t.entries[code])
}

// first returns the first byte of code's sequence.
func (t *table) first(code uint16) byte {
	return t.mem.buf[t.entries[code].off]
}

// full reports whether the next growth step must reset instead.
func (t *table) full() bool {
	return t.dictSize == DictMax
}

// extend registers seq(prev)+last as code dictSize.
func (t *table) extend(prev uint16, last byte) error {
	src := t.entries[prev]
	s, err := t.mem.alloc(int(src.n) + 1)
	if err != nil {
		return err
	}

	dst := t.mem.bytes(s)
	copy(dst, t.mem.bytes(src))
	dst[src.n] = last
	t.entries[t.dictSize] = s
	t.dictSize++

	return nil
}

// reset drops every entry above the literals by rewinding the arena.
func (t *table) reset() {
	t.dictSize = LiteralCodes
	t.mem.rewind(t.base)
}
