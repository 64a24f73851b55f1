package lzw12

import (
	"errors"
	"io"
)

// Compress compresses src. Empty input yields empty output.
func Compress(src []byte) ([]byte, error) {
	// Worst case: one code per input byte, 1.5 bytes per code, plus padding.
	out := &sliceByteWriter{data: make([]byte, 0, len(src)+len(src)/2+2)}
	if _, err := encodeFromByteReader(&sliceByteReader{data: src}, out); err != nil {
		return nil, err
	}

	return out.data, nil
}

// Encode compresses everything read from r until io.EOF and writes the codes to w.
// Both r and w are used byte-wise; plain readers and writers are buffered internally
// and w is flushed before Encode returns.
func Encode(w io.Writer, r io.Reader) (Stats, error) {
	if r == nil {
		return Stats{}, ErrNilReader
	}
	if w == nil {
		return Stats{}, ErrNilWriter
	}

	src := newCountingByteReader(r)
	dst := newCountingSink(w)
	stats, err := encodeFromByteReader(src, dst)
	if flushErr := dst.flush(); err == nil {
		err = flushErr
	}

	stats.BytesIn = src.count
	stats.BytesOut = dst.count

	return stats, err
}

// encodeFromByteReader walks the input down the trie, emitting one code per phrase.
func encodeFromByteReader(r io.ByteReader, w io.ByteWriter) (stats Stats, err error) {
	first, err := r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return stats, nil
		}

		return stats, err
	}

	dict := newTrie()
	out := &codeWriter{w: w}
	defer func() { stats.Codes = out.codes }()

	dictSize := LiteralCodes
	curNode := uint16(first)

	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return stats, err
		}

		// Known phrase: keep extending it.
		if next, ok := dict.child(curNode, b); ok {
			curNode = next
			continue
		}

		if err := out.writeCode(curNode); err != nil {
			return stats, err
		}

		if dictSize < DictMax {
			dict.add(curNode, b, uint16(dictSize)) // #nosec G115 -- dictSize < DictMax
			dictSize++
		} else {
			dict.reset()
			dictSize = LiteralCodes
			stats.Resets++
		}

		curNode = uint16(b)
	}

	return stats, out.writeLast(curNode)
}
