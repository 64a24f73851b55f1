package lzw12

import (
	"errors"
	"fmt"
	"io"
)

// Decompress decompresses src into a new buffer.
// Options nil means DefaultOptions (truncated final code ends the stream silently).
func Decompress(src []byte, opts *Options) ([]byte, error) {
	out := &sliceByteWriter{data: make([]byte, 0, 2*len(src))}
	if _, err := decodeFromByteReader(&sliceByteReader{data: src}, out, opts); err != nil {
		return nil, err
	}

	return out.data, nil
}

// Decode decompresses codes read from r until io.EOF and writes the bytes to w.
// On ErrBadCode everything decoded before the bad code is flushed to w and nothing after it.
func Decode(w io.Writer, r io.Reader, opts *Options) (Stats, error) {
	if r == nil {
		return Stats{}, ErrNilReader
	}
	if w == nil {
		return Stats{}, ErrNilWriter
	}

	src := newCountingByteReader(r)
	dst := newCountingSink(w)
	stats, err := decodeFromByteReader(src, dst, opts)
	if flushErr := dst.flush(); err == nil {
		err = flushErr
	}

	stats.BytesIn = src.count
	stats.BytesOut = dst.count

	return stats, err
}

// decodeFromByteReader rebuilds the dictionary in lockstep with the encoder.
func decodeFromByteReader(r io.ByteReader, w byteSink, opts *Options) (stats Stats, err error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	in := &codeReader{r: r, strict: opts.Strict}
	defer func() { stats.Codes = in.codes }()

	prevCode, err := in.readCode()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return stats, nil
		}

		return stats, err
	}

	// The first code has nothing to extend, so it must be a literal.
	if prevCode >= LiteralCodes {
		return stats, fmt.Errorf("%w: code=%d dictSize=%d", ErrBadCode, prevCode, LiteralCodes)
	}

	dict, err := newTable()
	if err != nil {
		return stats, err
	}

	if err := w.WriteByte(byte(prevCode)); err != nil {
		return stats, err
	}

	for {
		code, err := in.readCode()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return stats, nil
			}

			return stats, err
		}

		if int(code) > dict.dictSize {
			return stats, fmt.Errorf("%w: code=%d dictSize=%d", ErrBadCode, code, dict.dictSize)
		}

		// code == dictSize is the entry being defined right now: prev + first(prev).
		var lastChar byte
		if int(code) == dict.dictSize {
			lastChar = dict.first(prevCode)
		} else {
			lastChar = dict.first(code)
		}

		// Grow before output so the self-referential code is already resolvable.
		if dict.full() {
			dict.reset()
			stats.Resets++
		} else if err := dict.extend(prevCode, lastChar); err != nil {
			return stats, err
		}

		if _, err := w.Write(dict.seq(code)); err != nil {
			return stats, err
		}

		prevCode = code
	}
}
