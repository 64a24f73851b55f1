package lzw12

import (
	"errors"
	"io"
)

// Two 12-bit codes pack into 3 bytes, MSB first:
//
//	byte0 = c1[11:4]
//	byte1 = c1[3:0]<<4 | c2[11:8]
//	byte2 = c2[7:0]

// codeWriter packs 12-bit codes into a byte sink.
type codeWriter struct {
	w       io.ByteWriter // The sink.
	pending bool          // A low nibble is waiting for the next code.
	nibble  byte          // Pending low nibble, already shifted into bits 4..7.
	codes   int64         // The number of codes written.
}

// writeCode emits one code, keeping up to 4 bits for the next call.
func (cw *codeWriter) writeCode(code uint16) error {
	cw.codes++

	if !cw.pending {
		if err := cw.w.WriteByte(byte(code >> 4)); err != nil {
			return err
		}
		cw.nibble = byte(code << 4)
		cw.pending = true

		return nil
	}

	if err := cw.w.WriteByte(cw.nibble | byte(code>>8)); err != nil {
		return err
	}
	if err := cw.w.WriteByte(byte(code)); err != nil {
		return err
	}
	cw.pending = false

	return nil
}

// writeLast emits the final code of a stream.
// An unpaired code ends with its low nibble followed by 4 zero bits.
func (cw *codeWriter) writeLast(code uint16) error {
	if err := cw.writeCode(code); err != nil {
		return err
	}
	if !cw.pending {
		return nil
	}

	cw.pending = false

	return cw.w.WriteByte(cw.nibble)
}

// codeReader unpacks 12-bit codes from a byte source.
type codeReader struct {
	r       io.ByteReader // The source.
	strict  bool          // Report truncation instead of ending silently.
	pending bool          // A low nibble from the previous byte starts the next code.
	high    uint16        // Pending nibble, already shifted into bits 8..11.
	codes   int64         // The number of codes read.
}

// readCode returns the next code, or io.EOF at the end of the stream.
func (cr *codeReader) readCode() (uint16, error) {
	b0, err := cr.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// After an odd code count the last nibble is padding and must be zero.
			if cr.strict && cr.pending && cr.high != 0 {
				return 0, ErrTruncatedCode
			}

			return 0, io.EOF
		}

		return 0, err
	}

	if cr.pending {
		cr.pending = false
		cr.codes++

		return cr.high | uint16(b0), nil
	}

	b1, err := cr.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			if cr.strict {
				return 0, ErrTruncatedCode
			}

			return 0, io.EOF
		}

		return 0, err
	}

	cr.high = uint16(b1&0x0F) << 8
	cr.pending = true
	cr.codes++

	return uint16(b0)<<4 | uint16(b1>>4), nil
}
