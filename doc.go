/*
Package lzw12 implements a fixed-width 12-bit LZW compressor and decompressor.

Format: a headerless sequence of 12-bit codes, packed MSB first, two codes per 3 bytes.
Codes 0..255 are literal bytes; codes 256..4095 are phrases added one per emitted code.
When the dictionary holds 4096 codes, the next growth step resets it to the 256 literals
instead of adding an entry. There is no clear code: both sides derive the reset from the
dictionary size alone. A trailing unpaired code is written as two bytes, its last 4 bits zero.

This is a specific legacy wire format. It is not compatible with compress/lzw, GIF or TIFF.

Use Compress(src) and Decompress(src, opts) for in-memory data.
Use Encode(w, r) and Decode(w, r, opts) to stream between an io.Reader and an io.Writer.
Use StrictOptions() to report a stream cut inside a code as ErrTruncatedCode; by default
decoding stops silently after the last complete code.
A code beyond the decoder dictionary fails with ErrBadCode.

# Examples

Round-trip compress and decompress:

	enc, err := lzw12.Compress(data)
	if err != nil {
		return err
	}
	dec, err := lzw12.Decompress(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Stream a file to stdout:

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	stats, err := lzw12.Encode(os.Stdout, f)
	if err != nil {
		return err
	}
	_ = stats.BytesOut

Decode and reject truncated input:

	_, err := lzw12.Decode(w, r, lzw12.StrictOptions())
	if errors.Is(err, lzw12.ErrBadCode) || errors.Is(err, lzw12.ErrTruncatedCode) {
		// corrupt stream
	}
*/
package lzw12
