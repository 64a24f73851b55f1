package lzw12

import (
	"bufio"
	"io"
)

// byteSink accepts whole sequences and single bytes.
type byteSink interface {
	io.Writer
	io.ByteWriter
}

// sliceByteWriter appends to a byte slice.
type sliceByteWriter struct {
	data []byte // The bytes written so far.
}

// countingSink writes to a sink and counts the number of bytes written.
type countingSink struct {
	base  byteSink      // The sink to write to.
	buf   *bufio.Writer // Non-nil when base buffers a plain io.Writer.
	count int64         // The number of bytes written.
}

// newCountingSink wraps w, buffering it when it cannot write single bytes.
// Call flush before returning to the caller.
func newCountingSink(w io.Writer) *countingSink {
	if sink, ok := w.(byteSink); ok {
		return &countingSink{base: sink}
	}

	buf := bufio.NewWriter(w)

	return &countingSink{base: buf, buf: buf}
}

// Write appends p to the slice.
func (w *sliceByteWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)

	return len(p), nil
}

// WriteByte appends c to the slice.
func (w *sliceByteWriter) WriteByte(c byte) error {
	w.data = append(w.data, c)

	return nil
}

// Write writes p to the sink and adds the written length to the count.
func (w *countingSink) Write(p []byte) (int, error) {
	n, err := w.base.Write(p)
	w.count += int64(n)

	return n, err
}

// WriteByte writes c to the sink and increments the count.
func (w *countingSink) WriteByte(c byte) error {
	if err := w.base.WriteByte(c); err != nil {
		return err
	}

	w.count++

	return nil
}

// flush pushes buffered bytes to the underlying writer.
func (w *countingSink) flush() error {
	if w.buf == nil {
		return nil
	}

	return w.buf.Flush()
}
