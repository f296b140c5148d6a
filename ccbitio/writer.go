package ccbitio

import (
	"io"

	"github.com/pkg/errors"
)

// Writer .
type Writer struct {
	dst io.ByteWriter

	// pending bits are right-aligned in buf, n < 8 between calls
	buf uint64
	n   uint

	out int64
}

// NewWriter .
func NewWriter(dst io.ByteWriter) *Writer {
	return &Writer{dst: dst}
}

// WriteBits queues the low width bits of v and emits every completed byte.
// A zero width is rejected with ErrWidth and writes nothing.
func (w *Writer) WriteBits(v uint32, width uint) error {
	if err := checkWidth(width); err != nil {
		return err
	}

	w.buf = w.buf<<width | uint64(v)&(1<<width-1)
	w.n += width

	for w.n >= 8 {
		w.n -= 8
		if err := w.dst.WriteByte(byte(w.buf >> w.n)); err != nil {
			return errors.Wrap(err, "ccbitio.WriteBits.WriteByte")
		}
		w.out++
	}
	w.buf &= 1<<w.n - 1
	return nil
}

// Flush emits the pending partial byte padded with zero bits on the right.
// Flushing with nothing pending is a no-op.
func (w *Writer) Flush() error {
	if w.n == 0 {
		return nil
	}
	b := byte(w.buf << (8 - w.n))
	w.buf, w.n = 0, 0
	if err := w.dst.WriteByte(b); err != nil {
		return errors.Wrap(err, "ccbitio.Flush.WriteByte")
	}
	w.out++
	return nil
}

// Close .
func (w *Writer) Close() error {
	return w.Flush()
}

// BytesWritten .
func (w *Writer) BytesWritten() int64 {
	return w.out
}
