package ccbitio

import (
	"io"

	"github.com/pkg/errors"
)

// Reader .
type Reader struct {
	src io.ByteReader

	// live bits are left-aligned in buf, everything below the top n bits is zero
	buf uint64
	n   uint

	in int64
}

// NewReader .
func NewReader(src io.ByteReader) *Reader {
	return &Reader{src: src}
}

// ReadBits returns the next width bits right-aligned.
//
// When the source runs dry before width bits are available, ReadBits returns
// io.EOF and keeps the bits it already holds, so Trailing can inspect them.
// Any other source error is returned wrapped.
func (r *Reader) ReadBits(width uint) (uint32, error) {
	if err := checkWidth(width); err != nil {
		return 0, err
	}

	for r.n < width {
		b, err := r.src.ReadByte()
		if err == io.EOF {
			return 0, io.EOF
		}
		if err != nil {
			return 0, errors.Wrap(err, "ccbitio.ReadBits.ReadByte")
		}
		r.in++

		// n < width <= 32 here, so the byte always fits below the live bits
		r.buf |= uint64(b) << (56 - r.n)
		r.n += 8
	}

	v := uint32(r.buf >> (64 - width))
	r.buf <<= width
	r.n -= width
	return v, nil
}

// Trailing reports how many bits are buffered but unread, and whether all of
// them are zero. After the last code of a stream written by Writer this is the
// flush padding: fewer than 8 zero bits.
func (r *Reader) Trailing() (bits uint, zero bool) {
	return r.n, r.buf == 0
}

// BytesRead .
func (r *Reader) BytesRead() int64 {
	return r.in
}
