// Package cclzw implements LZW compression with variable-width codes.
//
// Codes start StartBits wide and grow by one bit whenever the next code to be
// assigned no longer fits, up to MaxBits. When the code space at MaxBits is
// used up the dictionary freezes: no further entries are learned and the width
// stays at MaxBits. There is no dictionary reset.
//
// The stream carries nothing but the packed codes (most significant bit first,
// zero-padded to a byte at the end). StartBits and MaxBits are not recorded and
// must match between Encode and Decode.
package cclzw

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

const (
	// MinimumBits is the narrowest allowed code width.
	MinimumBits = 8
	// MaximumBits is the widest allowed code width.
	MaximumBits = 24

	alphabet  = 256
	firstCode = alphabet
)

var (
	// ErrInvalidParameters is returned before any I/O when the widths are out of
	// range or the byte source or sink is missing.
	ErrInvalidParameters = errors.New("cclzw: invalid parameters")
	// ErrCorrupt is returned when the stream cannot have been produced by
	// Encode with the same Config.
	ErrCorrupt = errors.New("cclzw: corrupt stream")
)

// Config .
type Config struct {
	StartBits uint
	MaxBits   uint
}

// DefaultConfig .
var DefaultConfig = Config{StartBits: 9, MaxBits: 16}

// Validate .
func (c Config) Validate() error {
	if c.StartBits < MinimumBits || c.StartBits > MaximumBits ||
		c.MaxBits < MinimumBits || c.MaxBits > MaximumBits ||
		c.StartBits > c.MaxBits {
		return errors.Wrapf(ErrInvalidParameters, "start[%v].max[%v]", c.StartBits, c.MaxBits)
	}
	return nil
}

// Stats describes one Encode or Decode call.
type Stats struct {
	BytesIn  int64
	BytesOut int64
	Codes    int64 // codes written (Encode) or read (Decode)
	Entries  int   // dictionary entries at the end, the 256 single bytes included
	Width    uint  // code width at the end
	Frozen   bool  // the code space was exhausted
}

// Option .
type Option func(*options)

type options struct {
	trace func(code uint32, width uint)
}

// WithTrace calls fn for every code written or read, with the width used.
func WithTrace(fn func(code uint32, width uint)) Option {
	return func(o *options) {
		o.trace = fn
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Encode compresses everything read from r into w.
func Encode(startBits, maxBits uint, r io.ByteReader, w io.ByteWriter) error {
	_, err := NewEncoder(Config{StartBits: startBits, MaxBits: maxBits}).Encode(r, w)
	return err
}

// Decode expands a stream produced by Encode with the same widths.
func Decode(startBits, maxBits uint, r io.ByteReader, w io.ByteWriter) error {
	_, err := NewDecoder(Config{StartBits: startBits, MaxBits: maxBits}).Decode(r, w)
	return err
}

// EncodeBytes .
func EncodeBytes(cfg Config, src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := NewEncoder(cfg).Encode(bytes.NewReader(src), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBytes .
func DecodeBytes(cfg Config, src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := NewDecoder(cfg).Decode(bytes.NewReader(src), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
