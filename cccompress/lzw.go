package cccompress

import (
	"github.com/Yoech/CCLzw/cclzw"
	"github.com/pkg/errors"
)

// CCLzw is the variable-width LZW codec. StartBits and MaxBits are not stored
// in the output; Decompress must use the values Compress used.
type CCLzw struct {
	StartBits uint
	MaxBits   uint
}

// Config .
func (p *CCLzw) Config() cclzw.Config {
	return cclzw.Config{StartBits: p.StartBits, MaxBits: p.MaxBits}
}

// Compress .
func (p *CCLzw) Compress(in []byte) ([]byte, error) {
	out, err := cclzw.EncodeBytes(p.Config(), in)
	if err != nil {
		return nil, errors.Wrap(err, "CCLzw.Compress")
	}
	return out, nil
}

// Decompress .
func (p *CCLzw) Decompress(in []byte) ([]byte, error) {
	out, err := cclzw.DecodeBytes(p.Config(), in)
	if err != nil {
		return nil, errors.Wrap(err, "CCLzw.Decompress")
	}
	return out, nil
}

// NewLzw .
func NewLzw() *CCLzw {
	return &CCLzw{
		StartBits: cclzw.DefaultConfig.StartBits,
		MaxBits:   cclzw.DefaultConfig.MaxBits,
	}
}

// DefaultLzw .
var DefaultLzw = NewLzw()
