package cclzw

import (
	"io"

	"github.com/Yoech/CCLzw/ccbitio"
	"github.com/Yoech/CCLzw/cctrie"
	"github.com/pkg/errors"
)

// Encoder .
type Encoder struct {
	cfg  Config
	opts options
}

// NewEncoder .
func NewEncoder(cfg Config, opts ...Option) *Encoder {
	return &Encoder{cfg: cfg, opts: buildOptions(opts)}
}

// newDictionary returns a trie holding every single byte under its own value.
func newDictionary() *cctrie.Trie {
	dict := cctrie.New()
	for b := 0; b < alphabet; b++ {
		dict.Extend(cctrie.Root, byte(b), uint32(b))
	}
	return dict
}

// Encode reads r to the end and writes the code stream to w. Each call builds
// its own dictionary, so an Encoder may be reused but not shared between
// concurrent calls' readers and writers.
func (e *Encoder) Encode(r io.ByteReader, w io.ByteWriter) (Stats, error) {
	var st Stats
	if r == nil || w == nil {
		return st, errors.Wrap(ErrInvalidParameters, "Encode.io.nil")
	}
	if err := e.cfg.Validate(); err != nil {
		return st, err
	}

	br := ccbitio.NewReader(r)
	bw := ccbitio.NewWriter(w)
	dict := newDictionary()
	space := newCodeSpace(e.cfg)

	emit := func(n cctrie.Node) error {
		code := dict.Code(n)
		if e.opts.trace != nil {
			e.opts.trace(code, space.width)
		}
		st.Codes++
		return bw.WriteBits(code, space.width)
	}

	// cur is the dictionary node of the longest match so far
	cur, matching := cctrie.Root, false
	for {
		v, err := br.ReadBits(8)
		if err == io.EOF {
			break
		}
		if err != nil {
			return st, errors.Wrap(err, "Encode.read")
		}
		b := byte(v)

		if !matching {
			cur, _ = dict.Child(cctrie.Root, b)
			matching = true
			continue
		}
		if next, ok := dict.Child(cur, b); ok {
			cur = next
			continue
		}

		if err = emit(cur); err != nil {
			return st, errors.Wrap(err, "Encode.write")
		}
		if code, ok := space.assign(); ok {
			if dict.Len() == dict.Cap() {
				dict.Grow(space.room(dict.Len()))
			}
			dict.Extend(cur, b, code)
		}
		cur, _ = dict.Child(cctrie.Root, b)
	}

	if matching {
		if err := emit(cur); err != nil {
			return st, errors.Wrap(err, "Encode.write")
		}
	}
	if err := bw.Flush(); err != nil {
		return st, errors.Wrap(err, "Encode.flush")
	}

	st.BytesIn = br.BytesRead()
	st.BytesOut = bw.BytesWritten()
	st.Entries = dict.Len()
	st.Width = space.width
	st.Frozen = space.full()
	return st, nil
}
