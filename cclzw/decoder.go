package cclzw

import (
	"io"

	"github.com/Yoech/CCLzw/ccbitio"
	"github.com/pkg/errors"
)

// entry is a decoded string stored as its prefix code plus one byte.
type entry struct {
	prefix uint32
	last   byte
	first  byte
	size   uint32
}

// Decoder .
type Decoder struct {
	cfg  Config
	opts options
}

// NewDecoder .
func NewDecoder(cfg Config, opts ...Option) *Decoder {
	return &Decoder{cfg: cfg, opts: buildOptions(opts)}
}

// Decode reads codes from r until it runs out and writes the expanded bytes
// to w.
//
// The decoder learns each entry one code late: after every code it reserves
// the index the encoder assigned at that point, and completes the entry with
// the first byte of the following code. A code equal to the reserved index is
// the string that entry is about to become.
func (d *Decoder) Decode(r io.ByteReader, w io.ByteWriter) (Stats, error) {
	var st Stats
	if r == nil || w == nil {
		return st, errors.Wrap(ErrInvalidParameters, "Decode.io.nil")
	}
	if err := d.cfg.Validate(); err != nil {
		return st, err
	}

	br := ccbitio.NewReader(r)
	bw := ccbitio.NewWriter(w)
	space := newCodeSpace(d.cfg)

	size := 1 << 16
	if d.cfg.StartBits < 16 {
		size = 1 << d.cfg.StartBits
	}
	table := make([]entry, alphabet, size)
	for b := range table {
		table[b] = entry{last: byte(b), first: byte(b), size: 1}
	}

	var (
		seq     sequence
		prev    uint32
		pending bool // table[len(table)] is reserved for the next code
	)
	// the reservation made after the last code is never completed, so the
	// width and freeze state reported are those the last code was read under
	width, frozen := space.width, space.full()
	for {
		code, err := br.ReadBits(space.width)
		if err == io.EOF {
			break
		}
		if err != nil {
			return st, errors.Wrap(err, "Decode.read")
		}
		width, frozen = space.width, space.full()
		if d.opts.trace != nil {
			d.opts.trace(code, width)
		}
		st.Codes++

		if pending && len(table) == cap(table) {
			grown := make([]entry, len(table), len(table)+space.room(len(table)))
			copy(grown, table)
			table = grown
		}

		switch {
		case code < uint32(len(table)):
			if pending {
				p := table[prev]
				table = append(table, entry{prefix: prev, last: table[code].first, first: p.first, size: p.size + 1})
			}
		case pending && code == uint32(len(table)):
			p := table[prev]
			table = append(table, entry{prefix: prev, last: p.first, first: p.first, size: p.size + 1})
		default:
			return st, errors.Wrapf(ErrCorrupt, "Decode.code[%v].width[%v].next[%v]", code, width, len(table))
		}

		for _, b := range expand(&seq, table, code) {
			if err = bw.WriteBits(uint32(b), 8); err != nil {
				return st, errors.Wrap(err, "Decode.write")
			}
		}

		prev = code
		_, pending = space.assign()
	}

	if bits, zero := br.Trailing(); bits >= 8 || !zero {
		return st, errors.Wrapf(ErrCorrupt, "Decode.trailing[%v].zero[%v]", bits, zero)
	}
	if err := bw.Flush(); err != nil {
		return st, errors.Wrap(err, "Decode.flush")
	}

	st.BytesIn = br.BytesRead()
	st.BytesOut = bw.BytesWritten()
	st.Entries = len(table)
	st.Width = width
	st.Frozen = frozen
	return st, nil
}

// expand spells the string of code into seq, last byte first.
func expand(seq *sequence, table []entry, code uint32) []byte {
	out := seq.reset(int(table[code].size))
	for i := len(out) - 1; i >= 0; i-- {
		e := table[code]
		out[i] = e.last
		code = e.prefix
	}
	return seq.bytes()
}
