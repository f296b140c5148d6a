// Package ccbitio packs and unpacks integer codes of 1..32 bits onto a byte
// stream. Bits are taken most-significant first, so a code that straddles a
// byte boundary continues in the high bits of the next byte:
//
//	WriteBits(0b101, 3)
//	WriteBits(0b11, 2)
//	Flush()            // one byte: 1011 1000
package ccbitio

import (
	"github.com/pkg/errors"
)

// MaxWidth is the widest code a single read or write may carry.
const MaxWidth = 32

// ErrWidth is returned for a width of 0 or above MaxWidth.
var ErrWidth = errors.New("ccbitio: width out of range")

func checkWidth(width uint) error {
	if width == 0 || width > MaxWidth {
		return errors.Wrapf(ErrWidth, "width[%v]", width)
	}
	return nil
}
