package cccompress

import (
	"sort"
	"time"

	"github.com/Yoech/CCLzw/ccutility"
	"github.com/pkg/errors"
)

// ErrMismatch .
var ErrMismatch = errors.New("cccompress: round trip mismatch")

// Report is the outcome of one codec on one input.
type Report struct {
	Mode     int
	Name     string
	Size     int           // compressed size in bytes
	Ratio    float64       // Size / len(src)
	Cost     time.Duration // compress plus decompress
	Verified bool
}

// Compare runs src through every compressing mode and checks that each one
// gives back the original bytes. Reports are ordered by mode.
func Compare(src []byte) ([]Report, error) {
	want := ccutility.Digest(src)

	var reports []Report
	for mode := range modes {
		if mode == Uncompressed {
			continue
		}
		s := time.Now()
		dst, err := Compress(src, mode)
		if err != nil {
			return reports, errors.Wrap(err, "Compare")
		}
		back, err := Decompress(dst, mode)
		if err != nil {
			return reports, errors.Wrap(err, "Compare")
		}
		r := Report{
			Mode:     mode,
			Name:     ModeName(mode),
			Size:     len(dst),
			Ratio:    ccutility.Ratio(len(src), len(dst)),
			Cost:     time.Since(s),
			Verified: len(back) == len(src) && ccutility.Digest(back) == want,
		}
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].Mode < reports[j].Mode })

	for _, r := range reports {
		if !r.Verified {
			return reports, errors.Wrapf(ErrMismatch, "Compare[%v]", r.Name)
		}
	}
	return reports, nil
}
