package cclzw

// codeSpace hands out dictionary codes and tracks the current code width.
// Encoder and decoder drive identical copies of it, one assign per learned
// entry, so their widths never drift apart.
type codeSpace struct {
	width    uint
	maxWidth uint
	next     uint32
	limit    uint32
}

func newCodeSpace(cfg Config) codeSpace {
	return codeSpace{
		width:    cfg.StartBits,
		maxWidth: cfg.MaxBits,
		next:     firstCode,
		limit:    1 << cfg.MaxBits,
	}
}

func (s *codeSpace) full() bool {
	return s.next >= s.limit
}

// assign returns the next free code, widening once the code after it would
// not fit the current width. It fails once the space is exhausted.
func (s *codeSpace) assign() (uint32, bool) {
	if s.full() {
		return 0, false
	}
	code := s.next
	s.next++
	if s.next > 1<<s.width-1 && s.width < s.maxWidth {
		s.width++
	}
	return code, true
}

// room returns how far a table of n entries should grow: it doubles, but
// never past the code space.
func (s *codeSpace) room(n int) int {
	return max(1, min(n, int(s.limit)-n))
}
