package cclzw

// sequence is the reusable buffer a decoded string is spelled into.
type sequence struct {
	b []byte
}

// reset empties the buffer and sizes it to n bytes, reusing its storage.
func (s *sequence) reset(n int) []byte {
	if cap(s.b) < n {
		s.b = make([]byte, n, 2*n)
	}
	s.b = s.b[:n]
	return s.b
}

func (s *sequence) bytes() []byte {
	return s.b
}
