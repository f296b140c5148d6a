package cctrie

import (
	"testing"
	"unsafe"
)

func TestInsertLookup(t *testing.T) {
	trie := New()
	if trie.Len() != 0 {
		t.Fatalf("Expected empty trie, got %d", trie.Len())
	}

	for _, tc := range []struct {
		seq  string
		code uint32
		ok   bool
	}{
		{seq: "a", code: 97, ok: true},
		{seq: "b", code: 98, ok: true},
		{seq: "ab", code: 256, ok: true},
		{seq: "abc", code: 257, ok: true},
		{seq: "ab", code: 300, ok: false},  // already present
		{seq: "xyz", code: 301, ok: false}, // prefix missing
		{seq: "", code: 302, ok: false},
	} {
		if got := trie.Insert([]byte(tc.seq), tc.code); got != tc.ok {
			t.Errorf("Insert(%q): expected %v, got %v", tc.seq, tc.ok, got)
		}
	}

	for _, tc := range []struct {
		seq  string
		code uint32
		ok   bool
	}{
		{seq: "a", code: 97, ok: true},
		{seq: "ab", code: 256, ok: true},
		{seq: "abc", code: 257, ok: true},
		{seq: "abcd", ok: false},
		{seq: "c", ok: false},
		{seq: "", ok: false},
	} {
		code, ok := trie.Lookup([]byte(tc.seq))
		if ok != tc.ok || (ok && code != tc.code) {
			t.Errorf("Lookup(%q): expected (%d, %v), got (%d, %v)", tc.seq, tc.code, tc.ok, code, ok)
		}
		if trie.Contains([]byte(tc.seq)) != tc.ok {
			t.Errorf("Contains(%q): expected %v", tc.seq, tc.ok)
		}
	}

	if trie.Len() != 4 {
		t.Errorf("Expected 4 sequences, got %d", trie.Len())
	}
}

func TestPrefixClosure(t *testing.T) {
	trie := New()
	if trie.Insert([]byte("hello"), 1) {
		t.Fatalf("Insert without prefixes must fail")
	}
	for i := 1; i <= len("hello"); i++ {
		if !trie.Insert([]byte("hello"[:i]), uint32(i)) {
			t.Fatalf("Insert(%q) failed", "hello"[:i])
		}
	}
	for i := 1; i <= len("hello"); i++ {
		code, ok := trie.Lookup([]byte("hello"[:i]))
		if !ok || code != uint32(i) {
			t.Errorf("Lookup(%q): expected %d, got %d (%v)", "hello"[:i], i, code, ok)
		}
	}
}

func TestAllBytesAndDensePromotion(t *testing.T) {
	trie := New()
	for i := 0; i < 256; i++ {
		if !trie.Insert([]byte{byte(i)}, uint32(i)) {
			t.Fatalf("Insert single byte %d failed", i)
		}
	}

	// grow one node well past the sparse limit, in a scrambled order
	code := uint32(256)
	for i := 0; i < 256; i++ {
		b := byte(i * 167)
		if !trie.Insert([]byte{'q', b}, code) {
			t.Fatalf("Insert(q,%d) failed", b)
		}
		code++
	}
	for i := 0; i < 256; i++ {
		b := byte(i * 167)
		got, ok := trie.Lookup([]byte{'q', b})
		if !ok || got != uint32(256+i) {
			t.Fatalf("Lookup(q,%d): expected %d, got %d (%v)", b, 256+i, got, ok)
		}
	}
	if trie.Insert([]byte{'q', 0}, 9999) {
		t.Errorf("Duplicate insert after promotion must fail")
	}
	if trie.Len() != 512 {
		t.Errorf("Expected 512 sequences, got %d", trie.Len())
	}
}

func TestPromotionBoundary(t *testing.T) {
	for _, kids := range []int{denseAt - 1, denseAt, denseAt + 1, 255, 256} {
		trie := New()
		a, _ := trie.Extend(Root, 'a', 97)
		for i := 0; i < kids; i++ {
			if _, ok := trie.Extend(a, byte(i*37), uint32(256+i)); !ok {
				t.Fatalf("kids=%d: Extend(a, %d) failed", kids, byte(i*37))
			}
		}
		for i := 0; i < 256; i++ {
			b := byte(i * 37)
			c, ok := trie.Child(a, b)
			if ok != (i < kids) {
				t.Fatalf("kids=%d: Child(a, %d): expected %v, got %v", kids, b, i < kids, ok)
			}
			if ok && trie.Code(c) != uint32(256+i) {
				t.Errorf("kids=%d: Code(a%d): expected %d, got %d", kids, b, 256+i, trie.Code(c))
			}
		}
	}
}

func TestNodeSize(t *testing.T) {
	// a full 24-bit dictionary holds 1<<24 nodes
	if size := unsafe.Sizeof(node{}); size > 20 {
		t.Errorf("Expected a node of at most 20 bytes, got %d", size)
	}
}

func TestGrow(t *testing.T) {
	trie := New()
	trie.Grow(1000)
	if trie.Cap() < 1000 {
		t.Fatalf("Expected room for 1000 sequences, got %d", trie.Cap())
	}
	a, _ := trie.Extend(Root, 'a', 97)
	trie.Grow(5000)
	if trie.Cap() < 5001 {
		t.Fatalf("Expected room for 5001 sequences, got %d", trie.Cap())
	}
	if c, ok := trie.Child(Root, 'a'); !ok || c != a || trie.Code(c) != 97 {
		t.Errorf("Grow lost the stored sequence")
	}
}

func TestCursor(t *testing.T) {
	trie := New()
	a, ok := trie.Extend(Root, 'a', 97)
	if !ok {
		t.Fatal("Extend(root, a) failed")
	}
	if _, ok := trie.Extend(Root, 'a', 1); ok {
		t.Errorf("Extend of an existing edge must fail")
	}
	ab, ok := trie.Extend(a, 'b', 256)
	if !ok {
		t.Fatal("Extend(a, b) failed")
	}
	if got, ok := trie.Child(a, 'b'); !ok || got != ab {
		t.Errorf("Child(a, b): expected %d, got %d (%v)", ab, got, ok)
	}
	if _, ok := trie.Child(ab, 'c'); ok {
		t.Errorf("Child(ab, c) must be absent")
	}
	if trie.Code(ab) != 256 {
		t.Errorf("Code(ab): expected 256, got %d", trie.Code(ab))
	}
	if n, ok := trie.Find([]byte("ab")); !ok || n != ab {
		t.Errorf("Find(ab): expected %d, got %d (%v)", ab, n, ok)
	}
}

func BenchmarkLookup(b *testing.B) {
	trie := New()
	for i := 0; i < 256; i++ {
		trie.Insert([]byte{byte(i)}, uint32(i))
	}
	seq := []byte("abcdefghijklmnop")
	for i := 2; i <= len(seq); i++ {
		trie.Insert(seq[:i], uint32(254+i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := trie.Lookup(seq); !ok {
			b.Fatal("missing")
		}
	}
}
