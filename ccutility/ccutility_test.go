package ccutility

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{2.5, 3},
		{7.9, 8},
	}
	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio(0, 10); got != 0 {
		t.Errorf("Ratio(0, 10) = %v, want 0", got)
	}
	if got := Ratio(10, 5); got != 0.5 {
		t.Errorf("Ratio(10, 5) = %v, want 0.5", got)
	}
	if got := Ratio(3, 1); got != 0.3333 {
		t.Errorf("Ratio(3, 1) = %v, want 0.3333", got)
	}
}

func TestDigest(t *testing.T) {
	a := Digest([]byte("TOBEORNOTTOBEORTOBEORNOT"))
	b := Digest([]byte("TOBEORNOTTOBEORTOBEORNOT"))
	c := Digest([]byte("TOBEORNOTTOBEORTOBEORNOU"))
	if a != b {
		t.Errorf("same input hashed to %x and %x", a, b)
	}
	if a == c {
		t.Errorf("different inputs both hashed to %x", a)
	}
}

func TestWriteReadBinary(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "a", "b", "c.bin")
	src := []byte{0, 1, 2, 0xff}

	n, err := WriteBinary(name, src)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(src)) {
		t.Errorf("WriteBinary wrote %v bytes, want %v", n, len(src))
	}

	got, err := ReadBinary(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, src) {
		t.Errorf("ReadBinary = %x, want %x", got, src)
	}

	if _, err = ReadBinary(filepath.Join(dir, "missing")); err == nil {
		t.Error("ReadBinary of a missing file succeeded")
	}
}

func TestGetAllFileByExt(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"x.txt", "y.TXT", "z.bin", "sub/w.txt", "sub/deep/v.txt"} {
		p := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(p), os.ModePerm); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(f), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := GetAllFileByExt(dir, ".txt", nil)
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(got)
	want := []string{
		filepath.Join(dir, "sub", "deep", "v.txt"),
		filepath.Join(dir, "sub", "w.txt"),
		filepath.Join(dir, "x.txt"),
		filepath.Join(dir, "y.TXT"),
	}
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file %d = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err = GetAllFileByExt(filepath.Join(dir, "nope"), ".txt", nil); err == nil {
		t.Error("missing directory did not fail")
	}
}
