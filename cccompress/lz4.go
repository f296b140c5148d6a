package cccompress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4"
	"github.com/pkg/errors"
)

// CCLz4 .
type CCLz4 struct {
	CompressionLevel int
}

// Compress .
func (p *CCLz4) Compress(in []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer := lz4.NewWriter(&buffer)
	writer.Header.CompressionLevel = p.CompressionLevel
	if _, err := writer.Write(in); err != nil {
		writer.Close()
		return nil, errors.Wrap(err, "CCLz4.Compress.Write")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "CCLz4.Compress.Close")
	}
	return buffer.Bytes(), nil
}

// Decompress .
func (p *CCLz4) Decompress(in []byte) ([]byte, error) {
	reader := lz4.NewReader(bytes.NewReader(in))
	out, err := io.ReadAll(reader)
	return out, errors.WithStack(err)
}

// NewLz4 .
func NewLz4() *CCLz4 {
	return &CCLz4{
		CompressionLevel: 9,
	}
}

// DefaultLz4 .
var DefaultLz4 = NewLz4()
