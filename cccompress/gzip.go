package cccompress

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/pkg/errors"
)

// CCGzip .
type CCGzip struct {
	CompressionLevel int
}

// Compress .
func (p *CCGzip) Compress(in []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, err := gzip.NewWriterLevel(&buffer, p.CompressionLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "CCGzip.Compress.level[%v]", p.CompressionLevel)
	}
	if _, err = writer.Write(in); err != nil {
		writer.Close()
		return nil, errors.Wrap(err, "CCGzip.Compress.Write")
	}
	if err = writer.Close(); err != nil {
		return nil, errors.Wrap(err, "CCGzip.Compress.Close")
	}
	return buffer.Bytes(), nil
}

// Decompress .
func (p *CCGzip) Decompress(in []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(in))
	if err != nil {
		return nil, errors.Wrap(err, "CCGzip.Decompress.NewReader")
	}
	defer reader.Close()

	out, err := io.ReadAll(reader)
	return out, errors.WithStack(err)
}

// NewGzip .
func NewGzip() *CCGzip {
	return &CCGzip{
		CompressionLevel: gzip.DefaultCompression,
	}
}

// DefaultGzip .
var DefaultGzip = NewGzip()
