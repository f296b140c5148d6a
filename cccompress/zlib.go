package cccompress

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/pkg/errors"
)

// CCZlib .
type CCZlib struct {
	CompressionLevel int
}

// Compress .
func (p *CCZlib) Compress(in []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, err := zlib.NewWriterLevel(&buffer, p.CompressionLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "CCZlib.Compress.level[%v]", p.CompressionLevel)
	}
	if _, err = writer.Write(in); err != nil {
		writer.Close()
		return nil, errors.Wrap(err, "CCZlib.Compress.Write")
	}
	if err = writer.Close(); err != nil {
		return nil, errors.Wrap(err, "CCZlib.Compress.Close")
	}
	return buffer.Bytes(), nil
}

// Decompress .
func (p *CCZlib) Decompress(in []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(in))
	if err != nil {
		return nil, errors.Wrap(err, "CCZlib.Decompress.NewReader")
	}
	defer reader.Close()

	out, err := io.ReadAll(reader)
	return out, errors.WithStack(err)
}

// NewZlib .
func NewZlib() *CCZlib {
	return &CCZlib{
		CompressionLevel: zlib.DefaultCompression,
	}
}

// DefaultZlib .
var DefaultZlib = NewZlib()
