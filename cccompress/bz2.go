package cccompress

import (
	"bytes"
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/pkg/errors"
)

// CCBz2 .
type CCBz2 struct {
	CompressionLevel int
}

// Compress .
func (p *CCBz2) Compress(in []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, err := bzip2.NewWriter(&buffer, &bzip2.WriterConfig{
		Level: p.CompressionLevel})
	if err != nil {
		return nil, errors.Wrapf(err, "CCBz2.Compress.level[%v]", p.CompressionLevel)
	}
	if _, err = writer.Write(in); err != nil {
		writer.Close()
		return nil, errors.Wrap(err, "CCBz2.Compress.Write")
	}
	if err = writer.Close(); err != nil {
		return nil, errors.Wrap(err, "CCBz2.Compress.Close")
	}
	return buffer.Bytes(), nil
}

// Decompress .
func (p *CCBz2) Decompress(in []byte) ([]byte, error) {
	reader, err := bzip2.NewReader(bytes.NewReader(in), nil)
	if err != nil {
		return nil, errors.Wrap(err, "CCBz2.Decompress.NewReader")
	}
	defer reader.Close()

	out, err := io.ReadAll(reader)
	return out, errors.WithStack(err)
}

// NewBz2 .
func NewBz2() *CCBz2 {
	return &CCBz2{
		CompressionLevel: bzip2.DefaultCompression,
	}
}

// DefaultBz2 .
var DefaultBz2 = NewBz2()
