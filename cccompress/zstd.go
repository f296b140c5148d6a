package cccompress

import (
	"bytes"
	"io"
	"runtime"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// CCZstd .
type CCZstd struct {
	Level zstd.EncoderLevel
}

// Compress .
func (p *CCZstd) Compress(in []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, err := zstd.NewWriter(&buffer,
		zstd.WithEncoderLevel(p.Level),
		zstd.WithEncoderConcurrency(runtime.NumCPU()))
	if err != nil {
		return nil, errors.Wrap(err, "CCZstd.Compress.NewWriter")
	}
	if _, err = writer.Write(in); err != nil {
		writer.Close()
		return nil, errors.Wrap(err, "CCZstd.Compress.Write")
	}
	if err = writer.Close(); err != nil {
		return nil, errors.Wrap(err, "CCZstd.Compress.Close")
	}
	return buffer.Bytes(), nil
}

// Decompress .
func (p *CCZstd) Decompress(in []byte) ([]byte, error) {
	reader, err := zstd.NewReader(bytes.NewReader(in))
	if err != nil {
		return nil, errors.Wrap(err, "CCZstd.Decompress.NewReader")
	}
	defer reader.Close()

	out, err := io.ReadAll(reader)
	return out, errors.WithStack(err)
}

// NewZstd .
func NewZstd() *CCZstd {
	return &CCZstd{
		Level: zstd.SpeedDefault,
	}
}

// DefaultZstd .
var DefaultZstd = NewZstd()
