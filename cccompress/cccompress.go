package cccompress

import (
	"log"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/Yoech/CCLzw/ccutility"
	"github.com/pkg/errors"
)

// compressed mode
const (
	Uncompressed = 0
	GZip         = 1
	Zlib         = 2
	Bz2          = 3
	Lzw          = 4
	Lz4          = 5
	Zstd         = 6
)

// ErrUnknownMode .
var ErrUnknownMode = errors.New("cccompress: unknown compress mode")

// Codec .
type Codec interface {
	Compress(in []byte) ([]byte, error)
	Decompress(in []byte) ([]byte, error)
}

type modeInfo struct {
	name   string
	suffix string
	codec  func() Codec
}

var modes = map[int]modeInfo{
	Uncompressed: {"none", ".raw", func() Codec { return rawCodec{} }},
	GZip:         {"gzip", ".gz", func() Codec { return DefaultGzip }},
	Zlib:         {"zlib", ".zz", func() Codec { return DefaultZlib }},
	Bz2:          {"bzip2", ".bz2", func() Codec { return DefaultBz2 }},
	Lzw:          {"lzw", ".lzw", func() Codec { return DefaultLzw }},
	Lz4:          {"lz4", ".lz4", func() Codec { return DefaultLz4 }},
	Zstd:         {"zstd", ".zst", func() Codec { return DefaultZstd }},
}

// IsValidCompressMode .
func IsValidCompressMode(mode int) bool {
	_, ok := modes[mode]
	return ok
}

// ModeName .
func ModeName(mode int) string {
	if m, ok := modes[mode]; ok {
		return m.name
	}
	return "unknown"
}

// Suffix returns the file name suffix used for mode.
func Suffix(mode int) string {
	return modes[mode].suffix
}

// GetCodec .
func GetCodec(mode int) (Codec, error) {
	m, ok := modes[mode]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMode, "mode[%v]", mode)
	}
	return m.codec(), nil
}

type rawCodec struct{}

func (rawCodec) Compress(in []byte) ([]byte, error) {
	return append([]byte(nil), in...), nil
}

func (rawCodec) Decompress(in []byte) ([]byte, error) {
	return append([]byte(nil), in...), nil
}

// Compress .
func Compress(src []byte, compressMode int) ([]byte, error) {
	codec, err := GetCodec(compressMode)
	if err != nil {
		return nil, err
	}
	dst, err := codec.Compress(src)
	if err != nil {
		return nil, errors.Wrapf(err, "Compress[%v]", ModeName(compressMode))
	}
	return dst, nil
}

// Decompress .
func Decompress(src []byte, compressMode int) ([]byte, error) {
	codec, err := GetCodec(compressMode)
	if err != nil {
		return nil, err
	}
	dst, err := codec.Decompress(src)
	if err != nil {
		return nil, errors.Wrapf(err, "Decompress[%v]", ModeName(compressMode))
	}
	return dst, nil
}

// CompressFile writes filePath+Suffix(mode). The source is removed when bOverWrite is set.
func CompressFile(filePath string, compressMode int, bOverWrite bool) (dlen int64, err error) {
	src, err := ccutility.ReadBinary(filePath)
	if err != nil {
		return 0, errors.Wrapf(err, "CompressFile[%v].ReadBinary", filePath)
	}
	dst, err := Compress(src, compressMode)
	if err != nil {
		return 0, errors.Wrapf(err, "CompressFile[%v]", filePath)
	}
	dlen, err = ccutility.WriteBinary(filePath+Suffix(compressMode), dst)
	if err != nil {
		return 0, errors.Wrapf(err, "CompressFile[%v].WriteBinary", filePath)
	}
	if bOverWrite {
		if err = os.Remove(filePath); err != nil {
			return dlen, errors.Wrapf(err, "CompressFile[%v].Remove", filePath)
		}
	}
	return dlen, nil
}

// DecompressFile writes filePath without Suffix(mode), or filePath+".out" when
// the suffix is missing. The source is removed when bOverWrite is set.
func DecompressFile(filePath string, compressMode int, bOverWrite bool) (dlen int64, err error) {
	if !IsValidCompressMode(compressMode) {
		return 0, errors.Wrapf(ErrUnknownMode, "DecompressFile[%v].mode[%v]", filePath, compressMode)
	}
	src, err := ccutility.ReadBinary(filePath)
	if err != nil {
		return 0, errors.Wrapf(err, "DecompressFile[%v].ReadBinary", filePath)
	}
	dst, err := Decompress(src, compressMode)
	if err != nil {
		return 0, errors.Wrapf(err, "DecompressFile[%v]", filePath)
	}

	target := strings.TrimSuffix(filePath, Suffix(compressMode))
	if target == filePath {
		target = filePath + ".out"
	}
	dlen, err = ccutility.WriteBinary(target, dst)
	if err != nil {
		return 0, errors.Wrapf(err, "DecompressFile[%v].WriteBinary", filePath)
	}
	if bOverWrite {
		if err = os.Remove(filePath); err != nil {
			return dlen, errors.Wrapf(err, "DecompressFile[%v].Remove", filePath)
		}
	}
	return dlen, nil
}

// CompressFolders .
func CompressFolders(folders string, ext string, compressMode int, bOverWrite bool, iWorkerNum int) (successed int64, err error) {
	return eachFile(folders, ext, iWorkerNum, func(f string) error {
		_, err := CompressFile(f, compressMode, bOverWrite)
		return err
	})
}

// DecompressFolders only picks files ending in ext, or Suffix(mode) when ext is empty.
func DecompressFolders(folders string, ext string, compressMode int, bOverWrite bool, iWorkerNum int) (successed int64, err error) {
	if ext == "" {
		ext = Suffix(compressMode)
	}
	return eachFile(folders, ext, iWorkerNum, func(f string) error {
		_, err := DecompressFile(f, compressMode, bOverWrite)
		return err
	})
}

// eachFile splits the files under folders into one page per worker and runs
// fn on every file. It returns the number of files fn succeeded on and the
// last failure.
func eachFile(folders string, ext string, iWorkerNum int, fn func(f string) error) (successed int64, err error) {
	var allFile []string
	allFile, err = ccutility.GetAllFileByExt(folders, ext, allFile)
	if err != nil {
		return 0, err
	}

	total := len(allFile)
	if total == 0 {
		return 0, nil
	}
	if iWorkerNum < 1 {
		iWorkerNum = 1
	}

	pagePerCPU := 1
	if total > iWorkerNum {
		f := math.Ceil(float64(total) / float64(iWorkerNum))
		pagePerCPU = ccutility.Round(f)
	} else {
		iWorkerNum = total
	}

	var wg = &sync.WaitGroup{}
	var lock = new(sync.Mutex)

	for i := 0; i < iWorkerNum; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for idx := i * pagePerCPU; idx < (i+1)*pagePerCPU && idx < total; idx++ {
				e := fn(allFile[idx])
				lock.Lock()
				if e == nil {
					successed++
				} else {
					err = e
					log.Printf("f[%v].err[%v]", allFile[idx], e)
				}
				lock.Unlock()
			}
		}(i)
	}
	wg.Wait()
	return successed, err
}
