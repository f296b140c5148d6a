package ccutility

import (
	"bytes"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// GetAllFileByExt appends every file below pathname whose name ends in ext,
// compared case-insensitively, to s.
func GetAllFileByExt(pathname string, ext string, s []string) ([]string, error) {
	rd, err := os.ReadDir(pathname)
	if err != nil {
		log.Printf("GetAllFileByExt.ReadDir[%v].err[%v]", pathname, err)
		return s, errors.Wrapf(err, "GetAllFileByExt.ReadDir[%v]", pathname)
	}
	for _, fi := range rd {
		fullName := filepath.Join(pathname, fi.Name())
		if fi.IsDir() {
			s, err = GetAllFileByExt(fullName, ext, s)
			if err != nil {
				return s, err
			}
		} else if strings.HasSuffix(strings.ToLower(fi.Name()), strings.ToLower(ext)) {
			s = append(s, fullName)
		}
	}
	return s, nil
}

// Round .
func Round(f float64) int {
	return int(math.Floor(f + 0.5))
}

// Ratio returns dst/src rounded to 4 decimals, or 0 for an empty src.
func Ratio(src, dst int) float64 {
	if src == 0 {
		return 0
	}
	return float64(Round(float64(dst)/float64(src)*10000)) / 10000
}

// Digest .
func Digest(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// ReadBinary .
func ReadBinary(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "ReadBinary[%v].Open", filePath)
	}

	defer file.Close()

	buf := bytes.Buffer{}

	_, err = io.Copy(&buf, file)
	if err != nil {
		return nil, errors.Wrapf(err, "ReadBinary[%v].Read", filePath)
	}

	if err = file.Close(); err != nil {
		return nil, errors.Wrapf(err, "ReadBinary[%v].Close", filePath)
	}

	return buf.Bytes(), nil
}

// WriteBinary creates filePath, and any missing parent directory, holding src.
func WriteBinary(filePath string, src []byte) (int64, error) {
	dirs := filepath.Dir(filePath)

	err := os.MkdirAll(dirs, os.ModePerm)
	if err != nil {
		log.Printf("WriteBinary.MkdirAll[%v].err[%v]", dirs, err)
		return 0, errors.Wrapf(err, "WriteBinary.MkdirAll[%v]", dirs)
	}

	fs, err := os.Create(filePath)
	if err != nil {
		log.Printf("WriteBinary.Create[%v].err[%v]", filePath, err)
		return 0, errors.Wrapf(err, "WriteBinary.Create[%v]", filePath)
	}

	var dlen int64
	dlen, err = io.Copy(fs, bytes.NewReader(src))
	if err != nil {
		fs.Close()
		log.Printf("WriteBinary.Copy[%v].err[%v]", filePath, err)
		return 0, errors.Wrapf(err, "WriteBinary.Copy[%v]", filePath)
	}

	err = fs.Close()
	if err != nil {
		log.Printf("WriteBinary.Close[%v].err[%v]", filePath, err)
		return 0, errors.Wrapf(err, "WriteBinary.Close[%v]", filePath)
	}

	return dlen, nil
}
