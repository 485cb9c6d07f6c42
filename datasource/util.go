package datasource

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	uuid "github.com/gofrs/uuid"
	"github.com/pierrec/lz4"
)

// CompressedSuffix marks files which are transparently lz4-compressed on read and write
const CompressedSuffix = ".lz4"

// IsCompressed returns true iff the file at path is expected to hold lz4-compressed data
func IsCompressed(path string) bool {
	return strings.HasSuffix(path, CompressedSuffix)
}

// InitialBufferSize returns the size of the first buffer handed to a bufio.Scanner.
// The scanner treats the capacity of that buffer as a lower bound on its maximum token size.
func InitialBufferSize(maxBufferSize int) int {
	if maxBufferSize < 4096 {
		return maxBufferSize
	}
	return 4096
}

type compressedReadCloser struct {
	*lz4.Reader
	file *os.File
}

func (c *compressedReadCloser) Close() error {
	return c.file.Close()
}

// OpenFile opens a file for reading, decompressing it if its name ends in CompressedSuffix.
// Errors from the filesystem are returned unchanged.
func OpenFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !IsCompressed(path) {
		return f, nil
	}
	return &compressedReadCloser{Reader: lz4.NewReader(f), file: f}, nil
}

// WriteFile writes a file by handing a writer to fn. Data is written to a uniquely-named
// temporary file in the destination directory, which is renamed into place only once fn
// has succeeded. If the name of the file ends in CompressedSuffix, data is lz4-compressed.
func WriteFile(path string, fn func(w io.Writer) error) (err error) {
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	tmpPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+id.String()+".tmp")
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmpPath)
		}
	}()

	if IsCompressed(path) {
		compressor := lz4.NewWriter(f)
		if err = fn(compressor); err != nil {
			return err
		}
		if err = compressor.Close(); err != nil {
			return err
		}
	} else if err = fn(f); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
