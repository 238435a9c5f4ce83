// Package binary provides bounds-checked byte access, the byte range loader
// and the bit-field helpers the format decoders are built on.
package binary

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/simonhull/audesc/internal/types"
)

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the number of readable bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt reads len(b) bytes at the given offset with context for error messages.
//
// Reads that do not fit inside the reader return *types.OutOfBoundsError.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size || off+int64(len(b)) > sr.size {
		return &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: len(b),
			Size:   sr.size,
		}
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d",
			sr.path, what, off, n, len(b))
	}

	return nil
}

// Read reads a big-endian value of type T from the given offset.
func Read[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string) (T, error) {
	return ReadEndian[T](sr, off, what, BigEndian)
}

// Load reads the byte range r of the file at path.
//
// The file is opened and closed on every call. A missing path returns
// *types.FileNotFoundError. A bounded range that runs past the end of the
// file returns *types.OutOfBoundsError; an OpenEnd range reads to EOF.
func Load(path string, r Range) (*Header, error) {
	return load(path, r, false)
}

// LoadAtMost is Load with the end of r clamped to the file size, so a file
// shorter than the range yields a shorter header instead of an error.
func LoadAtMost(path string, r Range) (*Header, error) {
	return load(path, r, true)
}

// LoadPrefix reads at most n leading bytes of the file at path.
func LoadPrefix(path string, n int64) ([]byte, error) {
	h, err := LoadAtMost(path, Range{Start: 0, End: n})
	if err != nil {
		return nil, err
	}
	return h.data, nil
}

func load(path string, r Range, clampEnd bool) (*Header, error) {
	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f, size, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if r.End == OpenEnd || (clampEnd && r.End > size) {
		r.End = max(size, r.Start)
	}
	if r.Len() == 0 {
		return &Header{path: path, rng: r}, nil
	}

	data := make([]byte, r.Len())
	sr := NewSafeReader(f, size, path)
	if err := sr.ReadAt(data, r.Start, "header range "+r.String()); err != nil {
		return nil, err
	}

	return &Header{data: data, path: path, rng: r}, nil
}

func open(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, &types.FileNotFoundError{Path: path, Err: err}
		}
		return nil, 0, fmt.Errorf("open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("stat file: %w", err)
	}

	return f, stat.Size(), nil
}
