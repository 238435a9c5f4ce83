package binary

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// OpenEnd as a Range end means "to the end of the file".
const OpenEnd int64 = -1

// Range is a half-open byte interval [Start, End) into a file.
type Range struct {
	Start int64
	End   int64
}

// Len returns the number of bytes in the range, 0 for an unresolved OpenEnd.
func (r Range) Len() int64 {
	if r.End == OpenEnd || r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r Range) String() string {
	if r.End == OpenEnd {
		return fmt.Sprintf("[%d,EOF)", r.Start)
	}
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

func (r Range) validate() error {
	if r.Start < 0 {
		return errors.New("negative range start")
	}
	if r.End != OpenEnd && r.End < r.Start {
		return fmt.Errorf("range end %d before start %d", r.End, r.Start)
	}
	return nil
}

// Header is an immutable byte sequence loaded once from a file range.
//
// Offsets passed to Header methods are relative to the start of the range.
type Header struct {
	data []byte
	path string
	rng  Range
}

// NewHeader wraps data already in memory. The slice is not copied.
func NewHeader(data []byte, path string) *Header {
	return &Header{
		data: data,
		path: path,
		rng:  Range{Start: 0, End: int64(len(data))},
	}
}

// Path returns the file the header was loaded from.
func (h *Header) Path() string {
	return h.path
}

// Range returns the resolved file range the header covers.
func (h *Header) Range() Range {
	return h.rng
}

// Len returns the number of loaded bytes.
func (h *Header) Len() int {
	return len(h.data)
}

// At returns the byte at index i.
func (h *Header) At(i int) byte {
	return h.data[i]
}

// Slice returns the bytes in [start, end). The result must not be modified.
func (h *Header) Slice(start, end int) []byte {
	return h.data[start:end:end]
}

// IndexByte returns the index of the first b at or after from, or -1.
func (h *Header) IndexByte(b byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= len(h.data) {
		return -1
	}
	i := bytes.IndexByte(h.data[from:], b)
	if i < 0 {
		return -1
	}
	return from + i
}

// ReadAt implements io.ReaderAt over the loaded bytes.
func (h *Header) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.New("negative offset")
	}
	if off >= int64(len(h.data)) {
		return 0, io.EOF
	}
	n := copy(p, h.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Reader returns a SafeReader over the loaded bytes.
func (h *Header) Reader() *SafeReader {
	return NewSafeReader(h, int64(len(h.data)), h.path)
}
