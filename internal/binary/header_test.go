package binary

import (
	"io"
	"testing"
)

func TestHeader_IndexByte(t *testing.T) {
	h := NewHeader([]byte{0x00, 0xFF, 0x10, 0xFF, 0xFF}, "test.mp3")

	tests := []struct {
		name string
		from int
		want int
	}{
		{"from start", 0, 1},
		{"at match", 1, 1},
		{"after first match", 2, 3},
		{"adjacent match", 4, 4},
		{"past end", 5, -1},
		{"negative from", -3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.IndexByte(0xFF, tt.from); got != tt.want {
				t.Errorf("IndexByte(0xFF, %d) = %d, want %d", tt.from, got, tt.want)
			}
		})
	}

	if got := h.IndexByte(0x42, 0); got != -1 {
		t.Errorf("IndexByte(absent) = %d, want -1", got)
	}
}

func TestHeader_ReadAt(t *testing.T) {
	h := NewHeader([]byte{1, 2, 3}, "x")

	buf := make([]byte, 2)
	n, err := h.ReadAt(buf, 1)
	if err != nil || n != 2 || buf[0] != 2 || buf[1] != 3 {
		t.Errorf("ReadAt(1) = %d, %v, %v", n, err, buf)
	}

	n, err = h.ReadAt(buf, 2)
	if err != io.EOF || n != 1 {
		t.Errorf("short ReadAt = %d, %v, want 1, EOF", n, err)
	}

	if _, err := h.ReadAt(buf, 3); err != io.EOF {
		t.Errorf("ReadAt past end err = %v, want EOF", err)
	}
}

func TestHeader_Reader(t *testing.T) {
	h := NewHeader([]byte{0x44, 0xAC, 0x00, 0x00}, "test.wav")

	rate, err := ReadLE[uint32](h.Reader(), 0, "sampling rate")
	if err != nil {
		t.Fatalf("ReadLE failed: %v", err)
	}
	if rate != 44100 {
		t.Errorf("rate = %d, want 44100", rate)
	}

	if _, err := ReadLE[uint32](h.Reader(), 2, "sampling rate"); err == nil {
		t.Error("expected bounds error reading past header")
	}
}

func TestRange_String(t *testing.T) {
	if got := (Range{Start: 0, End: 44}).String(); got != "[0,44)" {
		t.Errorf("String() = %q", got)
	}
	if got := (Range{Start: 4, End: OpenEnd}).String(); got != "[4,EOF)" {
		t.Errorf("String() = %q", got)
	}
	if got := (Range{Start: 4, End: OpenEnd}).Len(); got != 0 {
		t.Errorf("unresolved OpenEnd Len() = %d, want 0", got)
	}
}
