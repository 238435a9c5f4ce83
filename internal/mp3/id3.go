package mp3

import "github.com/simonhull/audesc/internal/binary"

const (
	id3HeaderSize   = 10
	id3FooterSize   = 10
	id3FlagFooter   = 0x10
	id3Magic        = "ID3"
	id3MaxSizeBytes = 4
)

// id3v2Length returns the total length of a leading ID3v2 tag (header,
// body and optional footer), or 0 if the header does not start with one.
func id3v2Length(h *binary.Header) int {
	if h.Len() < id3HeaderSize || string(h.Slice(0, 3)) != id3Magic {
		return 0
	}

	flags := h.At(5)
	size := decodeSynchsafe(h.Slice(6, 6+id3MaxSizeBytes))

	n := id3HeaderSize + int(size)
	if flags&id3FlagFooter != 0 {
		n += id3FooterSize
	}
	return n
}

// decodeSynchsafe decodes a synchsafe integer (7 bits per byte).
func decodeSynchsafe(b []byte) uint32 {
	var v uint32
	for _, x := range b {
		v = v<<7 | uint32(x&0x7F)
	}
	return v
}
