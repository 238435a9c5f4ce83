package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: FLAC STREAMINFO, MPEG audio frame headers, ID3v2.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: RIFF/WAVE chunk fields.
	LittleEndian
)

// Unsigned is the set of fixed-width fields the readers decode.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// ReadLE reads a numeric value of type T at the given offset using little-endian byte order.
//
// Example:
//
//	rate, err := binary.ReadLE[uint32](sr, 24, "sampling rate")
func ReadLE[T Unsigned](sr *SafeReader, off int64, what string) (T, error) {
	return ReadEndian[T](sr, off, what, LittleEndian)
}

// ReadBE reads a numeric value of type T at the given offset using big-endian byte order.
func ReadBE[T Unsigned](sr *SafeReader, off int64, what string) (T, error) {
	return ReadEndian[T](sr, off, what, BigEndian)
}

// ReadEndian reads a numeric value of type T at the given offset with specified byte order.
//
// This is the low-level function used by Read, ReadLE, and ReadBE.
func ReadEndian[T Unsigned](sr *SafeReader, off int64, what string, endian Endianness) (T, error) {
	var zero T
	buf := make([]byte, sizeOf[T]())
	if err := sr.ReadAt(buf, off, what); err != nil {
		return zero, err
	}

	var order binary.ByteOrder = binary.BigEndian
	if endian == LittleEndian {
		order = binary.LittleEndian
	}

	switch len(buf) {
	case 1:
		return T(buf[0]), nil
	case 2:
		return T(order.Uint16(buf)), nil
	case 4:
		return T(order.Uint32(buf)), nil
	default:
		return T(order.Uint64(buf)), nil
	}
}

func sizeOf[T Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}
