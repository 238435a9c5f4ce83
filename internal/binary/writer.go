package binary

import (
	"encoding/binary"
	"io"
)

// SafeWriter wraps io.Writer with position tracking.
//
// The decoders never write; SafeWriter builds header fixtures in tests.
type SafeWriter struct {
	w      io.Writer
	offset int64
}

// NewSafeWriter creates a new SafeWriter.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{w: w}
}

// Offset returns the current position (number of bytes written).
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// WriteBytes writes raw bytes to the underlying writer.
func (sw *SafeWriter) WriteBytes(b []byte) error {
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	return err
}

// WriteString writes a string as bytes to the underlying writer.
func (sw *SafeWriter) WriteString(s string) error {
	return sw.WriteBytes([]byte(s))
}

// Write writes a value of type T in big-endian byte order.
func Write[T Unsigned](sw *SafeWriter, val T) error {
	return writeEndian(sw, val, binary.BigEndian)
}

// WriteLE writes a value of type T in little-endian byte order.
func WriteLE[T Unsigned](sw *SafeWriter, val T) error {
	return writeEndian(sw, val, binary.LittleEndian)
}

// WritePacked writes the low n bytes of val big-endian. It is the inverse
// of ShiftRight/MaskBytes for bit-packed fields of up to 8 bytes.
func WritePacked(sw *SafeWriter, val uint64, n int) error {
	buf := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		buf[i] = byte(val)
		val >>= 8
	}
	return sw.WriteBytes(buf)
}

func writeEndian[T Unsigned](sw *SafeWriter, val T, order binary.ByteOrder) error {
	buf := make([]byte, sizeOf[T]())
	switch len(buf) {
	case 1:
		buf[0] = byte(val)
	case 2:
		order.PutUint16(buf, uint16(val))
	case 4:
		order.PutUint32(buf, uint32(val))
	default:
		order.PutUint64(buf, uint64(val))
	}
	return sw.WriteBytes(buf)
}
