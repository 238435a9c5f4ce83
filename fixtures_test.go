package audesc_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// createWAV returns a canonical 16-bit PCM WAV holding frames frames.
func createWAV(channels uint16, rate uint32, frames uint32) []byte {
	blockAlign := uint32(channels) * 2
	dataSize := frames * blockAlign

	buf := &bytes.Buffer{}
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, channels)
	binary.Write(buf, binary.LittleEndian, rate)
	binary.Write(buf, binary.LittleEndian, rate*blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(make([]byte, dataSize))
	return buf.Bytes()
}

// createFLAC returns a stream marker and STREAMINFO block.
func createFLAC(rate uint64, channels, bits uint64, total uint64) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("fLaC")
	buf.Write([]byte{0x80, 0x00, 0x00, 0x22}) // last block, STREAMINFO, 34 bytes
	buf.Write(make([]byte, 10))                // block sizes, frame sizes

	packed := rate<<44 | (channels-1)<<41 | (bits-1)<<36 | total
	binary.Write(buf, binary.BigEndian, packed)
	buf.Write(make([]byte, 16)) // MD5
	return buf.Bytes()
}

// createMP3 returns an MPEG-1 Layer III 128 kbps 44.1 kHz frame after lead
// filler bytes.
func createMP3(lead int) []byte {
	data := make([]byte, lead, lead+417)
	data = append(data, 0xFF, 0xFB, 0x90, 0x44)
	return append(data, make([]byte, 413)...)
}

func writeFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatal(err)
	}
	return path
}
