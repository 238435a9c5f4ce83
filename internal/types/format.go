package types

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-audio/riff"
)

// Format represents the container format of an audio file.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatWAV represents RIFF/WAVE files.
	FormatWAV
	// FormatFLAC represents FLAC streams.
	FormatFLAC
	// FormatMP3 represents MPEG audio (Layer I/II/III) streams.
	FormatMP3
)

// SniffLength is the number of leading bytes DetectFormat needs.
const SniffLength = 12

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "WAV"
	case FormatFLAC:
		return "FLAC"
	case FormatMP3:
		return "MP3"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatWAV:
		return []string{".wav", ".wave"}
	case FormatFLAC:
		return []string{".flac"}
	case FormatMP3:
		return []string{".mp3"}
	default:
		return nil
	}
}

// ParseFormat maps a format name ("wav", "FLAC", ".mp3") to a Format.
func ParseFormat(name string) Format {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	for _, f := range []Format{FormatWAV, FormatFLAC, FormatMP3} {
		for _, ext := range f.Extensions() {
			if ext[1:] == name {
				return f
			}
		}
	}
	return FormatUnknown
}

// FormatFromPath selects a format by file extension.
func FormatFromPath(path string) Format {
	ext := filepath.Ext(path)
	if ext == "" {
		return FormatUnknown
	}
	return ParseFormat(ext)
}

// DetectFormat determines the format from the leading bytes of a file.
//
// magic should hold the first SniffLength bytes (fewer for short files).
// Detection checks signatures only; it does not validate the header.
func DetectFormat(magic []byte, path string) (Format, error) {
	if len(magic) < 4 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "file too small",
		}
	}

	// FLAC stream marker
	if string(magic[:4]) == "fLaC" {
		return FormatFLAC, nil
	}

	// RIFF....WAVE
	if len(magic) >= 12 &&
		bytes.Equal(magic[0:4], riff.RiffID[:]) &&
		bytes.Equal(magic[8:12], riff.WavFormatID[:]) {
		return FormatWAV, nil
	}

	// ID3v2 tag in front of MPEG frames
	if string(magic[:3]) == "ID3" {
		return FormatMP3, nil
	}

	// Bare MPEG frame sync
	if magic[0] == 0xFF && magic[1]&0xE0 == 0xE0 {
		return FormatMP3, nil
	}

	return FormatUnknown, &UnsupportedFormatError{
		Path:   path,
		Reason: "unrecognized file signature",
	}
}
