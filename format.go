package audesc

import (
	"github.com/simonhull/audesc/internal/binary"
	"github.com/simonhull/audesc/internal/registry"
	"github.com/simonhull/audesc/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to maintain public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatWAV     = types.FormatWAV
	FormatFLAC    = types.FormatFLAC
	FormatMP3     = types.FormatMP3
)

// ParseFormat maps a format name such as "wav" or ".flac" to a Format.
func ParseFormat(name string) Format {
	return types.ParseFormat(name)
}

// DetectFormat sniffs the format of the file at path from its leading bytes.
func DetectFormat(path string) (Format, error) {
	magic, err := binary.LoadPrefix(path, types.SniffLength)
	if err != nil {
		return FormatUnknown, err
	}
	return types.DetectFormat(magic, path)
}

// SupportedFormats returns the formats Open can decode.
func SupportedFormats() []Format {
	return registry.Formats()
}
