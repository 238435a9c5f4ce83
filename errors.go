package audesc

import (
	"github.com/simonhull/audesc/internal/types"
)

// FileNotFoundError is an alias to types.FileNotFoundError.
// Re-exporting from internal/types to maintain public API.
type FileNotFoundError = types.FileNotFoundError

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Re-exporting from internal/types to maintain public API.
type OutOfBoundsError = types.OutOfBoundsError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exporting from internal/types to maintain public API.
type UnsupportedFormatError = types.UnsupportedFormatError

// CorruptedFileError is an alias to types.CorruptedFileError.
// Re-exporting from internal/types to maintain public API.
type CorruptedFileError = types.CorruptedFileError
