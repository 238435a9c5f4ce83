package audesc

import (
	"log/slog"

	"github.com/simonhull/audesc/internal/types"
)

// Option configures how files are opened and described.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	d, err := audesc.Open("stream.bin",
//	    audesc.WithFormat(audesc.FormatMP3),
//	    audesc.WithSkipID3v2(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	format      Format // Forced format (FormatUnknown = detect)
	concurrency int    // DescribeMany worker limit (0 = runtime.NumCPU())
	decoder     types.Options
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		format:      FormatUnknown,
		concurrency: 0,
	}
}

func applyOptions(opts []Option) *openOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFormat skips detection and opens the file as format f.
//
// By default the format is chosen by file extension, falling back to the
// file's leading bytes when the extension is missing or unrecognized.
//
// Example:
//
//	d, err := audesc.Open("capture.raw", audesc.WithFormat(audesc.FormatWAV))
func WithFormat(f Format) Option {
	return func(o *openOptions) {
		o.format = f
	}
}

// WithMaxScanBytes bounds how many leading bytes of an MP3 file are loaded
// for the frame sync search.
//
// By default the whole file is loaded. A sync beyond the window is
// reported as a CorruptedFileError.
//
// Example:
//
//	// Give up on files with more than 1MB of leading junk
//	d, err := audesc.Open("song.mp3", audesc.WithMaxScanBytes(1<<20))
func WithMaxScanBytes(n int64) Option {
	return func(o *openOptions) {
		o.decoder.MaxScanBytes = n
	}
}

// WithSkipID3v2 starts the MP3 frame sync search after a leading ID3v2 tag.
//
// By default the search starts at offset 0, so a sync pattern inside tag
// data (embedded artwork, for example) can be mistaken for the first frame.
func WithSkipID3v2() Option {
	return func(o *openOptions) {
		o.decoder.SkipID3v2 = true
	}
}

// WithStrictParsing rejects WAV files whose chunk layout is not the
// canonical RIFF, WAVE, "fmt ", "data" sequence.
//
// By default the fixed header offsets are read regardless of chunk ids,
// so a file with a LIST chunk before "data" opens but reports values
// read from the wrong bytes.
//
// Example:
//
//	d, err := audesc.Open("take.wav", audesc.WithStrictParsing())
//	// err is a *CorruptedFileError if an extra chunk precedes "data"
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.decoder.Strict = true
	}
}

// WithLogger routes decoder debug output to l.
//
// Default is no logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *openOptions) {
		o.decoder.Logger = l
	}
}

// WithConcurrency limits how many files DescribeMany reads at once.
//
// Default is runtime.NumCPU(). Values below 1 keep the default.
func WithConcurrency(n int) Option {
	return func(o *openOptions) {
		o.concurrency = n
	}
}
