package types

import "log/slog"

// Options carries decoder configuration from the public options layer.
type Options struct {
	// Logger receives debug output. Nil means discard.
	Logger *slog.Logger

	// MaxScanBytes bounds how much of an MP3 file is loaded for the
	// frame sync search. Zero or negative loads the whole file.
	MaxScanBytes int64

	// SkipID3v2 starts the MP3 frame sync search after a leading ID3v2 tag.
	SkipID3v2 bool

	// Strict makes constructors reject headers that fail structural
	// checks the getters do not perform (WAV chunk ids).
	Strict bool
}

var discard = slog.New(slog.DiscardHandler)

// Log returns the configured logger, or one that drops everything.
func (o Options) Log() *slog.Logger {
	if o.Logger == nil {
		return discard
	}
	return o.Logger
}
