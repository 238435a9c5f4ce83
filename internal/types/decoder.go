// Package types provides the core data structures shared by the format decoders.
//
// This package defines Decoder, Description, Value, Format, Options and the
// error types returned across the module.
package types

// Decoder reads stream metadata out of a format header.
//
// Implementations load their header once at construction. Every getter
// is a read over that header; a getter returns an error only when the
// header violates a structural invariant of the format.
type Decoder interface {
	// Path is the file the header was loaded from.
	Path() string
	// Format is the container format this decoder handles.
	Format() Format

	Duration() (Value[float64], error)
	SamplingRate() (Value[int], error)
	BitRate() (Value[int], error)
	ByteRate() (Value[int], error)
	ChannelsCount() (Value[int], error)
	NumSamples() (Value[int64], error)
	SampleWidth() (Value[int], error)

	// Describe aggregates the getters into a Description.
	Describe() (Description, error)
}
