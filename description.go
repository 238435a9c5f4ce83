package audesc

import (
	"github.com/simonhull/audesc/internal/types"
)

// Decoder is an alias to types.Decoder.
// Re-exporting from internal/types to maintain public API.
type Decoder = types.Decoder

// Description is an alias to types.Description.
// Re-exporting from internal/types to maintain public API.
type Description = types.Description

// Number is the set of numeric types a Value can hold.
type Number = types.Number

// Value is an alias to types.Value.
// Re-exporting from internal/types to maintain public API.
type Value[T Number] = types.Value[T]

// Known wraps a decoded value.
func Known[T Number](v T) Value[T] {
	return types.Known(v)
}

// Unknown returns the absent value for T.
func Unknown[T Number]() Value[T] {
	return types.Unknown[T]()
}
