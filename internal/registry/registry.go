// Package registry manages format-specific decoder factories.
package registry

import (
	"slices"
	"sync"

	"github.com/simonhull/audesc/internal/types"
)

// Factory constructs a decoder for the file at path, loading its header.
type Factory func(path string, opts types.Options) (types.Decoder, error)

var (
	mu        sync.RWMutex
	factories = make(map[types.Format]Factory)
)

// Register registers a factory for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[format] = f
}

// Get returns the factory for a given format.
// Returns nil if no factory is registered for the format.
func Get(format types.Format) Factory {
	mu.RLock()
	defer mu.RUnlock()
	return factories[format]
}

// Formats returns the registered formats in ascending order.
func Formats() []types.Format {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]types.Format, 0, len(factories))
	for f := range factories {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}
