package config

import (
	"context"
	"fmt"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths (files or directories)
	// and translates it into the format-agnostic model. Paths that do not
	// exist are skipped.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// MultiLoader runs several loaders over the same paths and merges their
// models in loader order. Record order follows the loaders first and the
// files second: every record from the first loader precedes every record
// from the second, whatever the file names. Validation lets the first
// record with a given name own it, so loader order decides which of two
// same-named targets in different formats is kept.
type MultiLoader []Loader

// Load implements Loader.
func (m MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	merged := NewModel()
	for i, l := range m {
		model, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, fmt.Errorf("loader %d: %w", i, err)
		}
		merged.Merge(model)
	}
	return merged, nil
}
