package config

import "context"

// Loader is the interface for a format-specific pipeline definition loader.
type Loader interface {
	// Load reads pipeline definitions from the given paths and translates
	// them into the format-agnostic model. Loading is side-effect free;
	// a failed load returns a nil model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
