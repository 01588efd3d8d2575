package config

import "context"

// Loader is the interface for a format-specific material document loader.
type Loader interface {
	// Load reads one or more document paths (files or directories),
	// translates their contents into format-agnostic rows, and returns
	// them in document order. Load reports syntax and decoding problems;
	// structural validation of the row contents happens later, in the
	// registry builder.
	Load(ctx context.Context, paths ...string) ([]Row, error)
}
