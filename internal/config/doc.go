// Package config defines the format-agnostic ingestion model for material
// documents, along with the Loader interface that format-specific loaders
// implement. The config.Row is the single handoff type between a loader
// and the registry builder: loaders deal with syntax, the registry deals
// with structural validation.
package config
