// Package testutil provides shared helpers for building registries from
// inline HCL documents in tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/matprops/internal/config"
	"github.com/vk/matprops/internal/hcl"
	"github.com/vk/matprops/internal/registry"
)

// LoadRows writes the given HCL document to a temp file and runs it through
// the HCL loader, failing the test on any load error.
func LoadRows(t *testing.T, document string) []config.Row {
	t.Helper()

	path := WriteDocument(t, document)
	rows, err := hcl.NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	return rows
}

// BuildRegistry loads an inline HCL document and builds a registry from it,
// failing the test if either step errors.
func BuildRegistry(t *testing.T, document string) *registry.Registry {
	t.Helper()

	reg, err := registry.Build(LoadRows(t, document))
	require.NoError(t, err)
	return reg
}

// WriteDocument persists an inline document under t.TempDir and returns its path.
func WriteDocument(t *testing.T, document string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "materials.hcl")
	require.NoError(t, os.WriteFile(path, []byte(document), 0600))
	return path
}
