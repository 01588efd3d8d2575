package hcl

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/matprops/internal/config"
	"github.com/vk/matprops/internal/ctxlog"
	"github.com/vk/matprops/internal/schema"
)

// Loader is the HCL-specific implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .hcl file reachable from the given paths (a path may be
// a single file or a directory searched recursively), decodes the material
// blocks, and returns rows in document order. Parse and decode failures
// surface as errors carrying the HCL diagnostics, which include file and
// source-range information.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]config.Row, error) {
	logger := ctxlog.FromContext(ctx)

	var filePaths []string
	for _, path := range paths {
		found, err := findDocumentFiles(path)
		if err != nil {
			return nil, fmt.Errorf("failed to locate material documents under %s: %w", path, err)
		}
		filePaths = append(filePaths, found...)
	}

	if len(filePaths) == 0 {
		logger.Warn("No .hcl material documents found.", "paths", paths)
		return nil, nil
	}
	logger.Debug("Found material documents to load.", "files", filePaths)

	parser := hclparse.NewParser()
	var rows []config.Row

	for _, filePath := range filePaths {
		file, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %s", filePath, diags.Error())
		}

		var doc schema.Document
		if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %s", filePath, diags.Error())
		}

		for _, mat := range doc.Materials {
			row, err := l.translateMaterial(mat)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", filePath, err)
			}
			rows = append(rows, row)
		}
		logger.Debug("Loaded material document.", "file", filePath, "materials_found", len(doc.Materials))
	}

	logger.Info("Material documents loaded.", "files", len(filePaths), "materials", len(rows))
	return rows, nil
}

// findDocumentFiles resolves a path to the list of .hcl files it names:
// the path itself if it is a file, otherwise every .hcl file under it.
func findDocumentFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
