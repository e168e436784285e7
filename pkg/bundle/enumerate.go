// File: pkg/bundle/enumerate.go
package bundle

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// File is a read-only view of a filesystem entry selected for bundling.
type File struct {
	Name string // Base name of the file.
	Path string // Full path to the file.
	Ext  string // Extension including the leading dot, "" if none.
}

// Enumerate lists the top-level files of dir in filesystem enumeration
// order. Subdirectories are skipped, never descended into.
func Enumerate(fs afero.Fs, dir string, logger *zap.Logger) ([]File, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		logger.Error("Failed to read directory", zap.String("dir", dir), zap.Error(err))
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, File{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
			Ext:  filepath.Ext(entry.Name()),
		})
	}

	logger.Debug("Enumerated directory", zap.String("dir", dir), zap.Int("fileCount", len(files)))
	return files, nil
}

// Filter keeps the files whose extension is in the configured language set.
// The "all" sentinel passes every file. Extensions compare without the
// leading dot, case-insensitively. Order is preserved.
func Filter(files []File, cfg *Config) []File {
	if cfg.IncludesAll() {
		return files
	}

	var kept []File
	for _, f := range files {
		ext := strings.ToLower(strings.TrimPrefix(f.Ext, "."))
		for _, lang := range cfg.Languages {
			if ext == lang {
				kept = append(kept, f)
				break
			}
		}
	}
	return kept
}
