// File: pkg/bundle/strip.go
package bundle

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// StripEmptyLines rewrites each selected file in place with its empty lines
// removed. Only zero-length lines are dropped; whitespace-only lines stay.
// The rewrite must complete for every file before the writer starts reading,
// since the writer streams the post-strip bytes.
func StripEmptyLines(fs afero.Fs, files []File, logger *zap.Logger) error {
	for _, f := range files {
		content, err := afero.ReadFile(fs, f.Path)
		if err != nil {
			logger.Error("Failed to read file for empty-line removal", zap.String("file", f.Path), zap.Error(err))
			return fmt.Errorf("failed to read %s: %w", f.Path, err)
		}

		stripped := stripEmptyLines(string(content))
		if stripped == string(content) {
			continue
		}

		if err := afero.WriteFile(fs, f.Path, []byte(stripped), 0644); err != nil {
			logger.Error("Failed to rewrite file", zap.String("file", f.Path), zap.Error(err))
			return fmt.Errorf("failed to rewrite %s: %w", f.Path, err)
		}
		logger.Debug("Removed empty lines", zap.String("file", f.Path),
			zap.Int("beforeBytes", len(content)), zap.Int("afterBytes", len(stripped)))
	}
	return nil
}

// stripEmptyLines drops the lines that are exactly empty and rejoins the
// rest. Idempotent: a second pass over its own output changes nothing.
func stripEmptyLines(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
