// File: pkg/bundle/execute.go
package bundle

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Run executes the bundling pipeline against dir: validate the
// configuration, enumerate and filter the directory's top-level files, sort
// them, optionally strip empty lines in place, then stream everything into
// the output file. The stages run strictly in sequence; the first error is
// terminal for the run. It returns the resolved output path.
func Run(fs afero.Fs, cfg *Config, dir string, logger *zap.Logger) (string, error) {
	startTime := time.Now()

	if err := cfg.Validate(); err != nil {
		return "", err
	}
	logger.Info("Starting bundle process",
		zap.String("directory", dir),
		zap.Strings("languages", cfg.Languages),
		zap.String("output", cfg.Output),
		zap.String("sort", cfg.Sort))

	files, err := Enumerate(fs, dir, logger)
	if err != nil {
		return "", fmt.Errorf("failed to collect files: %w", err)
	}

	files = Filter(files, cfg)
	logger.Debug("Filtered files", zap.Int("selectedCount", len(files)))

	Sort(files, cfg.Sort)

	if cfg.RemoveEmptyLines {
		if err := StripEmptyLines(fs, files, logger); err != nil {
			return "", fmt.Errorf("failed to remove empty lines: %w", err)
		}
	}

	if err := Write(fs, cfg, files, logger); err != nil {
		return "", fmt.Errorf("failed to write bundle: %w", err)
	}

	logger.Info("Successfully bundled files",
		zap.String("outputFile", cfg.Output),
		zap.Int("totalFiles", len(files)),
		zap.Duration("elapsed", time.Since(startTime)))
	return cfg.Output, nil
}
