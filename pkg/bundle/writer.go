// File: pkg/bundle/writer.go
package bundle

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Write creates (or truncates) the bundle output and streams the selected
// files into it in their given order. A single buffered writer carries both
// the comment lines and the raw byte copies, so the two cannot interleave
// out of order. Bytes already flushed when an error occurs stay on disk.
func Write(fs afero.Fs, cfg *Config, files []File, logger *zap.Logger) error {
	logger.Debug("Writing bundle", zap.String("output", cfg.Output), zap.Int("fileCount", len(files)))

	outFile, err := fs.Create(cfg.Output)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", cfg.Output), zap.Error(err))
		return fmt.Errorf("failed to create output file %s: %w", cfg.Output, err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			logger.Error("Failed to close output file", zap.String("file", cfg.Output), zap.Error(err))
		}
	}()

	writer := bufio.NewWriter(outFile)

	if cfg.WriteHeader() {
		if cfg.Author != "" {
			if _, err := fmt.Fprintf(writer, "// Author: %s\n", cfg.Author); err != nil {
				return fmt.Errorf("failed to write author line: %w", err)
			}
		}
		if _, err := fmt.Fprintf(writer, "\n// - %s\n", filepath.Base(cfg.Output)); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for _, f := range files {
		if cfg.Note {
			if _, err := fmt.Fprintf(writer, "//     - %s\n", f.Name); err != nil {
				return fmt.Errorf("failed to write provenance line for %s: %w", f.Name, err)
			}
		}
		if err := copyFile(fs, writer, f, logger); err != nil {
			return err
		}
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", cfg.Output), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

// copyFile streams one source file's raw bytes into the bundle verbatim.
func copyFile(fs afero.Fs, writer io.Writer, f File, logger *zap.Logger) error {
	src, err := fs.Open(f.Path)
	if err != nil {
		logger.Error("Failed to open source file", zap.String("file", f.Path), zap.Error(err))
		return fmt.Errorf("failed to open %s: %w", f.Path, err)
	}
	defer src.Close()

	n, err := io.Copy(writer, src)
	if err != nil {
		logger.Error("Failed to copy source file into bundle", zap.String("file", f.Path), zap.Error(err))
		return fmt.Errorf("failed to copy %s: %w", f.Path, err)
	}

	logger.Debug("Copied file into bundle", zap.String("file", f.Path), zap.Int64("bytes", n))
	return nil
}
