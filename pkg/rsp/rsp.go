// Package rsp generates response files from interactive prompts and expands
// @<path> arguments back into flag tokens for replay.
package rsp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Generate interactively collects the bundle options and writes them as
// flag lines into path. Each answer is read as one line from in; prompts
// and per-field warnings go to out. Every field is written in fixed order
// even when its answer is empty. A malformed boolean answer is reported and
// falls back to false instead of aborting the generator.
func Generate(fs afero.Fs, in io.Reader, out io.Writer, path string, logger *zap.Logger) error {
	reader := bufio.NewReader(in)

	output := promptString(reader, out, "Output bundle path: ")
	language := promptString(reader, out, "Language (comma-separated extensions, or all): ")
	note := promptBool(reader, out, "Include provenance notes (true/false): ")
	sortMode := promptString(reader, out, "Sort mode (name/type): ")
	removeEmpty := promptBool(reader, out, "Remove empty lines (true/false): ")
	author := promptString(reader, out, "Author: ")

	file, err := fs.Create(path)
	if err != nil {
		logger.Error("Failed to create response file", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("failed to create response file %s: %w", path, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Error("Failed to close response file", zap.String("file", path), zap.Error(err))
		}
	}()

	writer := bufio.NewWriter(file)
	fmt.Fprintf(writer, "-o %s\n", output)
	fmt.Fprintf(writer, "-l %s\n", language)
	fmt.Fprintf(writer, "-n=%t\n", note)
	fmt.Fprintf(writer, "-s %s\n", sortMode)
	fmt.Fprintf(writer, "--remove-empty-lines=%t\n", removeEmpty)
	fmt.Fprintf(writer, "-a %s\n", author)

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush response file", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("failed to write response file %s: %w", path, err)
	}

	logger.Info("Wrote response file", zap.String("file", path))
	return nil
}

// ExpandArgs replaces every @<path> argument with the whitespace-split
// tokens of that file, leaving all other arguments untouched. This is how a
// generated response file replays into a bundle invocation.
func ExpandArgs(fs afero.Fs, args []string) ([]string, error) {
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") || len(arg) == 1 {
			expanded = append(expanded, arg)
			continue
		}

		path := arg[1:]
		content, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read response file %s: %w", path, err)
		}
		expanded = append(expanded, strings.Fields(string(content))...)
	}
	return expanded, nil
}

// promptString writes the prompt and returns the next input line, trimmed.
func promptString(reader *bufio.Reader, out io.Writer, prompt string) string {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// promptBool reads a boolean answer. An unparseable answer is reported and
// defaults to false; generation continues with the remaining prompts.
func promptBool(reader *bufio.Reader, out io.Writer, prompt string) bool {
	answer := promptString(reader, out, prompt)
	if answer == "" {
		return false
	}
	value, err := strconv.ParseBool(answer)
	if err != nil {
		fmt.Fprintf(out, "Invalid boolean %q, using false\n", answer)
		return false
	}
	return value
}
