// File: pkg/bundle/config.go
package bundle

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Sort modes accepted by the bundler.
const (
	SortByName = "name" // Order files by their name.
	SortByType = "type" // Order files by their extension.
)

// LanguageAll is the sentinel language value that disables extension
// filtering entirely.
const LanguageAll = "all"

// Config holds the options for a bundling run.
type Config struct {
	Languages        []string // Extensions to include (without leading dot), or the "all" sentinel.
	Output           string   // Destination path for the bundle; absolute after Validate.
	Note             bool     // If true, write a provenance comment line per bundled file.
	Sort             string   // Ordering of files in the bundle: "name" or "type".
	RemoveEmptyLines bool     // If true, strip blank lines from the selected files before bundling.
	Author           string   // Optional author line written at the top of the bundle.

	writeHeader bool // Decided once by Validate: Note set or Author non-empty.
}

// ParseLanguages splits a comma-separated language value into a normalized
// (trimmed, lower-cased) extension list. Empty tokens are dropped.
func ParseLanguages(value string) []string {
	var langs []string
	for _, tok := range strings.Split(value, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			langs = append(langs, tok)
		}
	}
	return langs
}

// Validate checks the required options, resolves the output path to an
// absolute path, and decides the header flag. It must succeed before any
// file I/O happens.
func (c *Config) Validate() error {
	if len(c.Languages) == 0 {
		return fmt.Errorf("missing language: provide --language with a comma-separated extension list or %q", LanguageAll)
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("missing output: provide --output with the destination file path")
	}

	abs, err := filepath.Abs(c.Output)
	if err != nil {
		return fmt.Errorf("failed to resolve output path %q: %w", c.Output, err)
	}
	c.Output = abs

	switch c.Sort {
	case SortByName, SortByType:
	default:
		return fmt.Errorf("invalid sort mode %q: must be %q or %q", c.Sort, SortByName, SortByType)
	}

	c.writeHeader = c.Note || c.Author != ""
	return nil
}

// WriteHeader reports whether the bundle gets a header block. Only valid
// after Validate.
func (c *Config) WriteHeader() bool {
	return c.writeHeader
}

// IncludesAll reports whether the language set contains the "all" sentinel.
func (c *Config) IncludesAll() bool {
	for _, lang := range c.Languages {
		if strings.EqualFold(lang, LanguageAll) {
			return true
		}
	}
	return false
}
