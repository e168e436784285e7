package main

import (
	"log"
	"os"
	"slices"
	"strings"

	"srcbundle/cmd"
	"srcbundle/pkg/logging"
	"srcbundle/pkg/version"

	"golang.org/x/term"
)

func main() {
	// The logger has to exist before cobra parses anything, so the debug
	// toggle is detected from the raw arguments here.
	debug := slices.Contains(os.Args[1:], "--debug")

	logger, err := logging.Setup(debug, "srcbundle", version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	code := cmd.Execute(logger)

	// Check if stderr is a terminal or a regular file before attempting to sync.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}

	os.Exit(code)
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
