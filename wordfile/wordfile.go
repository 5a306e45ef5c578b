// Package wordfile loads word lists from disk and prepares output
// locations. Word lists are plain .txt files, one word per line.
package wordfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrNotWordFile indicates a word-list path without a .txt extension.
var ErrNotWordFile = errors.New("wordfile: word lists must be .txt files")

// ReadLines returns the lines of the .txt file at path, stripped of
// surrounding whitespace and line endings. A missing or unreadable file
// is a precondition failure; it is propagated, never retried.
func ReadLines(path string) ([]string, error) {
	if filepath.Ext(path) != ".txt" {
		return nil, ErrNotWordFile
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordfile: opening word list: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordfile: reading word list: %w", err)
	}
	return lines, nil
}

// EnsureDir creates dir if it does not already exist.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("wordfile: %s exists and is not a directory", dir)
		}
		log.Debug().Str("dir", dir).Msg("output directory already exists")
		return nil
	}
	log.Info().Str("dir", dir).Msg("creating output directory")
	return os.MkdirAll(dir, 0o755)
}
