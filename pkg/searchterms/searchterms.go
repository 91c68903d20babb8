// ABOUTME: Loads the name fragments a pipeline run matches against
// ABOUTME: Reads one term per line and falls back to defaults when the file is missing

package searchterms

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"opencosts-api/core/interfaces"
)

// Load reads terms from path. A missing file logs a warning and returns defaults;
// any other read error is returned.
func Load(path string, defaults []string, logger interfaces.Logger) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if logger != nil {
				logger.Warn("Search terms file not found, using default search terms", map[string]interface{}{
					"path":     path,
					"defaults": defaults,
				})
			}
			return append([]string(nil), defaults...), nil
		}
		return nil, fmt.Errorf("open search terms: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse returns the trimmed non-blank lines of r in order
func Parse(r io.Reader) ([]string, error) {
	terms := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if term := strings.TrimSpace(scanner.Text()); term != "" {
			terms = append(terms, term)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read search terms: %w", err)
	}
	return terms, nil
}

// SplitList parses a comma-separated list such as a CLI flag or query parameter
func SplitList(list string) []string {
	terms := make([]string, 0)
	for _, part := range strings.Split(list, ",") {
		if term := strings.TrimSpace(part); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}
