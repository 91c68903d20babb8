// ABOUTME: Writes the CSV export to a file path, creating parent directories
// ABOUTME: Content goes to a temp file in the same directory and is renamed into place

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"opencosts-api/core/domain"
)

// WriteCSVFile writes rows to path. Readers never observe a partially written file.
func WriteCSVFile(path string, rows []domain.ProviderRow, opts ...CSVOption) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := WriteCSV(tmp, rows, opts...); err != nil {
		tmp.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
