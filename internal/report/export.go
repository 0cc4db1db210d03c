package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes one summary as <dir>/<name>.csv and returns the written
// path. rows must be a pointer to a slice of csv-tagged records.
func WriteCSV(dir, name string, rows any) (string, error) {
	path := filepath.Join(dir, name+".csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := gocsv.MarshalFile(rows, f); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
