package sources

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// CSVLoader reads a local export of the category sheet.
type CSVLoader struct {
	Path string
}

// NewCSVLoader creates a CSVLoader for path.
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{Path: path}
}

// Rows implements Loader.
func (l *CSVLoader) Rows(_ context.Context) ([][]string, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, l.Path)
		}
		return nil, fmt.Errorf("csv: open %q: %w", l.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: read %q: %w", l.Path, err)
	}
	return rows, nil
}
