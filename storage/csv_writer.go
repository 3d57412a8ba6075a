package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"coconala-ranking/models"
)

// Header is the fixed column order of the export.
var Header = []string{
	"ranking", "category_name", "service_name", "rating",
	"description_length", "has_faq", "has_sample_conversation",
	"recent_30_days_reviews", "price", "total_reviews",
	"service_url", "category_url",
}

// CSVWriter writes service records to a timestamp-prefixed CSV file.
type CSVWriter struct {
	path   string
	file   *os.File
	writer *csv.Writer
}

// OutputPath returns "{dir}/{YYYYMMDD_HHMMSS}_{name}".
func OutputPath(dir, name string, now time.Time) string {
	return filepath.Join(dir, now.Format("20060102_150405")+"_"+name)
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{path: path, file: f, writer: w}, nil
}

// Path returns the file being written.
func (c *CSVWriter) Path() string {
	return c.path
}

// Write appends one row per record.
func (c *CSVWriter) Write(records []*models.ServiceRecord) error {
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Rank),
			r.CategoryName,
			r.ServiceName,
			formatFloat(r.Rating),
			strconv.Itoa(r.DescriptionLength),
			formatBool(r.HasFAQ),
			formatBool(r.HasSampleConversation),
			strconv.Itoa(r.Recent30DayReviews),
			r.Price,
			strconv.Itoa(r.TotalReviews),
			r.ServiceURL,
			r.CategoryURL,
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

// formatFloat always keeps a decimal point: 4 → "4.0", 4.85 → "4.85".
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
