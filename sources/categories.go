// Package sources loads the category list that drives a run.
package sources

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"coconala-ranking/models"
)

// ErrSourceNotFound means the category input does not exist. It is the one
// failure that aborts a run.
var ErrSourceNotFound = errors.New("category source not found")

// Column headers of the category sheet.
const (
	ColumnLevel = "Category_level"
	ColumnName  = "第一階層"
	ColumnID    = "カテゴリ番号"
)

// Loader returns the raw category sheet, header row first.
type Loader interface {
	Rows(ctx context.Context) ([][]string, error)
}

// LoadCategories reads the sheet and keeps the first limit top-level rows.
// categoryURL maps a category id to its page URL.
func LoadCategories(ctx context.Context, loader Loader, limit int, categoryURL func(id string) string) ([]models.CategorySpec, error) {
	rows, err := loader.Rows(ctx)
	if err != nil {
		return nil, err
	}
	return parseCategories(rows, limit, categoryURL)
}

func parseCategories(rows [][]string, limit int, categoryURL func(id string) string) ([]models.CategorySpec, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("categories: empty sheet")
	}

	header := rows[0]
	levelCol, nameCol, idCol := indexOf(header, ColumnLevel), indexOf(header, ColumnName), indexOf(header, ColumnID)
	for col, idx := range map[string]int{ColumnLevel: levelCol, ColumnName: nameCol, ColumnID: idCol} {
		if idx < 0 {
			return nil, fmt.Errorf("categories: missing column %q", col)
		}
	}

	var categories []models.CategorySpec
	for _, row := range rows[1:] {
		if len(categories) >= limit {
			break
		}
		level, ok := parseLevel(cell(row, levelCol))
		if !ok || level != 1 {
			continue
		}
		id := trimFloatSuffix(cell(row, idCol))
		categories = append(categories, models.CategorySpec{
			Name:  cell(row, nameCol),
			URL:   categoryURL(id),
			ID:    id,
			Level: level,
		})
	}
	return categories, nil
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) == name {
			return i
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseLevel accepts "1" as well as spreadsheet exports such as "1.0".
func parseLevel(raw string) (int, bool) {
	n, err := strconv.Atoi(trimFloatSuffix(raw))
	return n, err == nil
}

func trimFloatSuffix(s string) string {
	return strings.TrimSuffix(s, ".0")
}
