package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsLoader reads the category sheet straight from Google Sheets.
type SheetsLoader struct {
	service       *sheets.Service
	spreadsheetID string
	readRange     string
}

// NewSheetsLoader creates a loader for one spreadsheet range. Credentials
// normally come from ServiceAccountCredentials.
func NewSheetsLoader(ctx context.Context, spreadsheetID, readRange string, opts ...option.ClientOption) (*SheetsLoader, error) {
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}
	return &SheetsLoader{
		service:       service,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}, nil
}

// Rows implements Loader. A missing spreadsheet maps to ErrSourceNotFound.
func (l *SheetsLoader) Rows(ctx context.Context) ([][]string, error) {
	resp, err := l.service.Spreadsheets.Values.Get(l.spreadsheetID, l.readRange).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
			return nil, fmt.Errorf("%w: spreadsheet %s", ErrSourceNotFound, l.spreadsheetID)
		}
		return nil, fmt.Errorf("sheets: read %s!%s: %w", l.spreadsheetID, l.readRange, err)
	}
	return stringRows(resp.Values), nil
}

func stringRows(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = fmt.Sprint(v)
		}
	}
	return rows
}

// ServiceAccountCredentials returns the client option for a service account
// key, read from path when set, otherwise from the inline JSON.
func ServiceAccountCredentials(inline, path string) (option.ClientOption, error) {
	credsJSON := []byte(inline)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("sheets: read credentials file: %w", err)
		}
		credsJSON = data
	}
	if len(credsJSON) == 0 {
		return nil, fmt.Errorf("sheets: no credentials: set GOOGLE_SHEETS_CREDENTIALS or GOOGLE_SHEETS_CREDENTIALS_FILE")
	}

	var creds struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(credsJSON, &creds); err != nil {
		return nil, fmt.Errorf("sheets: invalid credentials JSON: %w", err)
	}
	if creds.Type != "service_account" {
		return nil, fmt.Errorf("sheets: credentials must be a service account key, got type %q", creds.Type)
	}
	return option.WithCredentialsJSON(credsJSON), nil
}
