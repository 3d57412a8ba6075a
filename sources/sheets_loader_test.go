package sources

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/api/option"
)

func newSheetsServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/v4/spreadsheets/sheet-1/values/") {
			http.Error(w, "unexpected path "+r.URL.Path, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSheetsLoaderRows(t *testing.T) {
	srv := newSheetsServer(t, http.StatusOK, `{
  "range": "シート1!A1:Z3",
  "majorDimension": "ROWS",
  "values": [
    ["Category_level", "第一階層", "カテゴリ番号"],
    ["1", "デザイン", "1"],
    ["2", "ロゴ作成", "101"]
  ]
}`)

	loader, err := NewSheetsLoader(context.Background(), "sheet-1", "A1:Z",
		option.WithEndpoint(srv.URL+"/"), option.WithoutAuthentication())
	if err != nil {
		t.Fatalf("NewSheetsLoader: %v", err)
	}

	got, err := LoadCategories(context.Background(), loader, 5, categoryURL)
	if err != nil {
		t.Fatalf("LoadCategories: %v", err)
	}
	if len(got) != 1 || got[0].Name != "デザイン" || got[0].URL != "https://coconala.com/categories/1" {
		t.Errorf("got %+v", got)
	}
}

func TestSheetsLoaderNotFound(t *testing.T) {
	srv := newSheetsServer(t, http.StatusNotFound, `{"error":{"code":404,"message":"Requested entity was not found.","status":"NOT_FOUND"}}`)

	loader, err := NewSheetsLoader(context.Background(), "sheet-1", "A1:Z",
		option.WithEndpoint(srv.URL+"/"), option.WithoutAuthentication())
	if err != nil {
		t.Fatalf("NewSheetsLoader: %v", err)
	}
	if _, err := loader.Rows(context.Background()); !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("got %v, want ErrSourceNotFound", err)
	}
}

func TestStringRows(t *testing.T) {
	rows := stringRows([][]interface{}{{"1", float64(2)}, {}})
	if len(rows) != 2 || rows[0][0] != "1" || rows[0][1] != "2" || len(rows[1]) != 0 {
		t.Errorf("got %v", rows)
	}
}

func TestServiceAccountCredentials(t *testing.T) {
	if _, err := ServiceAccountCredentials("", ""); err == nil {
		t.Error("expected error without credentials")
	}
	if _, err := ServiceAccountCredentials(`{"type":"authorized_user"}`, ""); err == nil {
		t.Error("expected error for non service account")
	}
	if _, err := ServiceAccountCredentials(`{not json`, ""); err == nil {
		t.Error("expected error for invalid JSON")
	}

	path := filepath.Join(t.TempDir(), "key.json")
	if err := os.WriteFile(path, []byte(`{"type":"service_account"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if opt, err := ServiceAccountCredentials("", path); err != nil || opt == nil {
		t.Errorf("file credentials: got %v, %v", opt, err)
	}
}
