package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"BASE_URL", "FETCH_MODE", "RANKING_LIMIT", "DELAY_SECONDS", "CATEGORY_SHEET_ID"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.BaseURL != "https://coconala.com" {
		t.Errorf("BaseURL: got %q", cfg.BaseURL)
	}
	if cfg.FetchMode != FetchModeHTTP {
		t.Errorf("FetchMode: got %q, want %q", cfg.FetchMode, FetchModeHTTP)
	}
	if cfg.RankingLimit != 10 {
		t.Errorf("RankingLimit: got %d, want 10", cfg.RankingLimit)
	}
	if cfg.Delay != 2*time.Second {
		t.Errorf("Delay: got %v, want 2s", cfg.Delay)
	}
	if cfg.UsesSheets() {
		t.Error("UsesSheets: got true with no sheet id")
	}
	if cfg.EnvFileLoaded {
		t.Error("EnvFileLoaded: got true in an empty directory")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BASE_URL", "https://example.test/")
	t.Setenv("RANKING_LIMIT", "5")
	t.Setenv("DELAY_SECONDS", "0.5")
	t.Setenv("FETCH_MODE", "Browser")
	t.Setenv("CATEGORY_SHEET_ID", "sheet-123")

	cfg := Load()
	if got := cfg.CategoryURL("7"); got != "https://example.test/categories/7" {
		t.Errorf("CategoryURL: got %q", got)
	}
	if cfg.RankingLimit != 5 {
		t.Errorf("RankingLimit: got %d, want 5", cfg.RankingLimit)
	}
	if cfg.Delay != 500*time.Millisecond {
		t.Errorf("Delay: got %v, want 500ms", cfg.Delay)
	}
	if cfg.FetchMode != FetchModeBrowser {
		t.Errorf("FetchMode: got %q, want %q", cfg.FetchMode, FetchModeBrowser)
	}
	if !cfg.UsesSheets() {
		t.Error("UsesSheets: got false with a sheet id")
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("OUTPUT_DIR", "")
	os.Unsetenv("OUTPUT_DIR")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("OUTPUT_DIR=/tmp/rankings\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()
	if !cfg.EnvFileLoaded {
		t.Error("EnvFileLoaded: got false")
	}
	if cfg.OutputDir != "/tmp/rankings" {
		t.Errorf("OutputDir: got %q", cfg.OutputDir)
	}
}

func TestGetEnvIntInvalid(t *testing.T) {
	t.Setenv("RANKING_LIMIT", "ten")
	if got := getEnvInt("RANKING_LIMIT", 10); got != 10 {
		t.Errorf("getEnvInt: got %d, want fallback 10", got)
	}
}
