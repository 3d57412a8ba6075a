package utils

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerFormatsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := newLogger(core)

	l.Debug("[scraper] hidden %d", 1)
	l.Info("[scraper] found %d services", 10)
	l.Warn("[fetcher] slow page %q", "https://coconala.com/services/1")
	l.Error("[csv] write failed: %v", "disk full")

	entries := logs.AllUntimed()
	if len(entries) != 3 {
		t.Fatalf("entries: got %d, want 3", len(entries))
	}

	want := []struct {
		level zapcore.Level
		msg   string
	}{
		{zapcore.InfoLevel, "[scraper] found 10 services"},
		{zapcore.WarnLevel, `[fetcher] slow page "https://coconala.com/services/1"`},
		{zapcore.ErrorLevel, "[csv] write failed: disk full"},
	}
	for i, w := range want {
		if entries[i].Level != w.level {
			t.Errorf("entry %d level: got %v, want %v", i, entries[i].Level, w.level)
		}
		if entries[i].Message != w.msg {
			t.Errorf("entry %d message: got %q, want %q", i, entries[i].Message, w.msg)
		}
	}
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	l := NewLogger("chatty")
	if l == nil {
		t.Fatal("NewLogger returned nil")
	}
	if l.sugar.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("unknown level should fall back to info, debug is enabled")
	}
	if !l.sugar.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be enabled")
	}
}
