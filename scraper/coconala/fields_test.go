package coconala

import "testing"

func TestParseRating(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"4.85", 4.85},
		{"5.0", 5.0},
		{"3.5 (120 reviews)", 3.5},
		{"３.５", 3.5},
		{"", 0},
		{"New", 0},
		{"6.0", 0},
	}

	for _, tt := range tests {
		got := parseRating(tt.raw)
		if got != tt.want {
			t.Errorf("parseRating(%q) = %.2f; want %.2f", tt.raw, got, tt.want)
		}
	}
}

func TestParseYen(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"5,000円", 5000},
		{"５，０００円〜", 5000},
		{"1000 円", 1000},
		{"価格なし", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := parseYen(tt.raw); got != tt.want {
			t.Errorf("parseYen(%q) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"(1,234件)", 1234},
		{"20", 20},
		{"なし", 0},
	}

	for _, tt := range tests {
		if got := parseCount(tt.raw); got != tt.want {
			t.Errorf("parseCount(%q) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}

func TestFormatYen(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5000, "5,000円"},
		{500, "500円"},
		{1234567, "1,234,567円"},
		{1500.5, "1,500.5円"},
		{0, ""},
		{-1, ""},
	}

	for _, tt := range tests {
		if got := formatYen(tt.in); got != tt.want {
			t.Errorf("formatYen(%v) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormaliseText(t *testing.T) {
	if got := normaliseText("  ロゴ \n  作成\tします "); got != "ロゴ 作成 します" {
		t.Errorf("normaliseText: got %q", got)
	}
}
