package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	FetchModeHTTP    = "http"
	FetchModeBrowser = "browser"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Config holds all application configuration loaded from environment variables.
// Categories, Delay and OutputName are normally overridden from the command line.
type Config struct {
	BaseURL   string
	UserAgent string
	FetchMode string
	ChromeBin string

	RequestTimeout time.Duration
	RankingLimit   int

	CategoryCSVPath       string
	CategorySheetID       string
	CategorySheetRange    string
	SheetsCredentials     string
	SheetsCredentialsFile string

	OutputDir  string
	OutputName string
	RulesPath  string
	LogLevel   string

	Categories int
	Delay      time.Duration

	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool
}

// Load reads the .env file, if any, and returns a populated Config struct.
func Load() *Config {
	loaded := godotenv.Load() == nil

	return &Config{
		BaseURL:   strings.TrimRight(getEnv("BASE_URL", "https://coconala.com"), "/"),
		UserAgent: getEnv("USER_AGENT", defaultUserAgent),
		FetchMode: strings.ToLower(getEnv("FETCH_MODE", FetchModeHTTP)),
		ChromeBin: getEnv("CHROME_BIN", ""),

		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		RankingLimit:   getEnvInt("RANKING_LIMIT", 10),

		CategoryCSVPath:       getEnv("CATEGORY_CSV_PATH", "./list/category_sheet.csv"),
		CategorySheetID:       getEnv("CATEGORY_SHEET_ID", ""),
		CategorySheetRange:    getEnv("CATEGORY_SHEET_RANGE", "A1:Z"),
		SheetsCredentials:     strings.TrimSpace(getEnv("GOOGLE_SHEETS_CREDENTIALS", "")),
		SheetsCredentialsFile: getEnv("GOOGLE_SHEETS_CREDENTIALS_FILE", ""),

		OutputDir:  getEnv("OUTPUT_DIR", "./output"),
		OutputName: getEnv("OUTPUT_NAME", "coconala_ranking_fixed.csv"),
		RulesPath:  getEnv("EXTRACTOR_RULES_PATH", ""),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		Categories: getEnvInt("CATEGORIES", 1),
		Delay:      time.Duration(getEnvFloat("DELAY_SECONDS", 2.0) * float64(time.Second)),

		EnvFileLoaded: loaded,
	}
}

// CategoryURL returns the category page URL for a category id.
func (c *Config) CategoryURL(id string) string {
	return c.BaseURL + "/categories/" + id
}

// UsesSheets reports whether categories come from Google Sheets rather than a CSV file.
func (c *Config) UsesSheets() bool {
	return c.CategorySheetID != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}
