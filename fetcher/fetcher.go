// Package fetcher retrieves pages and hands them back as parsed documents.
package fetcher

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"coconala-ranking/config"
	"coconala-ranking/utils"
)

// Fetcher performs a single GET for a page and parses the response.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
	Close() error
}

// New builds the fetcher selected by cfg.FetchMode.
func New(cfg *config.Config, logger *utils.Logger) (Fetcher, error) {
	switch cfg.FetchMode {
	case config.FetchModeHTTP, "":
		return NewCollyFetcher(cfg.UserAgent, cfg.RequestTimeout), nil
	case config.FetchModeBrowser:
		return NewChromeFetcher(cfg, logger), nil
	default:
		return nil, fmt.Errorf("fetch: unknown mode %q", cfg.FetchMode)
	}
}
