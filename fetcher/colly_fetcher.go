package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

// CollyFetcher fetches pages over plain HTTP with a fixed User-Agent and no
// cookies.
type CollyFetcher struct {
	collector *colly.Collector
}

// NewCollyFetcher creates a CollyFetcher. A zero timeout keeps colly's default.
func NewCollyFetcher(userAgent string, timeout time.Duration) *CollyFetcher {
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowURLRevisit(),
	)
	c.DisableCookies()
	if timeout > 0 {
		c.SetRequestTimeout(timeout)
	}
	return &CollyFetcher{collector: c}
}

// Fetch implements the Fetcher interface.
func (f *CollyFetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Clone shares the HTTP backend but starts without callbacks.
	c := f.collector.Clone()
	c.Context = ctx

	var body []byte
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	if err := c.Visit(url); err != nil {
		return nil, fmt.Errorf("fetch: get %q: %w", url, err)
	}
	c.Wait()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("fetch: parse %q: %w", url, err)
	}
	return doc, nil
}

// Close is a no-op; the collector holds no long-lived resources.
func (f *CollyFetcher) Close() error {
	return nil
}
