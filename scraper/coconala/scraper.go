// Package coconala collects category rankings and service details from the
// coconala marketplace.
package coconala

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"coconala-ranking/config"
	"coconala-ranking/fetcher"
	"coconala-ranking/models"
	"coconala-ranking/reviews"
	"coconala-ranking/utils"
)

// Scraper walks categories one at a time: ranking page first, then each
// ranked service's detail page.
type Scraper struct {
	cfg       *config.Config
	logger    *utils.Logger
	fetcher   fetcher.Fetcher
	throttle  *utils.Throttle
	extractor *Extractor
	base      *url.URL
}

// New creates a ready-to-use Scraper.
func New(cfg *config.Config, logger *utils.Logger, f fetcher.Fetcher, throttle *utils.Throttle, extractor *Extractor) (*Scraper, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("coconala: parse base url %q: %w", cfg.BaseURL, err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("coconala: base url %q is not absolute", cfg.BaseURL)
	}
	return &Scraper{
		cfg:       cfg,
		logger:    logger,
		fetcher:   f,
		throttle:  throttle,
		extractor: extractor,
		base:      base,
	}, nil
}

// ScrapeCategories processes categories in order and returns every record
// collected. Page failures are logged and skipped; only context
// cancellation stops the run early, returning what was collected so far.
func (s *Scraper) ScrapeCategories(ctx context.Context, categories []models.CategorySpec) ([]*models.ServiceRecord, error) {
	var records []*models.ServiceRecord

	for i, category := range categories {
		s.logger.Info("[coconala] %s", strings.Repeat("=", 60))
		s.logger.Info("[coconala] Progress: category %d/%d", i+1, len(categories))

		categoryRecords, err := s.ScrapeCategory(ctx, category)
		records = append(records, categoryRecords...)
		if err != nil {
			return records, err
		}

		if i < len(categories)-1 {
			pause := 2 * s.cfg.Delay
			s.logger.Info("[coconala] Waiting %v before the next category", pause)
			if err := s.throttle.Wait(ctx, pause); err != nil {
				return records, err
			}
		}
	}

	s.logger.Info("[coconala] Scrape complete, total records: %d, time spent waiting: %v", len(records), s.throttle.Waited())
	return records, nil
}

// ScrapeCategory collects the ranking for one category and extracts each
// ranked service. Rank is the position in the ranking list.
func (s *Scraper) ScrapeCategory(ctx context.Context, category models.CategorySpec) ([]*models.ServiceRecord, error) {
	s.logger.Info("[coconala] Category: %s", category.Name)
	s.logger.Info("[coconala] URL: %s", category.URL)

	serviceURLs := s.Ranking(ctx, category.URL)
	s.logger.Info("[coconala] Ranking TOP%d collected", len(serviceURLs))
	if len(serviceURLs) == 0 {
		s.logger.Warn("[coconala] No service URLs found for %s", category.Name)
		return nil, nil
	}

	records := make([]*models.ServiceRecord, 0, len(serviceURLs))
	for i, serviceURL := range serviceURLs {
		rank := i + 1
		s.logger.Info("[coconala] #%d: fetching %s", rank, serviceURL)

		detail, err := s.Detail(ctx, serviceURL)
		if err != nil {
			s.logger.Error("[coconala] #%d failed: %v", rank, err)
		} else {
			records = append(records, models.NewServiceRecord(rank, category, detail))
			s.logProgress(detail)
		}

		if err := s.throttle.Wait(ctx, s.cfg.Delay); err != nil {
			return records, err
		}
	}
	return records, nil
}

// Ranking fetches a category page and returns its ranked service URLs.
// A failed fetch yields an empty ranking.
func (s *Scraper) Ranking(ctx context.Context, categoryURL string) []string {
	doc, err := s.fetcher.Fetch(ctx, categoryURL)
	if err != nil {
		s.logger.Error("[coconala] Category page failed: %v", err)
		return nil
	}

	limit := s.cfg.RankingLimit
	if limit <= 0 {
		limit = DefaultRankingLimit
	}
	return CollectRanking(doc, s.base, limit)
}

// Detail fetches one service page and extracts its fields.
func (s *Scraper) Detail(ctx context.Context, serviceURL string) (*models.ServiceDetail, error) {
	doc, err := s.fetcher.Fetch(ctx, serviceURL)
	if err != nil {
		return nil, err
	}
	return s.extractor.Extract(doc, serviceURL), nil
}

func (s *Scraper) logProgress(d *models.ServiceDetail) {
	s.logger.Info("[coconala]   ✓ %s", utils.Truncate(d.Name, 50))
	s.logger.Info("[coconala]     price: %s, rating: %.1f (%d reviews)", d.Price, d.Rating, d.TotalReviews)
	s.logger.Info("[coconala]     reviews in last %d days: %d", reviews.WindowDays, d.Recent30DayReviews)
}
