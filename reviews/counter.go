package reviews

import (
	"time"

	"github.com/PuerkitoBio/goquery"

	"coconala-ranking/models"
)

// WindowDays is the look-back window for "recent" reviews, inclusive.
const WindowDays = 30

// CountWithin counts matches with 0 <= DaysAgo <= days.
func CountWithin(matches []models.DateMatch, days int) int {
	count := 0
	for _, m := range matches {
		if m.DaysAgo >= 0 && m.DaysAgo <= days {
			count++
		}
	}
	return count
}

// Counter estimates how many reviews a detail page received recently.
type Counter struct {
	locators []Locator
}

// NewCounter builds a counter running the heading, date-block and fuzzy
// locators. An empty headings list falls back to DefaultHeadings.
func NewCounter(headings []string) *Counter {
	if len(headings) == 0 {
		headings = DefaultHeadings
	}
	return &Counter{
		locators: []Locator{HeadingLocator(headings), DateBlockLocator, FuzzyLocator},
	}
}

// Detect runs every locator and returns their matches in locator order.
func (c *Counter) Detect(doc *goquery.Document, ref time.Time) []models.DateMatch {
	var all []models.DateMatch
	for _, locate := range c.locators {
		all = append(all, locate(doc, ref)...)
	}
	return all
}

// CountRecent returns the number of distinct review offsets inside the
// WindowDays window.
func (c *Counter) CountRecent(doc *goquery.Document, ref time.Time) int {
	return CountWithin(Deduplicate(c.Detect(doc, ref)), WindowDays)
}
