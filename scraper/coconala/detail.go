package coconala

import (
	"time"

	"github.com/PuerkitoBio/goquery"

	"coconala-ranking/config"
	"coconala-ranking/models"
	"coconala-ranking/reviews"
)

// Extractor turns a service detail page into a ServiceDetail.
type Extractor struct {
	counter              *reviews.Counter
	faqKeywords          []string
	conversationKeywords []string
	now                  func() time.Time
}

// NewExtractor builds an Extractor. A nil rules uses config.DefaultRules and
// a nil clock uses time.Now.
func NewExtractor(rules *config.Rules, now func() time.Time) *Extractor {
	if rules == nil {
		rules = config.DefaultRules()
	}
	if now == nil {
		now = time.Now
	}
	return &Extractor{
		counter:              reviews.NewCounter(rules.ReviewHeadings),
		faqKeywords:          rules.FAQKeywords,
		conversationKeywords: rules.ConversationKeywords,
		now:                  now,
	}
}

// Extract reads every output field from doc. Structured data is preferred;
// the markup fills whatever it leaves empty. The result depends only on doc
// and the clock.
func (e *Extractor) Extract(doc *goquery.Document, serviceURL string) *models.ServiceDetail {
	d := &models.ServiceDetail{URL: serviceURL}

	if product := findProduct(doc); product != nil {
		applyProduct(d, product)
	}
	applyHTMLFallbacks(d, doc)

	text := reviews.PageText(doc)
	d.HasFAQ = containsAny(text, e.faqKeywords, true)
	d.HasSampleConversation = containsAny(text, e.conversationKeywords, false)

	d.Recent30DayReviews = e.counter.CountRecent(doc, e.now())
	return d
}
