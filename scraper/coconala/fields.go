package coconala

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/width"

	"coconala-ranking/models"
	"coconala-ranking/reviews"
)

var (
	// yenRegexp captures the amount in "5,000円" or "５，０００ 円"
	yenRegexp = regexp.MustCompile(`([0-9０-９][0-9０-９,，]*)\s*円`)
	// ratingRegexp captures a numeric rating in the 0.0–5.0 range
	ratingRegexp = regexp.MustCompile(`\b([0-5](?:\.\d{1,2})?)\b`)
	countRegexp  = regexp.MustCompile(`[0-9０-９][0-9０-９,，]*`)
)

// applyHTMLFallbacks fills fields the structured data left empty by
// scanning the markup.
func applyHTMLFallbacks(d *models.ServiceDetail, doc *goquery.Document) {
	if d.Name == "" {
		if h1 := doc.Find("h1").First(); h1.Length() > 0 {
			d.Name = reviews.StrippedText(h1.Get(0))
		}
	}

	if d.Price == "" {
		doc.Find(`[class*="price"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if amount := parseYen(s.Text()); amount > 0 {
				d.Price = formatYen(float64(amount))
				return false
			}
			return true
		})
	}

	if d.Rating == 0 {
		if item := doc.Find(`[itemprop="ratingValue"]`).First(); item.Length() > 0 {
			d.Rating = parseRating(itemValue(item))
		}
	}
	if d.Rating == 0 {
		doc.Find(`[class*="rating"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			d.Rating = parseRating(normaliseText(s.Text()))
			return d.Rating == 0
		})
	}

	if d.TotalReviews == 0 {
		if item := doc.Find(`[itemprop="reviewCount"]`).First(); item.Length() > 0 {
			d.TotalReviews = parseCount(itemValue(item))
		}
	}

	if d.DescriptionLength == 0 {
		if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
			d.DescriptionLength = utf8.RuneCountInString(strings.TrimSpace(content))
		}
	}
}

// containsAny reports whether text contains any keyword. With foldCase both
// sides are lower-cased first.
func containsAny(text string, keywords []string, foldCase bool) bool {
	if foldCase {
		text = strings.ToLower(text)
	}
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if foldCase {
			kw = strings.ToLower(kw)
		}
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// itemValue prefers a microdata content attribute over the element text.
func itemValue(s *goquery.Selection) string {
	if content, ok := s.Attr("content"); ok {
		return strings.TrimSpace(content)
	}
	return normaliseText(s.Text())
}

// parseYen extracts the first yen amount from raw text.
func parseYen(raw string) int {
	m := yenRegexp.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}
	return atoiDigits(m[1])
}

// parseRating extracts a 0.0–5.0 numeric rating from a raw string.
func parseRating(raw string) float64 {
	match := ratingRegexp.FindStringSubmatch(width.Narrow.String(raw))
	if len(match) < 2 {
		return 0
	}
	val, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	if val < 0 || val > 5 {
		return 0
	}
	return val
}

// parseCount extracts the first whole number, e.g. "(1,234件)" → 1234.
func parseCount(raw string) int {
	return atoiDigits(countRegexp.FindString(raw))
}

func atoiDigits(s string) int {
	s = strings.ReplaceAll(width.Narrow.String(s), ",", "")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}
