package reviews

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"coconala-ranking/models"
)

// Locator finds candidate date expressions in one region of a detail page.
// Locators hold no state and may run in any order.
type Locator func(doc *goquery.Document, ref time.Time) []models.DateMatch

// DefaultHeadings are the review section headings, highest priority first.
var DefaultHeadings = []string{"評価・感想", "評価", "レビュー"}

// HeadingLocator parses the block that follows the first review heading
// found. Headings are tried in order; the first one present on the page is
// the only one used.
func HeadingLocator(headings []string) Locator {
	return func(doc *goquery.Document, ref time.Time) []models.DateMatch {
		for _, heading := range headings {
			if heading == "" {
				continue
			}
			h := findHeading(doc, heading)
			if h == nil {
				continue
			}
			section := findNext(h, atom.Div, atom.Section)
			if section == nil {
				return nil
			}
			return tag(Parse(StrippedText(section), ref), models.SourceMainEvaluation, "")
		}
		return nil
	}
}

func findHeading(doc *goquery.Document, heading string) *html.Node {
	var found *html.Node
	doc.Find("h1, h2, h3, h4").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text, ok := soleString(s.Get(0)); ok && strings.Contains(text, heading) {
			found = s.Get(0)
			return false
		}
		return true
	})
	return found
}

type blockPattern struct {
	name string
	re   *regexp.Regexp
}

var blockPatterns = []blockPattern{
	{"N日前", regexp.MustCompile(`[0-9０-９]+日前`)},
	{"N週間前", regexp.MustCompile(`[0-9０-９]+週間前`)},
	{"Nヶ月前", regexp.MustCompile(`[0-9０-９]+ヶ月前`)},
	{"M月D日", regexp.MustCompile(`[0-9０-９]{1,2}月[0-9０-９]{1,2}日`)},
	{"N units ago", regexp.MustCompile(`(?i)[0-9０-９]+[\s\p{Zs}]*(?:days?|weeks?|months?)[\s\p{Zs}]+ago`)},
}

// DateBlockLocator parses every div whose own text looks like a date. A div
// matching several shapes is parsed once per shape; the deduplicator folds
// the repeats.
func DateBlockLocator(doc *goquery.Document, ref time.Time) []models.DateMatch {
	divs := doc.Find("div")

	var matches []models.DateMatch
	for _, p := range blockPatterns {
		divs.Each(func(_ int, s *goquery.Selection) {
			n := s.Get(0)
			text, ok := soleString(n)
			if !ok || !p.re.MatchString(text) {
				return
			}
			matches = append(matches, tag(Parse(StrippedText(n), ref), models.SourceDateBlock, p.name)...)
		})
	}
	return matches
}

// FuzzyLocator scans the visible page text for relative expressions only.
func FuzzyLocator(doc *goquery.Document, _ time.Time) []models.DateMatch {
	return tag(ParseRelative(PageText(doc), models.KindFuzzy), models.SourceFuzzy, "")
}

func tag(matches []models.DateMatch, source models.MatchSource, pattern string) []models.DateMatch {
	for i := range matches {
		matches[i].Source = source
		matches[i].Pattern = pattern
	}
	return matches
}
