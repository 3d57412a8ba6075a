package coconala

import (
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"coconala-ranking/utils"
)

// DefaultRankingLimit is the number of services taken per category.
const DefaultRankingLimit = 10

var serviceOrderRegexp = regexp.MustCompile(`service_order=(\d+)`)

// CollectRanking returns up to limit service URLs from a category page.
// Links carrying service_order=N are ranked by N (first URL seen per N wins);
// if that leaves gaps, plain service links fill them in document order.
// Returned URLs are absolute and carry no query string.
func CollectRanking(doc *goquery.Document, base *url.URL, limit int) []string {
	if limit <= 0 {
		return nil
	}

	byOrder := make(map[int]string)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !strings.Contains(href, "/services/") {
			return
		}
		m := serviceOrderRegexp.FindStringSubmatch(href)
		if m == nil {
			return
		}
		order, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}
		if _, taken := byOrder[order]; taken {
			return
		}
		if u, ok := cleanServiceURL(base, href); ok {
			byOrder[order] = u
		}
	})

	orders := make([]int, 0, len(byOrder))
	for order := range byOrder {
		orders = append(orders, order)
	}
	slices.Sort(orders)

	ranked := make([]string, 0, limit)
	collected := utils.NewURLSet()
	for _, order := range orders {
		if len(ranked) == limit {
			break
		}
		ranked = append(ranked, byOrder[order])
		collected.Add(byOrder[order])
	}

	if len(ranked) < limit {
		doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			href, _ := s.Attr("href")
			if !strings.Contains(href, "/services/") {
				return true
			}
			u, ok := cleanServiceURL(base, href)
			if !ok || strings.HasSuffix(u, "/add") || collected.Contains(u) {
				return true
			}
			collected.Add(u)
			ranked = append(ranked, u)
			return len(ranked) < limit
		})
	}

	return ranked
}

// cleanServiceURL resolves href against base and drops the query and fragment.
func cleanServiceURL(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	u := base.ResolveReference(ref)
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	return u.String(), true
}
