package coconala

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"

	"coconala-ranking/models"
)

// findProduct returns the first schema.org Product node embedded as JSON-LD.
// Blocks that fail to decode are skipped.
func findProduct(doc *goquery.Document) map[string]any {
	var product map[string]any
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}
		product = productNode(data)
		return product == nil
	})
	return product
}

// productNode searches a decoded JSON-LD value: a single node, a list of
// nodes, or a node with an @graph.
func productNode(v any) map[string]any {
	switch node := v.(type) {
	case []any:
		for _, item := range node {
			if p := productNode(item); p != nil {
				return p
			}
		}
	case map[string]any:
		if hasType(node["@type"], "Product") {
			return node
		}
		if graph, ok := node["@graph"]; ok {
			return productNode(graph)
		}
	}
	return nil
}

func hasType(v any, want string) bool {
	switch t := v.(type) {
	case string:
		return t == want
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == want {
				return true
			}
		}
	}
	return false
}

// applyProduct copies the fields a Product node carries into d.
func applyProduct(d *models.ServiceDetail, p map[string]any) {
	if name, ok := p["name"].(string); ok {
		d.Name = strings.TrimSpace(name)
	}
	if price, ok := offerPrice(p["offers"]); ok {
		d.Price = formatYen(price)
	}
	if agg, ok := p["aggregateRating"].(map[string]any); ok {
		if v, ok := number(agg["ratingValue"]); ok {
			d.Rating = clampRating(v)
		}
		if v, ok := number(agg["reviewCount"]); ok && v >= 0 && v <= math.MaxInt32 {
			d.TotalReviews = int(v)
		}
	}
	if desc, ok := p["description"].(string); ok {
		d.DescriptionLength = utf8.RuneCountInString(desc)
	}
}

// offerPrice reads offers.price from a single offer or the first priced
// offer in a list.
func offerPrice(v any) (float64, bool) {
	switch offers := v.(type) {
	case map[string]any:
		return number(offers["price"])
	case []any:
		for _, item := range offers {
			if offer, ok := item.(map[string]any); ok {
				if price, ok := number(offer["price"]); ok && price > 0 {
					return price, true
				}
			}
		}
	}
	return 0, false
}

// number accepts JSON numbers and numeric strings such as "5,000".
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(n), ",", ""), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// formatYen renders 5000 as "5,000円". Zero or negative yields "".
func formatYen(v float64) string {
	if v <= 0 {
		return ""
	}
	if v == math.Trunc(v) && v < math.MaxInt64 {
		return humanize.Comma(int64(v)) + "円"
	}
	return humanize.Commaf(v) + "円"
}

func clampRating(v float64) float64 {
	return math.Max(0, math.Min(5, v))
}
