package reviews

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var hiddenText = []atom.Atom{atom.Script, atom.Style, atom.Template}

// PageText returns the visible text of the whole document, text nodes
// concatenated without separators.
func PageText(doc *goquery.Document) string {
	var sb strings.Builder
	for _, n := range doc.Nodes {
		writeText(&sb, n, false)
	}
	return sb.String()
}

// StrippedText concatenates the trimmed, non-empty text nodes under n.
func StrippedText(n *html.Node) string {
	var sb strings.Builder
	writeText(&sb, n, true)
	return sb.String()
}

func writeText(sb *strings.Builder, n *html.Node, strip bool) {
	switch n.Type {
	case html.TextNode:
		text := n.Data
		if strip {
			text = strings.TrimSpace(text)
		}
		sb.WriteString(text)
		return
	case html.ElementNode:
		if slices.Contains(hiddenText, n.DataAtom) {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c, strip)
	}
}

// soleString returns the text of an element whose only child is a text node,
// following chains of single-child elements down to it.
func soleString(n *html.Node) (string, bool) {
	c := n.FirstChild
	if c == nil || c.NextSibling != nil {
		return "", false
	}
	switch c.Type {
	case html.TextNode:
		return c.Data, true
	case html.ElementNode:
		return soleString(c)
	}
	return "", false
}

// findNext returns the first element after n in document order (descendants
// of n included) whose tag is one of tags.
func findNext(n *html.Node, tags ...atom.Atom) *html.Node {
	for cur := nextInOrder(n); cur != nil; cur = nextInOrder(cur) {
		if cur.Type == html.ElementNode && slices.Contains(tags, cur.DataAtom) {
			return cur
		}
	}
	return nil
}

func nextInOrder(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}
