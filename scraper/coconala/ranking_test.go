package coconala

import (
	"fmt"
	"strings"
	"testing"
)

const base = "https://coconala.com"

func TestCollectRankingOrdersByServiceOrder(t *testing.T) {
	doc := mustDoc(t, `
<a href="/services/200?service_order=2">B</a>
<a href="/services/100?service_order=1&ref=top">A</a>
<a href="/services/101?service_order=1">A2</a>
<a href="/services/300?service_order=3">C</a>`)

	got := CollectRanking(doc, mustURL(t, base), 3)
	want := []string{base + "/services/100", base + "/services/200", base + "/services/300"}
	assertURLs(t, got, want)
}

func TestCollectRankingTopsUpInDocumentOrder(t *testing.T) {
	doc := mustDoc(t, `
<a href="/categories/1">category</a>
<a href="/services/add">出品する</a>
<a href="/services/500">plain</a>
<a href="/services/900?service_order=1">ranked</a>
<a href="/services/500?from=list">plain again</a>
<a href="https://coconala.com/services/600#reviews">absolute</a>
<a href="/services/700">spare</a>`)

	got := CollectRanking(doc, mustURL(t, base), 3)
	want := []string{base + "/services/900", base + "/services/500", base + "/services/600"}
	assertURLs(t, got, want)
}

func TestCollectRankingNeverExceedsLimit(t *testing.T) {
	var sb strings.Builder
	for i := 12; i >= 1; i-- {
		fmt.Fprintf(&sb, `<a href="/services/%d?service_order=%d">s</a>`, i, i)
	}
	doc := mustDoc(t, sb.String())

	got := CollectRanking(doc, mustURL(t, base), DefaultRankingLimit)
	if len(got) != DefaultRankingLimit {
		t.Fatalf("len: got %d, want %d", len(got), DefaultRankingLimit)
	}
	for i, u := range got {
		if want := fmt.Sprintf("%s/services/%d", base, i+1); u != want {
			t.Errorf("got[%d] = %q; want %q", i, u, want)
		}
	}
}

func TestCollectRankingEmpty(t *testing.T) {
	doc := mustDoc(t, `<p>no links</p>`)
	if got := CollectRanking(doc, mustURL(t, base), 10); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
	doc = mustDoc(t, `<a href="/services/1?service_order=1">s</a>`)
	if got := CollectRanking(doc, mustURL(t, base), 0); len(got) != 0 {
		t.Errorf("limit 0: got %v, want empty", got)
	}
}

func assertURLs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}
