package reviews

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"golang.org/x/text/width"

	"coconala-ranking/models"
)

// relativeRule turns "N <unit> ago" into N*days.
type relativeRule struct {
	re   *regexp.Regexp
	days int
	unit string
}

// Rule order matters for the order of emitted matches: days, weeks, months.
var relativeRules = []relativeRule{
	{regexp.MustCompile(`([0-9０-９]+)[\s\p{Zs}]*(?:日前|(?i:days?[\s\p{Zs}]+ago))`), 1, "日"},
	{regexp.MustCompile(`([0-9０-９]+)[\s\p{Zs}]*(?:週間前|(?i:weeks?[\s\p{Zs}]+ago))`), 7, "週間"},
	// Months are a fixed 30 days, not calendar months.
	{regexp.MustCompile(`([0-9０-９]+)[\s\p{Zs}]*(?:ヶ月前|(?i:months?[\s\p{Zs}]+ago))`), 30, "ヶ月"},
}

var absoluteDate = regexp.MustCompile(`([0-9０-９]{1,2})月([0-9０-９]{1,2})日`)

// Parse extracts every relative and absolute date expression from text and
// resolves each one to a day offset from ref. Source is left for the caller
// to set.
func Parse(text string, ref time.Time) []models.DateMatch {
	matches := ParseRelative(text, models.KindRelative)
	return append(matches, parseAbsolute(text, ref)...)
}

// ParseRelative applies only the relative rules. Fuzzy matches keep the raw
// matched text as Original; other kinds get a normalised form.
func ParseRelative(text string, kind models.MatchKind) []models.DateMatch {
	var matches []models.DateMatch
	for _, rule := range relativeRules {
		for _, m := range rule.re.FindAllStringSubmatch(text, -1) {
			n, ok := parseNumber(m[1])
			if !ok || n > math.MaxInt32/rule.days {
				continue
			}
			original := m[0]
			if kind != models.KindFuzzy {
				original = fmt.Sprintf("%d%s前", n, rule.unit)
			}
			matches = append(matches, models.DateMatch{
				Original: original,
				DaysAgo:  n * rule.days,
				Kind:     kind,
			})
		}
	}
	return matches
}

// parseAbsolute resolves "M月D日" against ref's year, stepping back a year
// when the date would otherwise lie in the future.
func parseAbsolute(text string, ref time.Time) []models.DateMatch {
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	var matches []models.DateMatch
	for _, m := range absoluteDate.FindAllStringSubmatch(text, -1) {
		month, okMonth := parseNumber(m[1])
		day, okDay := parseNumber(m[2])
		if !okMonth || !okDay || month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}

		date, ok := calendarDate(refDay.Year(), month, day)
		if !ok {
			continue
		}
		if date.After(refDay) {
			if date, ok = calendarDate(refDay.Year()-1, month, day); !ok {
				continue
			}
		}

		matches = append(matches, models.DateMatch{
			Original: fmt.Sprintf("%d月%d日", month, day),
			DaysAgo:  int(refDay.Sub(date).Hours() / 24),
			Kind:     models.KindAbsolute,
		})
	}
	return matches
}

// calendarDate rejects month/day pairs that time.Date would roll over,
// e.g. 2月30日.
func calendarDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t, t.Month() == time.Month(month) && t.Day() == day
}

// parseNumber accepts ASCII and full-width digits.
func parseNumber(s string) (int, bool) {
	n, err := strconv.Atoi(width.Narrow.String(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
