package models

// MatchKind describes how a date expression was recognised.
type MatchKind int

const (
	KindRelative MatchKind = iota
	KindAbsolute
	KindFuzzy
)

func (k MatchKind) String() string {
	switch k {
	case KindRelative:
		return "relative"
	case KindAbsolute:
		return "absolute"
	case KindFuzzy:
		return "fuzzy"
	default:
		return "unknown"
	}
}

// MatchSource identifies the locator that produced a DateMatch.
type MatchSource int

const (
	SourceMainEvaluation MatchSource = iota
	SourceDateBlock
	SourceFuzzy
)

// DateMatch is a single date expression found on a detail page, resolved to
// a whole-day offset from the reference date.
type DateMatch struct {
	Original string
	DaysAgo  int
	Kind     MatchKind
	Source   MatchSource
	// Pattern names the date shape that selected the block (SourceDateBlock only).
	Pattern string
}

// Label renders the source the way it appears in debug output.
func (m DateMatch) Label() string {
	switch m.Source {
	case SourceMainEvaluation:
		return "メイン評価・感想"
	case SourceDateBlock:
		return "日付div(" + m.Pattern + ")"
	case SourceFuzzy:
		return "曖昧パターン"
	default:
		return "unknown"
	}
}
