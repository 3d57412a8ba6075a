package reviews

import (
	"cmp"
	"slices"

	"coconala-ranking/models"
)

// sourcePriority ranks sources that win ties on DaysAgo, highest first.
// Sources not listed share the lowest rank.
var sourcePriority = []models.MatchSource{
	models.SourceMainEvaluation,
}

func priorityRank(s models.MatchSource) int {
	if i := slices.Index(sourcePriority, s); i >= 0 {
		return i
	}
	return len(sourcePriority)
}

// Deduplicate keeps one match per DaysAgo, preferring higher-priority
// sources. Within a rank the first match seen wins. The input is not modified.
func Deduplicate(matches []models.DateMatch) []models.DateMatch {
	ordered := slices.Clone(matches)
	slices.SortStableFunc(ordered, func(a, b models.DateMatch) int {
		return cmp.Compare(priorityRank(a.Source), priorityRank(b.Source))
	})

	seen := make(map[int]struct{}, len(ordered))
	unique := make([]models.DateMatch, 0, len(ordered))
	for _, m := range ordered {
		if _, dup := seen[m.DaysAgo]; dup {
			continue
		}
		seen[m.DaysAgo] = struct{}{}
		unique = append(unique, m)
	}
	return unique
}
