package services

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"coconala-ranking/models"
	"coconala-ranking/reviews"
	"coconala-ranking/utils"
)

const topRecentCount = 5

type SummaryService struct {
	logger *utils.Logger
}

func NewSummaryService(logger *utils.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

// Generate aggregates a run. Averages include every record, zeros too.
func (s *SummaryService) Generate(records []*models.ServiceRecord, categories int, outputPath string) *models.RunSummary {
	summary := &models.RunSummary{
		Categories:         categories,
		OutputPath:         outputPath,
		ServicesByCategory: make(map[string]int),
	}

	if len(records) == 0 {
		return summary
	}

	summary.TotalServices = len(records)

	var rating, description, total, recent float64
	for _, r := range records {
		rating += r.Rating
		description += float64(r.DescriptionLength)
		total += float64(r.TotalReviews)
		recent += float64(r.Recent30DayReviews)
		if r.HasFAQ {
			summary.WithFAQ++
		}
		if r.HasSampleConversation {
			summary.WithSampleConversation++
		}
		summary.ServicesByCategory[r.CategoryName]++
	}

	n := float64(len(records))
	summary.AverageRating = round2(rating / n)
	summary.AverageDescription = round2(description / n)
	summary.AverageTotalReviews = round2(total / n)
	summary.AverageRecentReviews = round2(recent / n)

	// Top services by recent reviews, ties keep ranking order
	ranked := make([]*models.ServiceRecord, 0, len(records))
	for _, r := range records {
		if r.Recent30DayReviews > 0 {
			ranked = append(ranked, r)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Recent30DayReviews > ranked[j].Recent30DayReviews
	})
	if len(ranked) > topRecentCount {
		ranked = ranked[:topRecentCount]
	}
	summary.TopRecent = ranked

	s.logger.Debug("[summary] %d records across %d categories", summary.TotalServices, len(summary.ServicesByCategory))
	return summary
}

// Print writes the summary to stdout.
func (s *SummaryService) Print(r *models.RunSummary) {
	s.Fprint(os.Stdout, r)
}

func (s *SummaryService) Fprint(w io.Writer, r *models.RunSummary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  📊 COCONALA RANKING SUMMARY\033[0m\n")
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Fprintf(w, "\033[1;33m  Overview\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Categories processed : \033[1m%d\033[0m\n", r.Categories)
	fmt.Fprintf(w, "  Services collected   : \033[1m%d\033[0m\n", r.TotalServices)
	fmt.Fprintf(w, "  Output file          : %s\n", r.OutputPath)
	fmt.Fprintln(w)

	// Averages
	fmt.Fprintf(w, "\033[1;33m  Averages\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Rating                     : \033[1;32m%.2f\033[0m\n", r.AverageRating)
	fmt.Fprintf(w, "  Description length         : %.0f\n", r.AverageDescription)
	fmt.Fprintf(w, "  Total reviews              : %.1f\n", r.AverageTotalReviews)
	fmt.Fprintf(w, "  Reviews in last %d days    : \033[1;32m%.1f\033[0m\n", reviews.WindowDays, r.AverageRecentReviews)
	fmt.Fprintf(w, "  Services with FAQ          : %d\n", r.WithFAQ)
	fmt.Fprintf(w, "  Services with sample talks : %d\n", r.WithSampleConversation)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Most Recent Reviews\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.TopRecent) == 0 {
		fmt.Fprintf(w, "  No recent reviews found\n")
	} else {
		for i, rec := range r.TopRecent {
			fmt.Fprintf(w, "  \033[1m%d.\033[0m %-40s \033[1;32m%d\033[0m\n",
				i+1, utils.Truncate(rec.ServiceName, 38), rec.Recent30DayReviews)
		}
	}
	fmt.Fprintln(w)

	// Services by category
	fmt.Fprintf(w, "\033[1;33m  Services by Category\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.ServicesByCategory) == 0 {
		fmt.Fprintf(w, "  No category data\n")
	} else {
		type catCount struct {
			name  string
			count int
		}
		var cats []catCount
		for name, cnt := range r.ServicesByCategory {
			cats = append(cats, catCount{name, cnt})
		}
		sort.Slice(cats, func(i, j int) bool {
			if cats[i].count != cats[j].count {
				return cats[i].count > cats[j].count
			}
			return cats[i].name < cats[j].name
		})
		for _, cc := range cats {
			bar := strings.Repeat("█", cc.count)
			fmt.Fprintf(w, "  %-30s %s (%d)\n", utils.Truncate(cc.name, 28), bar, cc.count)
		}
	}

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
