package models

// CategorySpec is one top-level category read from the category sheet.
type CategorySpec struct {
	Name  string
	URL   string
	ID    string
	Level int
}

// ServiceDetail holds everything extracted from a single service detail page.
type ServiceDetail struct {
	URL                   string
	Name                  string
	Rating                float64
	DescriptionLength     int
	HasFAQ                bool
	HasSampleConversation bool
	Recent30DayReviews    int
	Price                 string
	TotalReviews          int
}

// ServiceRecord is one row of the final export. Recent30DayReviews is a
// heuristic and may exceed TotalReviews.
type ServiceRecord struct {
	Rank                  int
	CategoryName          string
	CategoryURL           string
	ServiceURL            string
	ServiceName           string
	Rating                float64
	DescriptionLength     int
	HasFAQ                bool
	HasSampleConversation bool
	Recent30DayReviews    int
	Price                 string
	TotalReviews          int
}

// NewServiceRecord combines a detail page extraction with its ranking context.
func NewServiceRecord(rank int, category CategorySpec, d *ServiceDetail) *ServiceRecord {
	return &ServiceRecord{
		Rank:                  rank,
		CategoryName:          category.Name,
		CategoryURL:           category.URL,
		ServiceURL:            d.URL,
		ServiceName:           d.Name,
		Rating:                d.Rating,
		DescriptionLength:     d.DescriptionLength,
		HasFAQ:                d.HasFAQ,
		HasSampleConversation: d.HasSampleConversation,
		Recent30DayReviews:    d.Recent30DayReviews,
		Price:                 d.Price,
		TotalReviews:          d.TotalReviews,
	}
}

// RunSummary holds the aggregate figures printed at the end of a run.
type RunSummary struct {
	Categories             int
	TotalServices          int
	OutputPath             string
	AverageRating          float64
	AverageDescription     float64
	WithFAQ                int
	WithSampleConversation int
	AverageTotalReviews    float64
	AverageRecentReviews   float64
	ServicesByCategory     map[string]int
	// TopRecent holds up to five services with the most recent reviews.
	TopRecent []*ServiceRecord
}
