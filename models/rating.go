// File: models/rating.go
package models

// MinStars and MaxStars bound a single rating.
const (
	MinStars = 1
	MaxStars = 5
)

// Distribution maps a star value (1..5) to the number of ratings with that value.
type Distribution map[int]int

// NewDistribution returns a distribution with every star value present and zero.
func NewDistribution() Distribution {
	d := make(Distribution, MaxStars)
	for star := MinStars; star <= MaxStars; star++ {
		d[star] = 0
	}
	return d
}

// Total sums all buckets.
func (d Distribution) Total() int {
	total := 0
	for _, count := range d {
		total += count
	}
	return total
}

type SourceStats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

type SourceBreakdown struct {
	Products SourceStats `json:"products"`
	Sessions SourceStats `json:"sessions"`
	Events   SourceStats `json:"events"`
}

type RatingStatistics struct {
	OverallAverage  float64         `json:"overallAverage"`
	TotalReviews    int             `json:"totalReviews"`
	Distribution    Distribution    `json:"distribution"`
	SourceBreakdown SourceBreakdown `json:"sourceBreakdown"`
	AllRatings      []int           `json:"allRatings"`
}

type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

type RatingTrend struct {
	Trend      Trend   `json:"trend"`
	TrendValue string  `json:"trendValue"`
	Difference float64 `json:"difference"`
}

// DashboardStats is what the professional dashboard renders.
type DashboardStats struct {
	Total           string          `json:"total"`
	TotalReviews    int             `json:"totalReviews"`
	Trend           Trend           `json:"trend"`
	TrendValue      string          `json:"trendValue"`
	Distribution    Distribution    `json:"distribution"`
	SourceBreakdown SourceBreakdown `json:"sourceBreakdown"`
}

// DefaultDashboardStats is served when the rating cannot be computed.
func DefaultDashboardStats() *DashboardStats {
	return &DashboardStats{
		Total:        "0.0",
		TotalReviews: 0,
		Trend:        TrendNeutral,
		TrendValue:   "0.0",
		Distribution: NewDistribution(),
	}
}

type AnalyticsReport struct {
	RatingStatistics
	DistributionPercentages Distribution `json:"distributionPercentages"`
	MostCommonRating        int          `json:"mostCommonRating"`
	SatisfactionRate        int          `json:"satisfactionRate"`
}
