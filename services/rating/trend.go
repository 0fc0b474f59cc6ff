package rating

import (
	"fmt"
	"math"

	"wellnest/models"
)

// trendThreshold is both the trend dead-zone and the write-back threshold.
const trendThreshold = 0.1

// ratingDelta trims float noise so that a one-tenth step compares equal to
// trendThreshold (4.2-4.1 is 0.10000000000000053 otherwise).
func ratingDelta(current, stored float64) float64 {
	return math.Round((current-stored)*1e9) / 1e9
}

func (s *DefaultRatingService) CalculateRatingTrend(currentRating, storedRating float64) models.RatingTrend {
	return CalculateRatingTrend(currentRating, storedRating)
}

// CalculateRatingTrend classifies the change from the stored to the current rating.
func CalculateRatingTrend(currentRating, storedRating float64) models.RatingTrend {
	delta := ratingDelta(currentRating, storedRating)

	trend := models.TrendNeutral
	switch {
	case delta > trendThreshold:
		trend = models.TrendUp
	case delta < -trendThreshold:
		trend = models.TrendDown
	}

	return models.RatingTrend{
		Trend:      trend,
		TrendValue: formatTrendValue(delta),
		Difference: currentRating - storedRating,
	}
}

// formatTrendValue prints exactly zero as "0.0" and prefixes other
// non-negative values with "+".
func formatTrendValue(difference float64) string {
	if difference == 0 {
		return "0.0"
	}
	if difference >= 0 {
		return fmt.Sprintf("+%.1f", difference)
	}
	return fmt.Sprintf("%.1f", difference)
}
