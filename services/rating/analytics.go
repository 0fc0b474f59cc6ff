package rating

import (
	"context"
	"math"

	"wellnest/models"
)

// GetDetailedRatingAnalytics propagates errors; it backs internal reporting only.
func (s *DefaultRatingService) GetDetailedRatingAnalytics(ctx context.Context, professionalID models.ProfessionalID, professionalUserID models.ProfessionalUserID) (*models.AnalyticsReport, error) {
	stats, err := s.ComputeOverallRating(ctx, professionalID, professionalUserID)
	if err != nil {
		return nil, err
	}
	return BuildAnalyticsReport(*stats), nil
}

// BuildAnalyticsReport derives percentages, the most common rating and the
// satisfaction rate from computed statistics.
func BuildAnalyticsReport(stats models.RatingStatistics) *models.AnalyticsReport {
	return &models.AnalyticsReport{
		RatingStatistics:        stats,
		DistributionPercentages: distributionPercentages(stats.Distribution, stats.TotalReviews),
		MostCommonRating:        mostCommonRating(stats.Distribution),
		SatisfactionRate:        satisfactionRate(stats.Distribution, stats.TotalReviews),
	}
}

func percentOf(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func distributionPercentages(distribution models.Distribution, total int) models.Distribution {
	percentages := models.NewDistribution()
	for star := models.MinStars; star <= models.MaxStars; star++ {
		percentages[star] = percentOf(distribution[star], total)
	}
	return percentages
}

// mostCommonRating scans 1 to 5; ties keep the lower star, no ratings yields 5.
func mostCommonRating(distribution models.Distribution) int {
	mostCommon := models.MaxStars
	maxCount := 0
	for star := models.MinStars; star <= models.MaxStars; star++ {
		if distribution[star] > maxCount {
			maxCount = distribution[star]
			mostCommon = star
		}
	}
	return mostCommon
}

// satisfactionRate is the share of 4 and 5 star ratings.
func satisfactionRate(distribution models.Distribution, total int) int {
	return percentOf(distribution[4]+distribution[5], total)
}
