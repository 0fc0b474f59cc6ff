package rating

import (
	"context"
	"fmt"
	"math"

	"wellnest/models"

	"go.uber.org/zap"
)

// GetDashboardRatingStats never fails: errors are logged and the zeroed
// default is returned so the dashboard always renders.
func (s *DefaultRatingService) GetDashboardRatingStats(ctx context.Context, professionalID models.ProfessionalID, professionalUserID models.ProfessionalUserID) *models.DashboardStats {
	stats, err := s.dashboardStats(ctx, professionalID, professionalUserID)
	if err != nil {
		s.Logger.Error("failed to compute dashboard rating stats",
			zap.String("professionalId", professionalID.String()),
			zap.String("professionalUserId", professionalUserID.String()),
			zap.Error(err))
		return models.DefaultDashboardStats()
	}
	return stats
}

func (s *DefaultRatingService) dashboardStats(ctx context.Context, professionalID models.ProfessionalID, professionalUserID models.ProfessionalUserID) (*models.DashboardStats, error) {
	stored, err := s.Professionals.GetRating(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("read stored rating: %w", err)
	}

	stats, err := s.ComputeOverallRating(ctx, professionalID, professionalUserID)
	if err != nil {
		return nil, fmt.Errorf("compute overall rating: %w", err)
	}

	trend := CalculateRatingTrend(stats.OverallAverage, stored.Average)

	if math.Abs(ratingDelta(stats.OverallAverage, stored.Average)) > trendThreshold {
		if err := s.UpdateProfessionalRating(ctx, professionalID, stats.OverallAverage, stats.TotalReviews); err != nil {
			return nil, fmt.Errorf("write back rating: %w", err)
		}
		s.Logger.Info("professional rating updated",
			zap.String("professionalId", professionalID.String()),
			zap.Float64("previous", stored.Average),
			zap.Float64("current", stats.OverallAverage),
			zap.Int("totalReviews", stats.TotalReviews))
	}

	return &models.DashboardStats{
		Total:           fmt.Sprintf("%.1f", stats.OverallAverage),
		TotalReviews:    stats.TotalReviews,
		Trend:           trend.Trend,
		TrendValue:      trend.TrendValue,
		Distribution:    stats.Distribution,
		SourceBreakdown: stats.SourceBreakdown,
	}, nil
}
