package rating

import (
	"context"
	"fmt"

	eventRepo "wellnest/database/repository/event"
	professionalRepo "wellnest/database/repository/professional"
	reviewRepo "wellnest/database/repository/review"
	"wellnest/models"

	"go.uber.org/zap"
)

// RatingService merges review, session, product and event ratings into a
// single professional rating.
type RatingService interface {
	ComputeOverallRating(ctx context.Context, professionalID models.ProfessionalID, professionalUserID models.ProfessionalUserID) (*models.RatingStatistics, error)
	UpdateProfessionalRating(ctx context.Context, professionalID models.ProfessionalID, newRating float64, totalReviews int) error
	CalculateRatingTrend(currentRating, storedRating float64) models.RatingTrend
	GetDashboardRatingStats(ctx context.Context, professionalID models.ProfessionalID, professionalUserID models.ProfessionalUserID) *models.DashboardStats
	GetDetailedRatingAnalytics(ctx context.Context, professionalID models.ProfessionalID, professionalUserID models.ProfessionalUserID) (*models.AnalyticsReport, error)
}

// DefaultRatingService is the production implementation.
type DefaultRatingService struct {
	Reviews       reviewRepo.ReviewRepository
	Events        eventRepo.EventRepository
	Professionals professionalRepo.ProfessionalRepository
	Logger        *zap.Logger
}

func NewDefaultRatingService(
	reviews reviewRepo.ReviewRepository,
	events eventRepo.EventRepository,
	professionals professionalRepo.ProfessionalRepository,
	logger *zap.Logger,
) (*DefaultRatingService, error) {
	if reviews == nil || events == nil || professionals == nil {
		return nil, fmt.Errorf("rating service initialization error: one or more repositories are nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultRatingService{
		Reviews:       reviews,
		Events:        events,
		Professionals: professionals,
		Logger:        logger,
	}, nil
}
