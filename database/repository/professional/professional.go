package professionalRepo

import (
	"context"

	"wellnest/models"
)

// ProfessionalRepository defines methods for professional data access.
type ProfessionalRepository interface {
	// GetByID retrieves a professional by its profile ID.
	GetByID(ctx context.Context, id models.ProfessionalID) (*models.Professional, error)
	// GetRating returns only the stored rating summary.
	GetRating(ctx context.Context, id models.ProfessionalID) (models.RatingSummary, error)
	// UpdateRating overwrites rating.average and rating.totalReviews.
	UpdateRating(ctx context.Context, id models.ProfessionalID, average float64, totalReviews int) error
}
