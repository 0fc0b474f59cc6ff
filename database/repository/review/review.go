package reviewRepo

import (
	"context"

	"wellnest/models"
)

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// ApprovedRatings returns the content type and rating of every approved
	// review written for the professional.
	ApprovedRatings(ctx context.Context, professionalID models.ProfessionalID) ([]models.ReviewRating, error)
	// Create inserts a new review record.
	Create(ctx context.Context, review *models.Review) error
	// GetByID retrieves a review by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Review, error)
	// UpdateStatus sets the moderation status of a review.
	UpdateStatus(ctx context.Context, id string, status models.ReviewStatus) error
	// ListByStatus returns up to limit reviews in the given status, oldest first.
	ListByStatus(ctx context.Context, status models.ReviewStatus, limit int64) ([]models.Review, error)
}
