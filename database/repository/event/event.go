package eventRepo

import (
	"context"

	"wellnest/models"
)

// EventRepository defines methods for event data access.
type EventRepository interface {
	// FindReviewedByProfessional returns the professional's events that carry at
	// least one embedded review.
	FindReviewedByProfessional(ctx context.Context, userID models.ProfessionalUserID) ([]models.Event, error)
	// Create inserts a new event record.
	Create(ctx context.Context, event *models.Event) error
	// GetByID retrieves an event by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Event, error)
	// AddReview appends a review to the event's embedded list.
	AddReview(ctx context.Context, eventID string, review models.EventReview) error
}
