package review

import (
	"context"
	"fmt"
	"time"

	eventRepo "wellnest/database/repository/event"
	reviewRepo "wellnest/database/repository/review"
	"wellnest/models"

	"go.uber.org/zap"
)

// SubmitReviewInput is what a client sends when reviewing a product or session.
type SubmitReviewInput struct {
	ProfessionalID models.ProfessionalID `json:"professionalId"`
	ClientID       string                `json:"-"`
	ContentType    models.ContentType    `json:"contentType"`
	ContentID      string                `json:"contentId"`
	Rating         int                   `json:"rating"`
	Comment        string                `json:"comment"`
}

// CreateEventInput is what a professional sends when scheduling an event.
type CreateEventInput struct {
	Organizer models.ProfessionalUserID `json:"-"`
	Title     string                    `json:"title"`
	StartsAt  time.Time                 `json:"startsAt"`
}

type ReviewService interface {
	SubmitReview(ctx context.Context, input SubmitReviewInput) (*models.Review, error)
	ModerateReview(ctx context.Context, reviewID string, status models.ReviewStatus) (*models.Review, error)
	ListPending(ctx context.Context, limit int64) ([]models.Review, error)
	AddEventReview(ctx context.Context, eventID string, review models.EventReview) error
	CreateEvent(ctx context.Context, input CreateEventInput) (*models.Event, error)
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Reviews reviewRepo.ReviewRepository
	Events  eventRepo.EventRepository
	Logger  *zap.Logger
}

func NewDefaultReviewService(reviews reviewRepo.ReviewRepository, events eventRepo.EventRepository, logger *zap.Logger) (*DefaultReviewService, error) {
	if reviews == nil || events == nil {
		return nil, fmt.Errorf("review service initialization error: one or more repositories are nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultReviewService{Reviews: reviews, Events: events, Logger: logger}, nil
}
