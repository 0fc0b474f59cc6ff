package review

import (
	"context"
	"strings"
	"time"

	"wellnest/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxPendingPage = 100

func validateRating(rating int) error {
	if rating < models.MinStars || rating > models.MaxStars {
		return newReviewError(CodeInvalidRating, "rating must be between %d and %d, got %d", models.MinStars, models.MaxStars, rating)
	}
	return nil
}

// SubmitReview stores a new review awaiting moderation.
func (s *DefaultReviewService) SubmitReview(ctx context.Context, input SubmitReviewInput) (*models.Review, error) {
	if strings.TrimSpace(string(input.ProfessionalID)) == "" {
		return nil, newReviewError(CodeMissingField, "professionalId is required")
	}
	if strings.TrimSpace(input.ContentID) == "" {
		return nil, newReviewError(CodeMissingField, "contentId is required")
	}
	if input.ContentType != models.ContentTypeProduct && input.ContentType != models.ContentTypeSession {
		return nil, newReviewError(CodeInvalidContentType, "contentType must be %q or %q", models.ContentTypeProduct, models.ContentTypeSession)
	}
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	now := time.Now()
	review := &models.Review{
		ID:             uuid.New().String(),
		ProfessionalID: input.ProfessionalID,
		ClientID:       input.ClientID,
		ContentType:    input.ContentType,
		ContentID:      input.ContentID,
		Rating:         input.Rating,
		Comment:        strings.TrimSpace(input.Comment),
		Status:         models.ReviewStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	s.Logger.Info("review submitted",
		zap.String("reviewId", review.ID),
		zap.String("professionalId", review.ProfessionalID.String()),
		zap.String("contentType", string(review.ContentType)))
	return review, nil
}

// ModerateReview approves or rejects a review. Only approved reviews count
// towards a professional's rating.
func (s *DefaultReviewService) ModerateReview(ctx context.Context, reviewID string, status models.ReviewStatus) (*models.Review, error) {
	if status != models.ReviewStatusApproved && status != models.ReviewStatusRejected {
		return nil, newReviewError(CodeInvalidStatus, "status must be %q or %q", models.ReviewStatusApproved, models.ReviewStatusRejected)
	}
	if err := s.Reviews.UpdateStatus(ctx, reviewID, status); err != nil {
		return nil, err
	}
	review, err := s.Reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("review moderated", zap.String("reviewId", reviewID), zap.String("status", string(status)))
	return review, nil
}

// ListPending returns the moderation queue, oldest first.
func (s *DefaultReviewService) ListPending(ctx context.Context, limit int64) ([]models.Review, error) {
	if limit <= 0 || limit > maxPendingPage {
		limit = maxPendingPage
	}
	return s.Reviews.ListByStatus(ctx, models.ReviewStatusPending, limit)
}

// AddEventReview appends a review to an event. Event reviews are not moderated.
func (s *DefaultReviewService) AddEventReview(ctx context.Context, eventID string, review models.EventReview) error {
	if strings.TrimSpace(eventID) == "" {
		return newReviewError(CodeMissingField, "eventId is required")
	}
	if err := validateRating(review.Rating); err != nil {
		return err
	}
	review.Comment = strings.TrimSpace(review.Comment)
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	return s.Events.AddReview(ctx, eventID, review)
}
