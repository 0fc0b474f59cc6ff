package review

import (
	"context"
	"strings"
	"time"

	"wellnest/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateEvent schedules an event owned by the organizer's user account. Event
// reviews key on that account id, not on the professional profile id.
func (s *DefaultReviewService) CreateEvent(ctx context.Context, input CreateEventInput) (*models.Event, error) {
	if strings.TrimSpace(input.Organizer.String()) == "" {
		return nil, newReviewError(CodeMissingField, "organizer is required")
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, newReviewError(CodeMissingField, "title is required")
	}

	event := &models.Event{
		ID:           uuid.New().String(),
		Professional: input.Organizer,
		Title:        title,
		StartsAt:     input.StartsAt,
		Reviews:      []models.EventReview{},
		CreatedAt:    time.Now(),
	}
	if err := s.Events.Create(ctx, event); err != nil {
		return nil, err
	}

	s.Logger.Info("event created",
		zap.String("eventId", event.ID),
		zap.String("organizer", event.Professional.String()))
	return event, nil
}

func (s *DefaultReviewService) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, newReviewError(CodeMissingField, "eventId is required")
	}
	return s.Events.GetByID(ctx, eventID)
}
