package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"wellnest/database"
	"wellnest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventThenReview(t *testing.T) {
	svc, _, events := newService(t)
	ctx := context.Background()
	startsAt := time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC)

	event, err := svc.CreateEvent(ctx, CreateEventInput{Organizer: "user-7", Title: "  Sunrise yoga ", StartsAt: startsAt})
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, models.ProfessionalUserID("user-7"), event.Professional)
	assert.Equal(t, "Sunrise yoga", event.Title)
	assert.NotNil(t, event.Reviews)
	assert.Contains(t, events.byID, event.ID)

	require.NoError(t, svc.AddEventReview(ctx, event.ID, models.EventReview{UserID: "client-1", Rating: 5}))

	stored, err := svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, startsAt, stored.StartsAt)
	require.Len(t, stored.Reviews, 1)
	assert.Equal(t, 5, stored.Reviews[0].Rating)
}

func TestCreateEventValidation(t *testing.T) {
	svc, _, events := newService(t)

	tests := []struct {
		name  string
		input CreateEventInput
	}{
		{"missing organizer", CreateEventInput{Title: "Breathwork"}},
		{"blank title", CreateEventInput{Organizer: "user-7", Title: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEvent(context.Background(), tt.input)
			var reviewErr *ReviewError
			require.True(t, errors.As(err, &reviewErr))
			assert.Equal(t, CodeMissingField, reviewErr.Code)
		})
	}
	assert.Empty(t, events.byID)
}

func TestGetEventNotFound(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.GetEvent(context.Background(), "missing")
	assert.True(t, errors.Is(err, database.ErrNotFound))

	_, err = svc.GetEvent(context.Background(), "")
	var reviewErr *ReviewError
	assert.True(t, errors.As(err, &reviewErr))
}
