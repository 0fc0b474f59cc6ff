package rating

import (
	"context"
	"errors"
	"testing"

	"wellnest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	profID models.ProfessionalID     = "prof-1"
	userID models.ProfessionalUserID = "user-1"
)

type fixture struct {
	reviews       *mockReviewRepo
	events        *mockEventRepo
	professionals *mockProfessionalRepo
	svc           *DefaultRatingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		reviews:       &mockReviewRepo{},
		events:        &mockEventRepo{},
		professionals: &mockProfessionalRepo{},
	}
	svc, err := NewDefaultRatingService(f.reviews, f.events, f.professionals, zap.NewNop())
	require.NoError(t, err)
	f.svc = svc
	return f
}

func rows(contentType models.ContentType, ratings ...int) []models.ReviewRating {
	out := make([]models.ReviewRating, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, models.ReviewRating{ContentType: contentType, Rating: r})
	}
	return out
}

func eventWith(ratings ...int) models.Event {
	event := models.Event{ID: "evt", Professional: userID}
	for _, r := range ratings {
		event.Reviews = append(event.Reviews, models.EventReview{UserID: "client", Rating: r})
	}
	return event
}

func (f *fixture) expectSources(reviewRows []models.ReviewRating, events []models.Event) {
	f.reviews.On("ApprovedRatings", mock.Anything, profID).Return(reviewRows, nil)
	f.events.On("FindReviewedByProfessional", mock.Anything, userID).Return(events, nil)
}

func TestNewDefaultRatingServiceRejectsNilRepos(t *testing.T) {
	_, err := NewDefaultRatingService(nil, &mockEventRepo{}, &mockProfessionalRepo{}, nil)
	assert.Error(t, err)
}

func TestComputeOverallRatingEmpty(t *testing.T) {
	f := newFixture(t)
	f.expectSources([]models.ReviewRating{}, []models.Event{})

	stats, err := f.svc.ComputeOverallRating(context.Background(), profID, userID)
	require.NoError(t, err)

	assert.Equal(t, 0.0, stats.OverallAverage)
	assert.Equal(t, 0, stats.TotalReviews)
	assert.Equal(t, models.Distribution{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, stats.Distribution)
	assert.Equal(t, models.SourceBreakdown{}, stats.SourceBreakdown)
	assert.Empty(t, stats.AllRatings)
}

func TestComputeOverallRatingRoundsHalfUp(t *testing.T) {
	f := newFixture(t)
	f.expectSources(rows(models.ContentTypeProduct, 5, 5, 5, 4), nil)

	stats, err := f.svc.ComputeOverallRating(context.Background(), profID, userID)
	require.NoError(t, err)
	assert.Equal(t, 4.8, stats.OverallAverage)
}

func TestComputeOverallRatingSourceIsolation(t *testing.T) {
	f := newFixture(t)
	reviewRows := append(rows(models.ContentTypeProduct, 5, 4, 3), rows(models.ContentTypeSession, 2, 2)...)
	f.expectSources(reviewRows, []models.Event{eventWith(5, 5)})

	stats, err := f.svc.ComputeOverallRating(context.Background(), profID, userID)
	require.NoError(t, err)

	assert.Equal(t, models.SourceStats{Count: 3, Average: 4.0}, stats.SourceBreakdown.Products)
	assert.Equal(t, models.SourceStats{Count: 2, Average: 2.0}, stats.SourceBreakdown.Sessions)
	assert.Equal(t, models.SourceStats{Count: 2, Average: 5.0}, stats.SourceBreakdown.Events)
	assert.Equal(t, 3.7, stats.OverallAverage)
	assert.Equal(t, 7, stats.TotalReviews)
	assert.ElementsMatch(t, []int{5, 4, 3, 2, 2, 5, 5}, stats.AllRatings)
}

func TestComputeOverallRatingDistributionSumsToTotal(t *testing.T) {
	f := newFixture(t)
	reviewRows := append(rows(models.ContentTypeProduct, 1, 2, 3, 4, 5, 5), rows(models.ContentTypeSession, 3, 3)...)
	f.expectSources(reviewRows, []models.Event{eventWith(1, 4), eventWith(2)})

	stats, err := f.svc.ComputeOverallRating(context.Background(), profID, userID)
	require.NoError(t, err)

	assert.Equal(t, 11, stats.TotalReviews)
	assert.Equal(t, stats.TotalReviews, stats.Distribution.Total())
	assert.Len(t, stats.AllRatings, stats.TotalReviews)
	assert.Equal(t, models.Distribution{1: 2, 2: 2, 3: 3, 4: 2, 5: 2}, stats.Distribution)
}

func TestComputeOverallRatingUnknownContentTypeHasNoBucket(t *testing.T) {
	f := newFixture(t)
	reviewRows := append(rows(models.ContentTypeProduct, 4), rows("course", 2)...)
	f.expectSources(reviewRows, nil)

	stats, err := f.svc.ComputeOverallRating(context.Background(), profID, userID)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalReviews)
	assert.Equal(t, 3.0, stats.OverallAverage)
	assert.Equal(t, 1, stats.Distribution[2])
	assert.Equal(t, models.SourceStats{Count: 1, Average: 4}, stats.SourceBreakdown.Products)
	assert.Equal(t, models.SourceStats{}, stats.SourceBreakdown.Sessions)
	assert.Equal(t, models.SourceStats{}, stats.SourceBreakdown.Events)
}

func TestComputeOverallRatingOutOfRangeRatingHasNoBucket(t *testing.T) {
	f := newFixture(t)
	f.expectSources(rows(models.ContentTypeProduct, 5, 0), nil)

	stats, err := f.svc.ComputeOverallRating(context.Background(), profID, userID)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalReviews)
	assert.Equal(t, 2.5, stats.OverallAverage)
	assert.Equal(t, models.Distribution{1: 0, 2: 0, 3: 0, 4: 0, 5: 1}, stats.Distribution)
	assert.Equal(t, 1, stats.Distribution.Total())
}

func TestComputeOverallRatingPropagatesReadErrors(t *testing.T) {
	boom := errors.New("connection reset")

	t.Run("reviews", func(t *testing.T) {
		f := newFixture(t)
		f.reviews.On("ApprovedRatings", mock.Anything, profID).Return(nil, boom)

		stats, err := f.svc.ComputeOverallRating(context.Background(), profID, userID)
		assert.Nil(t, stats)
		assert.Same(t, boom, err)
		f.events.AssertNotCalled(t, "FindReviewedByProfessional", mock.Anything, mock.Anything)
	})

	t.Run("events", func(t *testing.T) {
		f := newFixture(t)
		f.reviews.On("ApprovedRatings", mock.Anything, profID).Return(rows(models.ContentTypeProduct, 5), nil)
		f.events.On("FindReviewedByProfessional", mock.Anything, userID).Return(nil, boom)

		stats, err := f.svc.ComputeOverallRating(context.Background(), profID, userID)
		assert.Nil(t, stats)
		assert.Same(t, boom, err)
	})
}

func TestUpdateProfessionalRating(t *testing.T) {
	f := newFixture(t)
	f.professionals.On("UpdateRating", mock.Anything, profID, 4.3, 12).Return(nil).Once()

	require.NoError(t, f.svc.UpdateProfessionalRating(context.Background(), profID, 4.3, 12))
	f.professionals.AssertExpectations(t)

	writeErr := errors.New("write conflict")
	f.professionals.On("UpdateRating", mock.Anything, profID, 1.0, 1).Return(writeErr)
	assert.Same(t, writeErr, f.svc.UpdateProfessionalRating(context.Background(), profID, 1.0, 1))
}
