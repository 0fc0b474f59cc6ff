package rating

import (
	"context"
	"errors"
	"testing"

	"wellnest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardWritesBackWhenDrifted(t *testing.T) {
	f := newFixture(t)
	f.professionals.On("GetRating", mock.Anything, profID).Return(models.RatingSummary{Average: 4.0, TotalReviews: 3}, nil)
	f.expectSources(rows(models.ContentTypeSession, 5, 5, 4), []models.Event{eventWith(5)})
	f.professionals.On("UpdateRating", mock.Anything, profID, 4.8, 4).Return(nil).Once()

	stats := f.svc.GetDashboardRatingStats(context.Background(), profID, userID)
	require.NotNil(t, stats)

	assert.Equal(t, "4.8", stats.Total)
	assert.Equal(t, 4, stats.TotalReviews)
	assert.Equal(t, models.TrendUp, stats.Trend)
	assert.Equal(t, "+0.8", stats.TrendValue)
	assert.Equal(t, models.Distribution{1: 0, 2: 0, 3: 0, 4: 1, 5: 3}, stats.Distribution)
	assert.Equal(t, models.SourceStats{Count: 1, Average: 5}, stats.SourceBreakdown.Events)
	f.professionals.AssertExpectations(t)
}

func TestDashboardSkipsWriteInsideThreshold(t *testing.T) {
	tests := []struct {
		name    string
		stored  float64
		ratings []int
	}{
		// mean 4.2 against 4.1: a difference of exactly 0.1 must not write.
		{"exact threshold", 4.1, []int{5, 5, 4, 4, 3}},
		{"unchanged", 4.2, []int{5, 5, 4, 4, 3}},
		{"exact threshold below", 4.3, []int{5, 5, 4, 4, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.professionals.On("GetRating", mock.Anything, profID).Return(models.RatingSummary{Average: tt.stored}, nil)
			f.expectSources(rows(models.ContentTypeProduct, tt.ratings...), nil)

			stats := f.svc.GetDashboardRatingStats(context.Background(), profID, userID)
			assert.Equal(t, "4.2", stats.Total)
			assert.Equal(t, models.TrendNeutral, stats.Trend)
			f.professionals.AssertNotCalled(t, "UpdateRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDashboardFailsSoft(t *testing.T) {
	boom := errors.New("server selection timeout")

	t.Run("stored rating read", func(t *testing.T) {
		f := newFixture(t)
		f.professionals.On("GetRating", mock.Anything, profID).Return(models.RatingSummary{}, boom)

		stats := f.svc.GetDashboardRatingStats(context.Background(), profID, userID)
		assert.Equal(t, models.DefaultDashboardStats(), stats)
	})

	t.Run("review read", func(t *testing.T) {
		f := newFixture(t)
		f.professionals.On("GetRating", mock.Anything, profID).Return(models.RatingSummary{Average: 4}, nil)
		f.reviews.On("ApprovedRatings", mock.Anything, profID).Return(nil, boom)

		var stats *models.DashboardStats
		assert.NotPanics(t, func() {
			stats = f.svc.GetDashboardRatingStats(context.Background(), profID, userID)
		})
		assert.Equal(t, "0.0", stats.Total)
		assert.Equal(t, 0, stats.TotalReviews)
		assert.Equal(t, models.TrendNeutral, stats.Trend)
		assert.Equal(t, "0.0", stats.TrendValue)
		assert.Equal(t, models.Distribution{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, stats.Distribution)
		assert.Equal(t, models.SourceBreakdown{}, stats.SourceBreakdown)
	})

	t.Run("write back", func(t *testing.T) {
		f := newFixture(t)
		f.professionals.On("GetRating", mock.Anything, profID).Return(models.RatingSummary{Average: 1}, nil)
		f.expectSources(rows(models.ContentTypeProduct, 5), nil)
		f.professionals.On("UpdateRating", mock.Anything, profID, 5.0, 1).Return(boom)

		stats := f.svc.GetDashboardRatingStats(context.Background(), profID, userID)
		assert.Equal(t, models.DefaultDashboardStats(), stats)
	})
}
