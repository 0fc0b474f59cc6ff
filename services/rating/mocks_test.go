package rating

import (
	"context"

	"wellnest/models"

	"github.com/stretchr/testify/mock"
)

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) ApprovedRatings(ctx context.Context, professionalID models.ProfessionalID) ([]models.ReviewRating, error) {
	args := m.Called(ctx, professionalID)
	rows, _ := args.Get(0).([]models.ReviewRating)
	return rows, args.Error(1)
}

func (m *mockReviewRepo) Create(ctx context.Context, review *models.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	args := m.Called(ctx, id)
	review, _ := args.Get(0).(*models.Review)
	return review, args.Error(1)
}

func (m *mockReviewRepo) UpdateStatus(ctx context.Context, id string, status models.ReviewStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockReviewRepo) ListByStatus(ctx context.Context, status models.ReviewStatus, limit int64) ([]models.Review, error) {
	args := m.Called(ctx, status, limit)
	reviews, _ := args.Get(0).([]models.Review)
	return reviews, args.Error(1)
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) FindReviewedByProfessional(ctx context.Context, userID models.ProfessionalUserID) ([]models.Event, error) {
	args := m.Called(ctx, userID)
	events, _ := args.Get(0).([]models.Event)
	return events, args.Error(1)
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*models.Event)
	return event, args.Error(1)
}

func (m *mockEventRepo) AddReview(ctx context.Context, eventID string, review models.EventReview) error {
	return m.Called(ctx, eventID, review).Error(0)
}

type mockProfessionalRepo struct {
	mock.Mock
}

func (m *mockProfessionalRepo) GetByID(ctx context.Context, id models.ProfessionalID) (*models.Professional, error) {
	args := m.Called(ctx, id)
	professional, _ := args.Get(0).(*models.Professional)
	return professional, args.Error(1)
}

func (m *mockProfessionalRepo) GetRating(ctx context.Context, id models.ProfessionalID) (models.RatingSummary, error) {
	args := m.Called(ctx, id)
	summary, _ := args.Get(0).(models.RatingSummary)
	return summary, args.Error(1)
}

func (m *mockProfessionalRepo) UpdateRating(ctx context.Context, id models.ProfessionalID, average float64, totalReviews int) error {
	return m.Called(ctx, id, average, totalReviews).Error(0)
}
