// File: wellnest/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Professional rating endpoints
	GetRatingHandler    gin.HandlerFunc
	GetDashboardHandler gin.HandlerFunc
	GetAnalyticsHandler gin.HandlerFunc
	GetTrendHandler     gin.HandlerFunc

	// Review endpoints
	SubmitReviewHandler   gin.HandlerFunc
	AddEventReviewHandler gin.HandlerFunc

	// Event endpoints
	CreateEventHandler gin.HandlerFunc
	GetEventHandler    gin.HandlerFunc

	// Admin moderation endpoints
	ListPendingReviewsHandler gin.HandlerFunc
	ModerateReviewHandler     gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handler structs into a bundle.
func NewHandlerBundle(ratings *RatingHandler, reviews *ReviewHandler) *HandlerBundle {
	return &HandlerBundle{
		GetRatingHandler:    ratings.GetRatingHandler,
		GetDashboardHandler: ratings.GetDashboardHandler,
		GetAnalyticsHandler: ratings.GetAnalyticsHandler,
		GetTrendHandler:     ratings.GetTrendHandler,

		SubmitReviewHandler:   reviews.SubmitReviewHandler,
		AddEventReviewHandler: reviews.AddEventReviewHandler,

		CreateEventHandler: reviews.CreateEventHandler,
		GetEventHandler:    reviews.GetEventHandler,

		ListPendingReviewsHandler: reviews.ListPendingHandler,
		ModerateReviewHandler:     reviews.ModerateReviewHandler,

		HealthHandler: HealthHandler,
	}
}
