package routes

import (
	"time"

	"wellnest/handlers"
	"wellnest/middleware"
	"wellnest/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterProfessionalRoutes registers professional rating endpoints.
func RegisterProfessionalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals/:id/ratings")
	{
		// Only the owning professional (or an admin) may read rating data.
		api.Use(middleware.JWTAuthMiddleware(utils.RoleProfessional, utils.RoleAdmin))
		api.Use(middleware.ProfessionalOwnerMiddleware("id"))
		api.GET("", hb.GetRatingHandler)
		api.GET("/dashboard", hb.GetDashboardHandler)
		api.GET("/analytics", hb.GetAnalyticsHandler)
		api.GET("/trend", hb.GetTrendHandler)
	}
}

// RegisterReviewRoutes registers client review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	client := middleware.JWTAuthMiddleware(utils.RoleClient)
	r.POST("/api/reviews", client, hb.SubmitReviewHandler)
	r.POST("/api/events/:id/reviews", client, hb.AddEventReviewHandler)
}

// RegisterEventRoutes registers event scheduling and lookup endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/events", middleware.JWTAuthMiddleware(utils.RoleProfessional), hb.CreateEventHandler)
	r.GET("/api/events/:id", middleware.JWTAuthMiddleware(), hb.GetEventHandler)
}

// RegisterAdminRoutes sets up endpoints for admin moderation.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(utils.RoleAdmin))
		adminGroup.GET("/reviews/pending", hb.ListPendingReviewsHandler)
		adminGroup.PATCH("/reviews/:id/status", hb.ModerateReviewHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProfessionalRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
