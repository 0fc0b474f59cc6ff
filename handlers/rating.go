package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"wellnest/database"
	"wellnest/models"
	"wellnest/services/professional"
	"wellnest/services/rating"
	"wellnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RatingHandler exposes professional rating statistics.
type RatingHandler struct {
	Ratings   rating.RatingService
	Directory professional.Directory
	Logger    *zap.Logger
}

func NewRatingHandler(ratings rating.RatingService, directory professional.Directory, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{Ratings: ratings, Directory: directory, Logger: logger}
}

// resolveIDs maps the path's profile id to both ids the rating service needs.
// It writes the error response itself and reports whether the caller may continue.
func (h *RatingHandler) resolveIDs(c *gin.Context) (models.ProfessionalID, models.ProfessionalUserID, bool) {
	professionalID := models.ProfessionalID(c.Param("id"))
	userID, err := h.Directory.ResolveUserID(c.Request.Context(), professionalID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Professional not found", professionalID.String())
			return "", "", false
		}
		getLogger(c, h.Logger).Error("Failed to resolve professional user", zap.String("professionalId", professionalID.String()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to resolve professional", "")
		return "", "", false
	}
	return professionalID, userID, true
}

// GetRatingHandler returns the freshly computed rating statistics.
func (h *RatingHandler) GetRatingHandler(c *gin.Context) {
	professionalID, userID, ok := h.resolveIDs(c)
	if !ok {
		return
	}
	stats, err := h.Ratings.ComputeOverallRating(c.Request.Context(), professionalID, userID)
	if err != nil {
		getLogger(c, h.Logger).Error("Failed to compute rating", zap.String("professionalId", professionalID.String()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute rating", "")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetDashboardHandler always answers 200; the service substitutes defaults on failure.
func (h *RatingHandler) GetDashboardHandler(c *gin.Context) {
	professionalID, userID, ok := h.resolveIDs(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Ratings.GetDashboardRatingStats(c.Request.Context(), professionalID, userID))
}

// GetAnalyticsHandler returns the detailed analytics report.
func (h *RatingHandler) GetAnalyticsHandler(c *gin.Context) {
	professionalID, userID, ok := h.resolveIDs(c)
	if !ok {
		return
	}
	report, err := h.Ratings.GetDetailedRatingAnalytics(c.Request.Context(), professionalID, userID)
	if err != nil {
		getLogger(c, h.Logger).Error("Failed to build rating analytics", zap.String("professionalId", professionalID.String()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build rating analytics", "")
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetTrendHandler classifies ?current= against ?stored=.
func (h *RatingHandler) GetTrendHandler(c *gin.Context) {
	current, err := strconv.ParseFloat(c.Query("current"), 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid current rating", err.Error())
		return
	}
	stored, err := strconv.ParseFloat(c.Query("stored"), 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid stored rating", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.Ratings.CalculateRatingTrend(current, stored))
}
