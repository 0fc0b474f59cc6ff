package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"wellnest/database"
	"wellnest/middleware"
	"wellnest/models"
	"wellnest/services/review"
	"wellnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler covers review submission and moderation.
type ReviewHandler struct {
	Reviews review.ReviewService
	Logger  *zap.Logger
}

func NewReviewHandler(reviews review.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews, Logger: logger}
}

// respondError maps service errors onto HTTP statuses.
func (h *ReviewHandler) respondError(c *gin.Context, action string, err error) {
	var reviewErr *review.ReviewError
	switch {
	case errors.As(err, &reviewErr):
		utils.JSONError(c, http.StatusBadRequest, reviewErr.Message, reviewErr.Code)
	case errors.Is(err, database.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	default:
		getLogger(c, h.Logger).Error("Failed to "+action, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to "+action, "")
	}
}

// SubmitReviewHandler creates a pending review for the authenticated client.
func (h *ReviewHandler) SubmitReviewHandler(c *gin.Context) {
	var input review.SubmitReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	input.ClientID = c.GetString(middleware.ContextUserID)

	created, err := h.Reviews.SubmitReview(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, "submit review", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// AddEventReviewHandler appends the authenticated client's review to an event.
func (h *ReviewHandler) AddEventReviewHandler(c *gin.Context) {
	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	eventReview := models.EventReview{
		UserID:  c.GetString(middleware.ContextUserID),
		Rating:  input.Rating,
		Comment: input.Comment,
	}
	if err := h.Reviews.AddEventReview(c.Request.Context(), c.Param("id"), eventReview); err != nil {
		h.respondError(c, "add event review", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review added"})
}

// ListPendingHandler returns the moderation queue.
func (h *ReviewHandler) ListPendingHandler(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid limit", err.Error())
		return
	}
	reviews, err := h.Reviews.ListPending(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, "list pending reviews", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// ModerateReviewHandler approves or rejects a review.
func (h *ReviewHandler) ModerateReviewHandler(c *gin.Context) {
	var input struct {
		Status models.ReviewStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	moderated, err := h.Reviews.ModerateReview(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		h.respondError(c, "moderate review", err)
		return
	}
	c.JSON(http.StatusOK, moderated)
}
