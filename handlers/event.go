package handlers

import (
	"net/http"

	"wellnest/middleware"
	"wellnest/models"
	"wellnest/services/review"
	"wellnest/utils"

	"github.com/gin-gonic/gin"
)

// CreateEventHandler schedules an event for the authenticated professional.
// The organizer is always the token's user id.
func (h *ReviewHandler) CreateEventHandler(c *gin.Context) {
	var input review.CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	input.Organizer = models.ProfessionalUserID(c.GetString(middleware.ContextUserID))

	created, err := h.Reviews.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, "create event", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetEventHandler returns an event with its embedded reviews.
func (h *ReviewHandler) GetEventHandler(c *gin.Context) {
	event, err := h.Reviews.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "fetch event", err)
		return
	}
	c.JSON(http.StatusOK, event)
}
