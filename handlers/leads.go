package handlers

import (
	"net/http"

	"hqd-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateLead stores a contact form submission and notifies the team (public)
func (h *Handler) CreateLead(c *gin.Context) {
	var req models.LeadSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead := models.NewLead(req)
	lead.ID = uuid.NewString()

	if err := h.db.Create(&lead).Error; err != nil {
		h.log.Error("store lead", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save your inquiry"})
		return
	}
	h.log.Info("lead received",
		zap.String("lead_id", lead.ID),
		zap.String("event_type", lead.EventType),
		zap.String("setup_interest", lead.SetupInterest))

	h.notifyAsync(lead)

	c.JSON(http.StatusCreated, lead)
}
