package handlers

import (
	"errors"
	"net/http"

	"hqd-api/middleware"
	"hqd-api/models"
	"hqd-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// leadListLimit caps one page of the admin lead list
const leadListLimit = 100

// errLeadStatusChanged means another request moved the lead after it was read
var errLeadStatusChanged = errors.New("lead status changed concurrently")

// ListLeads returns the newest leads first with a per-status summary (staff only)
func (h *Handler) ListLeads(c *gin.Context) {
	q := h.db.Model(&models.Lead{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var leads []models.Lead
	if err := q.Order("created_at desc").Limit(leadListLimit).Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Dashboard summary over the whole table, not just this page
	var rows []struct {
		Status models.LeadStatus
		Count  int
	}
	if err := h.db.Model(&models.Lead{}).Select("status, count(*) as count").Group("status").Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	summary := map[string]int{}
	for _, r := range rows {
		summary[string(r.Status)] = r.Count
	}

	c.JSON(http.StatusOK, gin.H{
		"lead_summary": summary,
		"count":        len(leads),
		"leads":        leads,
	})
}

// GetLead returns one lead with its status history (staff only)
func (h *Handler) GetLead(c *gin.Context) {
	lead, ok := h.findLead(c, true)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"lead":              lead,
		"valid_next_states": statemachine.ValidTransitionsFrom(lead.Status),
	})
}

type UpdateLeadStatusRequest struct {
	Status models.LeadStatus `json:"status" binding:"required"`
	Note   string            `json:"note"`
}

// UpdateLeadStatus moves a lead along the pipeline for the caller's role
func (h *Handler) UpdateLeadStatus(c *gin.Context) {
	lead, ok := h.findLead(c, false)
	if !ok {
		return
	}

	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(lead.Status, req.Status, middleware.GetRole(c)); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    lead.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(lead.Status),
		})
		return
	}

	prevStatus := lead.Status
	if err := h.moveLead(&lead, req.Status, middleware.GetEmail(c), req.Note); err != nil {
		h.moveFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Lead status updated",
		"lead_id":         lead.ID,
		"previous_status": prevStatus,
		"current_status":  req.Status,
	})
}

// ForceLeadStatus lets an admin set any known status, e.g. to reopen a lost lead
func (h *Handler) ForceLeadStatus(c *gin.Context) {
	lead, ok := h.findLead(c, false)
	if !ok {
		return
	}

	var req struct {
		Status models.LeadStatus `json:"status" binding:"required"`
		Reason string            `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !statemachine.IsKnown(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown lead status: " + string(req.Status)})
		return
	}

	prevStatus := lead.Status
	if err := h.moveLead(&lead, req.Status, middleware.GetEmail(c), "[ADMIN OVERRIDE] "+req.Reason); err != nil {
		h.moveFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Lead status force-updated by admin",
		"lead_id":         lead.ID,
		"previous_status": prevStatus,
		"new_status":      req.Status,
	})
}

// findLead loads the :id lead or writes the error response
func (h *Handler) findLead(c *gin.Context, withHistory bool) (models.Lead, bool) {
	var lead models.Lead
	q := h.db
	if withHistory {
		q = q.Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
	}
	err := q.Where("id = ?", c.Param("id")).First(&lead).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return lead, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return lead, false
	}
	return lead, true
}

// moveLead updates the status and appends the history row in one transaction.
// The update only applies while the stored status still matches lead.Status;
// otherwise it returns errLeadStatusChanged and writes nothing.
func (h *Handler) moveLead(lead *models.Lead, to models.LeadStatus, by, note string) error {
	return h.db.Transaction(func(tx *gorm.DB) error {
		history := models.LeadStatusHistory{
			LeadID:     lead.ID,
			FromStatus: lead.Status,
			ToStatus:   to,
			ChangedBy:  by,
			Note:       note,
		}
		res := tx.Model(&models.Lead{}).
			Where("id = ? AND status = ?", lead.ID, lead.Status).
			Update("status", to)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errLeadStatusChanged
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}
		lead.Status = to
		return nil
	})
}

func (h *Handler) moveFailed(c *gin.Context, err error) {
	if errors.Is(err, errLeadStatusChanged) {
		c.JSON(http.StatusConflict, gin.H{"error": "Lead status changed by another request, reload and retry"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead status"})
}
