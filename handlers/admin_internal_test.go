package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hqd-api/config"
	"hqd-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveLead_RejectsStaleStatus(t *testing.T) {
	db, err := config.InitDB(":memory:")
	require.NoError(t, err)
	h := New(Deps{DB: db})

	lead := models.NewLead(models.LeadSubmission{
		Name: "Kabir", Email: "kabir@example.com", Phone: "98100", EventType: "Sangeet",
	})
	lead.ID = "lead-stale"
	require.NoError(t, db.Create(&lead).Error)

	// two requests read the lead while it is still new
	first, second := lead, lead

	require.NoError(t, h.moveLead(&first, models.LeadContacted, "coord@hqd.in", ""))
	assert.Equal(t, models.LeadContacted, first.Status)

	err = h.moveLead(&second, models.LeadLost, "admin@hqd.in", "")
	require.ErrorIs(t, err, errLeadStatusChanged)
	assert.Equal(t, models.LeadNew, second.Status)

	var stored models.Lead
	require.NoError(t, db.First(&stored, "id = ?", lead.ID).Error)
	assert.Equal(t, models.LeadContacted, stored.Status)

	var history int64
	require.NoError(t, db.Model(&models.LeadStatusHistory{}).Where("lead_id = ?", lead.ID).Count(&history).Error)
	assert.Equal(t, int64(1), history)
}

func TestMoveFailed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(Deps{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	h.moveFailed(c, errLeadStatusChanged)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	h.moveFailed(c, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
