package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"hqd-api/leads"

	"github.com/gin-gonic/gin"
)

// qrMaxSize bounds the rendered QR code edge in pixels
const qrMaxSize = 1024

// Contact returns the WhatsApp link and e-mail the site links to (public)
func (h *Handler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"whatsapp_url": leads.WhatsAppLink(h.whatsApp, c.Query("message")),
		"email":        h.contactEmail,
	})
}

// ContactQR renders the WhatsApp link as a PNG QR code (public)
func (h *Handler) ContactQR(c *gin.Context) {
	size, err := strconv.Atoi(c.DefaultQuery("size", "256"))
	if err != nil || size < 64 || size > qrMaxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be between 64 and 1024"})
		return
	}
	png, err := leads.QRCode(leads.WhatsAppLink(h.whatsApp, c.Query("message")), size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", png)
}

// LeadPDF downloads a printable inquiry sheet for one lead (staff only)
func (h *Handler) LeadPDF(c *gin.Context) {
	lead, ok := h.findLead(c, false)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := leads.WritePDF(&buf, lead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=lead-"+lead.ID+".pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
