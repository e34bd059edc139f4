package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"hqd-api/catalog"
	"hqd-api/leads"
	"hqd-api/middleware"
	"hqd-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps is everything the HTTP handlers need
type Deps struct {
	Catalog      *catalog.Store
	DB           *gorm.DB
	Auth         *middleware.Auth
	Notifier     leads.Notifier
	Log          *zap.Logger
	EmailEnabled bool
	// WhatsAppNumber and ContactEmail are shown on the contact endpoints
	WhatsAppNumber string
	ContactEmail   string
	// Seed feeds the drink generator. Defaults to the wall clock.
	Seed func() int64
}

// Handler serves the public catalog, lead intake and back-office endpoints
type Handler struct {
	catalog      *catalog.Store
	db           *gorm.DB
	auth         *middleware.Auth
	notifier     leads.Notifier
	log          *zap.Logger
	emailEnabled bool
	whatsApp     string
	contactEmail string
	seed         func() int64
	now          func() time.Time

	notifyWG sync.WaitGroup
}

func New(d Deps) *Handler {
	h := &Handler{
		catalog:      d.Catalog,
		db:           d.DB,
		auth:         d.Auth,
		notifier:     d.Notifier,
		log:          d.Log,
		emailEnabled: d.EmailEnabled,
		whatsApp:     d.WhatsAppNumber,
		contactEmail: d.ContactEmail,
		seed:         d.Seed,
		now:          time.Now,
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	if h.notifier == nil {
		h.notifier = &leads.LogNotifier{Log: h.log}
	}
	if h.seed == nil {
		h.seed = func() int64 { return time.Now().UnixNano() }
	}
	return h
}

// Wait blocks until every pending lead notification has finished
func (h *Handler) Wait() {
	h.notifyWG.Wait()
}

// notifyAsync runs the notifier off the request path. Failures are only logged.
func (h *Handler) notifyAsync(lead models.Lead) {
	h.notifyWG.Add(1)
	go func() {
		defer h.notifyWG.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := h.notifier.Notify(ctx, lead); err != nil {
			h.log.Error("lead notification failed", zap.String("lead_id", lead.ID), zap.Error(err))
		}
	}()
}

// Root describes the API
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "HQ.D API - Headquarters of Drinks",
		"status":  "operational",
	})
}

// Health reports liveness and whether lead e-mails go out
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"email_enabled": h.emailEnabled,
		"timestamp":     h.now().UTC().Format(time.RFC3339),
	})
}
