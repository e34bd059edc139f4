package routes

import (
	"time"

	"hqd-api/handlers"
	"hqd-api/middleware"
	"hqd-api/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the marketing site to call the API. "*" allows any origin.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func SetupRoutes(r *gin.Engine, h *handlers.Handler, auth *middleware.Auth, leadLimiter *middleware.RateLimiter) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.GET("/", h.Root)
		public.GET("/health", h.Health)

		// Catalog
		public.GET("/setups", h.ListSetups)
		public.GET("/setups/:slug", h.GetSetup)
		public.GET("/menus", h.ListMenus)
		public.GET("/testimonials", h.ListTestimonials)
		public.GET("/gallery", h.ListGallery)
		public.GET("/packages", h.ListPackages)
		public.GET("/faqs", h.ListFAQs)
		public.GET("/techniques", h.ListTechniques)
		public.GET("/techniques/:slug", h.GetTechnique)
		public.GET("/meta/options", h.MetaOptions)

		// Contact
		public.GET("/contact", h.Contact)
		public.GET("/contact/qr", h.ContactQR)

		// Tools
		public.GET("/tools/hashtags", h.Hashtags)
		public.POST("/tools/drinks", h.SuggestDrinks)

		// Lead intake
		public.POST("/leads", leadLimiter.Limit(), h.CreateLead)

		// Pipeline info (great for docs/Postman)
		public.GET("/lead-pipeline", h.GetLeadPipeline)

		public.POST("/admin/login", h.Login)
	}

	// ── Staff routes ───────────────────────────────────────────────
	staff := r.Group("/api/admin")
	staff.Use(auth.AuthRequired(), middleware.RoleRequired(models.RoleCoordinator, models.RoleAdmin))
	{
		staff.GET("/profile", h.GetProfile)
		staff.GET("/leads", h.ListLeads)
		staff.GET("/leads/:id", h.GetLead)
		staff.GET("/leads/:id/pdf", h.LeadPDF)
		staff.PUT("/leads/:id/status", h.UpdateLeadStatus)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(auth.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.PUT("/leads/:id/force-status", h.ForceLeadStatus)
		admin.GET("/staff", h.ListStaff)
		admin.POST("/staff", h.CreateStaff)
	}
}
