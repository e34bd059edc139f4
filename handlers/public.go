package handlers

import (
	"errors"
	"net/http"

	"hqd-api/catalog"
	"hqd-api/generator"
	"hqd-api/models"
	"hqd-api/query"
	"hqd-api/statemachine"

	"github.com/gin-gonic/gin"
)

// relatedLimit caps the "you may also like" list on a setup page
const relatedLimit = 3

// ListSetups returns bar setups, optionally filtered by occasion, style or featured (public)
func (h *Handler) ListSetups(c *gin.Context) {
	setups := query.Setups(h.catalog.Setups(), query.ParseCriteria(c.Request.URL.Query()))
	c.JSON(http.StatusOK, gin.H{"count": len(setups), "setups": setups})
}

// GetSetup returns one setup by slug with related setups
func (h *Handler) GetSetup(c *gin.Context) {
	slug := c.Param("slug")
	setup, err := h.catalog.SetupBySlug(slug)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Setup not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	related, err := h.catalog.RelatedSetups(slug, relatedLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"setup": setup, "related": related})
}

// ListMenus returns the drink menu filtered by type, flavor, molecular or search
func (h *Handler) ListMenus(c *gin.Context) {
	drinks := query.Drinks(h.catalog.Drinks(), query.ParseCriteria(c.Request.URL.Query()))
	c.JSON(http.StatusOK, gin.H{"count": len(drinks), "drinks": drinks})
}

func (h *Handler) ListTestimonials(c *gin.Context) {
	items := query.Testimonials(h.catalog.Testimonials(), query.ParseCriteria(c.Request.URL.Query()))
	c.JSON(http.StatusOK, gin.H{"count": len(items), "testimonials": items})
}

func (h *Handler) ListGallery(c *gin.Context) {
	items := query.Gallery(h.catalog.Gallery(), query.ParseCriteria(c.Request.URL.Query()))
	c.JSON(http.StatusOK, gin.H{"count": len(items), "gallery": items})
}

func (h *Handler) ListPackages(c *gin.Context) {
	pkgs := h.catalog.Packages()
	c.JSON(http.StatusOK, gin.H{"count": len(pkgs), "packages": pkgs})
}

// ListFAQs returns FAQs in display order, filtered by category or search
func (h *Handler) ListFAQs(c *gin.Context) {
	faqs := query.FAQs(h.catalog.FAQs(), query.ParseCriteria(c.Request.URL.Query()))
	c.JSON(http.StatusOK, gin.H{"count": len(faqs), "faqs": faqs})
}

// ListTechniques returns the molecular mixology library
func (h *Handler) ListTechniques(c *gin.Context) {
	techs := query.Techniques(h.catalog.Techniques(), query.ParseCriteria(c.Request.URL.Query()))
	c.JSON(http.StatusOK, gin.H{
		"count":        len(techs),
		"total_points": h.catalog.TotalTechniquePoints(),
		"techniques":   techs,
	})
}

func (h *Handler) GetTechnique(c *gin.Context) {
	tech, err := h.catalog.TechniqueBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Technique not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"technique": tech})
}

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MetaOptions returns the option lists the inquiry form and filters offer
func (h *Handler) MetaOptions(c *gin.Context) {
	styles := []string{"All"}
	for _, s := range models.AllStyles {
		styles = append(styles, string(s))
	}
	c.JSON(http.StatusOK, gin.H{
		"event_types": []string{
			"Wedding", "Corporate Event", "Private Party", "Engagement/Roka", "Sangeet", "Mehendi",
			"Cocktail Night", "Reception", "After-Party", "Pool Party", "Birthday", "Other",
		},
		"bar_types": []option{
			{Value: "both", Label: "Both Cocktail & Mocktail"},
			{Value: "cocktail", Label: "Cocktail Only"},
			{Value: "mocktail", Label: "Mocktail Only"},
		},
		"guest_ranges":  []string{"Up to 50", "50-100", "100-200", "200-300", "300-500", "500+"},
		"durations":     []string{"2-3 hours", "4-5 hours", "6-8 hours", "Full day", "Multiple days"},
		"budget_ranges": []string{"Under ₹1 Lakh", "₹1-3 Lakhs", "₹3-5 Lakhs", "₹5-10 Lakhs", "₹10 Lakhs+", "Flexible"},
		"occasions": []string{
			"All", "Mehendi", "Haldi", "Sangeet", "Cocktail Night", "Reception",
			"Engagement", "After-Party", "Pool Party", "Brunch", "Corporate",
		},
		"styles":    styles,
		"flavors":   models.AllFlavors,
		"spirits":   []string{"Gin", "Vodka", "Rum", "Whiskey", "Tequila", "Champagne", "None (Mocktail)"},
		"sweetness": generator.Sweetness,
	})
}

// GetLeadPipeline documents the lead status lifecycle (public)
func (h *Handler) GetLeadPipeline(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"terminal_states": []models.LeadStatus{models.LeadBooked, models.LeadLost},
		"description":     "HQ.D Lead Pipeline State Machine",
	})
}
