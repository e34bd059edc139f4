package handlers

import (
	"errors"
	"math/rand"
	"net/http"

	"hqd-api/generator"

	"github.com/gin-gonic/gin"
)

// Hashtags suggests wedding hashtags for two names (public)
func (h *Handler) Hashtags(c *gin.Context) {
	set, err := generator.Hashtags(c.Query("name1"), c.Query("name2"), generator.Vibe(c.DefaultQuery("vibe", string(generator.VibeClassic))))
	if errors.Is(err, generator.ErrNamesRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both name1 and name2 are required"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	all := set.All()
	c.JSON(http.StatusOK, gin.H{"count": len(all), "groups": set, "hashtags": all})
}

// SuggestDrinks generates signature drink ideas from the wizard answers (public)
func (h *Handler) SuggestDrinks(c *gin.Context) {
	var prefs generator.DrinkPrefs
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	drinks := generator.Drinks(prefs, rand.New(rand.NewSource(h.seed())))
	c.JSON(http.StatusOK, gin.H{"count": len(drinks), "drinks": drinks})
}
