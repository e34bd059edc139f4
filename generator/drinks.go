package generator

import (
	"fmt"
	"math/rand"

	"hqd-api/models"
)

// SuggestionCount is how many drinks one generation returns
const SuggestionCount = 3

var drinkNames = map[models.DrinkType][]string{
	models.DrinkCocktail: {"Velvet Coupe", "Golden Hour", "Midnight Bloom", "Crimson Silk", "Amber Eclipse"},
	models.DrinkMocktail: {"Garden Mist", "Sunset Cloud", "Crystal Rain", "Meadow Breeze", "Citrus Dream"},
}

// Techniques offered when the guest does not pick one
var Techniques = []string{"Smoke Bubble", "Aromatic Mist", "Champagne Foam", "Rose Foam", "Foam Art"}

// Sweetness levels offered by the generator
var Sweetness = []string{"dry", "balanced", "sweet"}

// DrinkPrefs are the generator wizard answers. Molecular is optional.
type DrinkPrefs struct {
	Type      models.DrinkType `json:"type" binding:"required"`
	Flavor    models.Flavor    `json:"flavor" binding:"required"`
	Sweetness string           `json:"sweetness" binding:"required"`
	Molecular string           `json:"molecular"`
}

type DrinkSuggestion struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Type      models.DrinkType `json:"type"`
	Flavor    models.Flavor    `json:"flavor"`
	Sweetness string           `json:"sweetness"`
	Technique string           `json:"technique"`
	Notes     string           `json:"notes"`
	Garnish   string           `json:"garnish"`
}

// Drinks returns SuggestionCount signature drink ideas. Names are drawn from
// the template list for the drink type using rng, so a fixed seed gives a
// fixed answer. Unknown types use the cocktail names.
func Drinks(prefs DrinkPrefs, rng *rand.Rand) []DrinkSuggestion {
	names, ok := drinkNames[prefs.Type]
	if !ok {
		names = drinkNames[models.DrinkCocktail]
	}
	shuffled := make([]string, len(names))
	copy(shuffled, names)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	base := "premium spirits"
	if prefs.Type == models.DrinkMocktail {
		base = "fresh juices"
	}

	out := make([]DrinkSuggestion, SuggestionCount)
	for i := range out {
		technique := prefs.Molecular
		if technique == "" {
			technique = Techniques[i%len(Techniques)]
		}
		out[i] = DrinkSuggestion{
			ID:        i + 1,
			Name:      shuffled[i],
			Type:      prefs.Type,
			Flavor:    prefs.Flavor,
			Sweetness: prefs.Sweetness,
			Technique: technique,
			Notes:     fmt.Sprintf("A %s %s creation with %s.", prefs.Sweetness, prefs.Flavor, base),
			Garnish:   garnishFor(prefs.Flavor),
		}
	}
	return out
}

func garnishFor(f models.Flavor) string {
	switch f {
	case models.FlavorFloral:
		return "Edible flowers"
	case models.FlavorCitrus:
		return "Citrus wheel"
	}
	return "Fresh herbs"
}
