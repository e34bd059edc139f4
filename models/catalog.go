package models

// Style is the visual theme of a bar setup
type Style string

const (
	StyleMinimalLuxe      Style = "Minimal Luxe"
	StyleRoyal            Style = "Royal"
	StyleTropical         Style = "Tropical"
	StyleBollywood        Style = "Bollywood"
	StyleModernMonochrome Style = "Modern Monochrome"
)

// AllStyles lists styles in the order the filters show them
var AllStyles = []Style{StyleMinimalLuxe, StyleRoyal, StyleTropical, StyleBollywood, StyleModernMonochrome}

type PricingTier string

const (
	PricingEssential PricingTier = "essential"
	PricingPremium   PricingTier = "premium"
	PricingLuxury    PricingTier = "luxury"
)

// BarSetup is a bookable bar configuration shown on the setups page
type BarSetup struct {
	ID                  string      `json:"id"`
	Slug                string      `json:"slug"`
	Title               string      `json:"title"`
	Subtitle            string      `json:"subtitle"`
	Description         string      `json:"description"`
	ImageURL            string      `json:"image_url"`
	VideoURL            string      `json:"video_url,omitempty"`
	Events              []string    `json:"events"`
	Style               Style       `json:"style"`
	PricingTier         PricingTier `json:"pricing_tier"`
	BestFor             string      `json:"best_for"`
	GuestRange          string      `json:"guest_range"`
	SetupTime           string      `json:"setup_time"`
	StaffIncluded       string      `json:"staff_included"`
	Features            []string    `json:"features"`
	SignatureDrinks     []string    `json:"signature_drinks"`
	MolecularTechniques []string    `json:"molecular_techniques"`
	MolecularTag        string      `json:"molecular_tag,omitempty"`
	Featured            bool        `json:"featured"`
}

type DrinkType string

const (
	DrinkCocktail DrinkType = "cocktail"
	DrinkMocktail DrinkType = "mocktail"
)

type Flavor string

const (
	FlavorCitrus Flavor = "citrus"
	FlavorFloral Flavor = "floral"
	FlavorFruity Flavor = "fruity"
	FlavorSweet  Flavor = "sweet"
	FlavorSpicy  Flavor = "spicy"
	FlavorSmoky  Flavor = "smoky"
	FlavorHerbal Flavor = "herbal"
	FlavorCreamy Flavor = "creamy"
)

var AllFlavors = []Flavor{
	FlavorCitrus, FlavorFloral, FlavorFruity, FlavorSweet,
	FlavorSpicy, FlavorSmoky, FlavorHerbal, FlavorCreamy,
}

// DrinkMenuItem is one entry of the cocktail/mocktail menu.
// MolecularTechnique is set iff Molecular is true.
type DrinkMenuItem struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Type               DrinkType `json:"type"`
	SpiritBase         string    `json:"spirit_base,omitempty"`
	FlavorProfile      []Flavor  `json:"flavor_profile"`
	Ingredients        []string  `json:"ingredients"`
	Molecular          bool      `json:"molecular"`
	MolecularTechnique string    `json:"molecular_technique,omitempty"`
	Garnish            string    `json:"garnish"`
	ImageURL           string    `json:"image_url,omitempty"`
	Signature          bool      `json:"signature"`
}

type Testimonial struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quote     string `json:"quote"`
	Rating    int    `json:"rating"`
	EventType string `json:"event_type"`
	EventDate string `json:"event_date,omitempty"`
	Location  string `json:"location,omitempty"`
	Featured  bool   `json:"featured"`
}

type GalleryCategory string

const (
	GalleryWedding   GalleryCategory = "wedding"
	GalleryCorporate GalleryCategory = "corporate"
	GalleryPrivate   GalleryCategory = "private"
)

type GalleryItem struct {
	ID        string          `json:"id"`
	ImageURL  string          `json:"image_url"`
	Title     string          `json:"title"`
	Category  GalleryCategory `json:"category"`
	Location  string          `json:"location,omitempty"`
	EventName string          `json:"event_name,omitempty"`
	Featured  bool            `json:"featured"`
}

type PackageTier string

const (
	TierGood   PackageTier = "good"
	TierBetter PackageTier = "better"
	TierBest   PackageTier = "best"
	TierUltra  PackageTier = "ultra"
)

type Package struct {
	ID          string      `json:"id"`
	Tier        PackageTier `json:"tier"`
	Name        string      `json:"name"`
	Tagline     string      `json:"tagline"`
	Description string      `json:"description"`
	BestFor     string      `json:"best_for"`
	Inclusions  []string    `json:"inclusions"`
	Highlight   string      `json:"highlight,omitempty"`
}

type FAQCategory string

const (
	FAQBooking   FAQCategory = "booking"
	FAQService   FAQCategory = "service"
	FAQLogistics FAQCategory = "logistics"
)

type FAQ struct {
	ID       string      `json:"id"`
	Question string      `json:"question"`
	Answer   string      `json:"answer"`
	Category FAQCategory `json:"category"`
	Order    int         `json:"order"`
}
