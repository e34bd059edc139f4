package catalog

import "hqd-api/models"

func defaultTechniques() []models.Technique {
	return []models.Technique{
		{
			Slug:          "smoke-bubbles",
			Name:          "Smoke Bubbles",
			Tagline:       "Bubbles that burst with aromatic smoke",
			Description:   "Create mesmerizing bubbles filled with flavored smoke that burst on contact, releasing fragrant clouds. A crowd favorite that turns every sip into a theatrical experience.",
			Difficulty:    models.DifficultyBeginner,
			Category:      models.TechniqueVisual,
			WowFactor:     9,
			Equipment:     []string{"Handheld smoke bubble gun", "Food-grade smoke chips", "Bubble solution"},
			PerfectFor:    []string{"Sangeet", "Cocktail Night", "Reception"},
			FunFact:       "A single smoke bubble can hold up to 3 seconds of aromatic smoke!",
			PopularDrinks: []string{"Smoky Martini", "Whiskey Sour", "Old Fashioned"},
		},
		{
			Slug:          "dry-ice-fog",
			Name:          "Dry Ice Fog",
			Tagline:       "Mystical fog that cascades from your glass",
			Description:   "Transform ordinary drinks into mystical potions with cascading dry ice fog. The theatrical mist creates an otherworldly atmosphere.",
			Difficulty:    models.DifficultyBeginner,
			Category:      models.TechniqueVisual,
			WowFactor:     8,
			Equipment:     []string{"Insulated gloves", "Dry ice container", "Double-walled glassware"},
			PerfectFor:    []string{"After-Party", "Halloween", "Theme Nights"},
			FunFact:       "Dry ice is 3x denser than regular ice, making the fog hug the table surface!",
			PopularDrinks: []string{"Witch's Brew", "Fog Cutter", "Mystic Margarita"},
		},
		{
			Slug:          "edible-flowers",
			Name:          "Edible Flower Garnish",
			Tagline:       "Nature's art in every glass",
			Description:   "Elevate your cocktails with beautiful, edible flowers frozen in ice or floating fresh. A simple technique with stunning results.",
			Difficulty:    models.DifficultyBeginner,
			Category:      models.TechniquePresentation,
			WowFactor:     7,
			Equipment:     []string{"Ice cube trays", "Tweezers for placement", "Fresh flower storage"},
			PerfectFor:    []string{"Mehendi", "Brunch", "Garden Party"},
			FunFact:       "Ancient Romans used rose petals in their wine over 2000 years ago!",
			PopularDrinks: []string{"Garden Spritz", "Lavender Collins", "Rose Martini"},
		},
		{
			Slug:          "sugar-rim-art",
			Name:          "Artisan Sugar Rims",
			Tagline:       "Crystalline edges that sparkle and crunch",
			Description:   "Transform glass rims into edible art with colored sugars, spiced salts, and creative combinations.",
			Difficulty:    models.DifficultyBeginner,
			Category:      models.TechniquePresentation,
			WowFactor:     6,
			Equipment:     []string{"Shallow plates", "Citrus wedge", "Storage containers"},
			PerfectFor:    []string{"All Events"},
			FunFact:       "The margarita's salt rim was invented in 1948 in Tijuana, Mexico!",
			PopularDrinks: []string{"Margarita", "Lemon Drop", "Cosmopolitan"},
		},
		{
			Slug:          "layered-drinks",
			Name:          "Density Layering",
			Tagline:       "Rainbow gravity in a glass",
			Description:   "Create stunning multi-colored layers using density differences. A visual masterpiece that showcases liquid physics.",
			Difficulty:    models.DifficultyBeginner,
			Category:      models.TechniqueVisual,
			WowFactor:     8,
			Equipment:     []string{"Bar spoon", "Steady hand", "Shot glasses or tall glasses"},
			PerfectFor:    []string{"Cocktail Night", "Pride Events", "Kids Mocktails"},
			FunFact:       "The B-52 shooter was the first widely popular layered shot, created in 1977!",
			PopularDrinks: []string{"B-52", "Pousse Café", "Rainbow Shot"},
		},
		{
			Slug:          "champagne-foam",
			Name:          "Champagne Foam",
			Tagline:       "Clouds of effervescent luxury",
			Description:   "Light, airy champagne foam that adds texture and elegance. The bubbles within bubbles create a unique sensory experience.",
			Difficulty:    models.DifficultyIntermediate,
			Category:      models.TechniqueTexture,
			WowFactor:     9,
			Equipment:     []string{"Immersion blender", "Shallow container", "Spoon for scooping"},
			PerfectFor:    []string{"Reception", "Engagement", "Anniversary"},
			FunFact:       "Lecithin comes from egg yolks or soybeans and is a natural emulsifier!",
			PopularDrinks: []string{"French 75", "Champagne Cocktail", "Bellini"},
		},
		{
			Slug:          "aromatic-mists",
			Name:          "Aromatic Mists",
			Tagline:       "Scent clouds that awaken the senses",
			Description:   "Fragrant mists sprayed over or around drinks to enhance aroma. The nose experiences the cocktail before the first sip.",
			Difficulty:    models.DifficultyIntermediate,
			Category:      models.TechniqueAroma,
			WowFactor:     8,
			Equipment:     []string{"Fine mist atomizers", "Mixing bottles", "Dropper"},
			PerfectFor:    []string{"Mehendi", "Fine Dining", "Tasting Events"},
			FunFact:       "The famous El Bulli restaurant pioneered aromatic mists in cuisine!",
			PopularDrinks: []string{"Jasmine Martini", "Rose Gimlet", "Lavender Collins"},
		},
		{
			Slug:          "fruit-caviar",
			Name:          "Fruit Caviar (Spherification)",
			Tagline:       "Flavor pearls that pop in your mouth",
			Description:   "Turn any liquid into tiny caviar-like spheres that burst with flavor. The textural surprise delights every guest.",
			Difficulty:    models.DifficultyIntermediate,
			Category:      models.TechniqueTexture,
			WowFactor:     10,
			Equipment:     []string{"Precision scale", "Syringe or caviar maker", "Strainer", "Bowls"},
			PerfectFor:    []string{"Cocktail Night", "Tasting Menu", "VIP Events"},
			FunFact:       "Spherification was invented by Unilever in the 1950s for food processing!",
			PopularDrinks: []string{"Cosmo Caviar", "Mojito Pearls", "Passion Fruit Martini"},
		},
		{
			Slug:          "color-changing",
			Name:          "Color-Changing Cocktails",
			Tagline:       "Magic that happens before your eyes",
			Description:   "Drinks that transform color with pH changes. Add citrus and watch blue become purple or pink!",
			Difficulty:    models.DifficultyIntermediate,
			Category:      models.TechniqueVisual,
			WowFactor:     10,
			Equipment:     []string{"Tea infuser", "Clear glassware", "Citrus on the side"},
			PerfectFor:    []string{"Sangeet", "Theme Parties", "Interactive Bars"},
			FunFact:       "Butterfly pea flower has been used in Southeast Asian cuisine for centuries!",
			PopularDrinks: []string{"Magic Margarita", "Unicorn Tears", "Galaxy Gin"},
		},
		{
			Slug:          "smoke-cloche",
			Name:          "Smoke Cloche Service",
			Tagline:       "Drama unveiled under glass",
			Description:   "Serve drinks under a smoke-filled glass dome that billows dramatically when lifted. Pure theater.",
			Difficulty:    models.DifficultyIntermediate,
			Category:      models.TechniquePresentation,
			WowFactor:     10,
			Equipment:     []string{"Smoking gun", "Glass dome/cloche", "Wood chips", "Serving board"},
			PerfectFor:    []string{"Whiskey Lounge", "Fine Dining", "VIP Service"},
			FunFact:       "The smoke cloche technique originated in Michelin-starred restaurants!",
			PopularDrinks: []string{"Smoked Old Fashioned", "Penicillin", "Mezcal Negroni"},
		},
		{
			Slug:          "flavored-ice",
			Name:          "Flavored Ice Spheres",
			Tagline:       "The cocktail that gets better with time",
			Description:   "Large ice spheres infused with complementary flavors that slowly release as they melt.",
			Difficulty:    models.DifficultyIntermediate,
			Category:      models.TechniqueTemperature,
			WowFactor:     8,
			Equipment:     []string{"Silicone sphere molds", "Directional freezing setup (optional)"},
			PerfectFor:    []string{"Whiskey Service", "Long Drinks", "Outdoor Events"},
			FunFact:       "Japanese bartenders spend years perfecting hand-carved ice spheres!",
			PopularDrinks: []string{"Japanese Highball", "Negroni", "Rum Old Fashioned"},
		},
		{
			Slug:          "reverse-spherification",
			Name:          "Reverse Spherification",
			Tagline:       "Liquid-filled orbs of pure flavor",
			Description:   "Create larger spheres with thinner membranes and completely liquid centers. The ultimate \"flavor bomb\".",
			Difficulty:    models.DifficultyAdvanced,
			Category:      models.TechniqueTexture,
			WowFactor:     10,
			Equipment:     []string{"Precision scale", "Spherical molds", "Slotted spoon", "Multiple baths"},
			PerfectFor:    []string{"Tasting Menus", "Molecular Events", "Competition"},
			FunFact:       "Ferran Adrià of El Bulli created the first \"olive\" sphere in 2003!",
			PopularDrinks: []string{"Aperol Sphere", "Bloody Mary Bomb", "Espresso Martini Orb"},
		},
		{
			Slug:          "gel-sheets",
			Name:          "Edible Gel Sheets",
			Tagline:       "Flavor in architectural form",
			Description:   "Thin, flexible sheets of flavored gel that can wrap, drape, or dramatically top cocktails.",
			Difficulty:    models.DifficultyAdvanced,
			Category:      models.TechniquePresentation,
			WowFactor:     9,
			Equipment:     []string{"Flat trays", "Offset spatula", "Heat source"},
			PerfectFor:    []string{"Avant-garde Events", "Competition", "Food Pairing"},
			FunFact:       "Agar was discovered in Japan in 1658 and is made from seaweed!",
			PopularDrinks: []string{"Deconstructed Martini", "Origami Collins", "Wrapped Whiskey"},
		},
		{
			Slug:          "flash-freeze",
			Name:          "Liquid Nitrogen Flash",
			Tagline:       "Frozen in an instant, -196°C",
			Description:   "Use liquid nitrogen for instant freezing, dramatic fog, and unique frozen textures.",
			Difficulty:    models.DifficultyAdvanced,
			Category:      models.TechniqueTemperature,
			WowFactor:     10,
			Equipment:     []string{"Dewar flask", "Cryo gloves", "Safety goggles", "Stainless steel bowls"},
			PerfectFor:    []string{"High-end Events", "Special Occasions", "Show Bars"},
			FunFact:       "Liquid nitrogen boils at -196°C - cold enough to freeze anything instantly!",
			PopularDrinks: []string{"Frozen Daiquiri Pearls", "LN2 Margarita", "Shattered Berry Cocktail"},
		},
		{
			Slug:          "cocktail-gel",
			Name:          "Cocktail Gel Cubes",
			Tagline:       "Solid drinks that melt in your mouth",
			Description:   "Transform liquid cocktails into jiggly gel cubes or shapes that you can eat with your hands.",
			Difficulty:    models.DifficultyAdvanced,
			Category:      models.TechniqueTexture,
			WowFactor:     9,
			Equipment:     []string{"Silicone molds", "Refrigerator", "Precision scale"},
			PerfectFor:    []string{"Dessert Bars", "Novelty Events", "Alcohol-free Options"},
			FunFact:       "Jello shots were invented during the Civil War era!",
			PopularDrinks: []string{"Negroni Cube", "Champagne Jelly", "Whiskey Gummy"},
		},
		{
			Slug:          "sous-vide-infusion",
			Name:          "Sous Vide Infusions",
			Tagline:       "Precision-temperature flavor extraction",
			Description:   "Use precise temperature control to create rapid, consistent infusions without heat damage.",
			Difficulty:    models.DifficultyAdvanced,
			Category:      models.TechniqueAroma,
			WowFactor:     7,
			Equipment:     []string{"Immersion circulator", "Vacuum sealer", "Food-safe bags"},
			PerfectFor:    []string{"Craft Cocktails", "Custom Infusions", "Batch Service"},
			FunFact:       "Sous vide was developed in France in the 1970s by Georges Pralus!",
			PopularDrinks: []string{"Rapid-aged Whiskey", "Herb-infused Gin", "Spiced Rum"},
		},
		{
			Slug:          "edible-cocktail",
			Name:          "Edible Cocktail Paper",
			Tagline:       "Dissolving flavor on your tongue",
			Description:   "Thin edible films that dissolve instantly, delivering concentrated cocktail flavor.",
			Difficulty:    models.DifficultyAdvanced,
			Category:      models.TechniqueTexture,
			WowFactor:     9,
			Equipment:     []string{"Dehydrator", "Silicone mats", "Blender"},
			PerfectFor:    []string{"Tasting Flights", "Aperitif", "Avant-garde Events"},
			FunFact:       "Edible paper originated in Asia for wrapping candies centuries ago!",
			PopularDrinks: []string{"Negroni Paper", "Margarita Strip", "Espresso Martini Film"},
		},
		{
			Slug:          "clarified-milk-punch",
			Name:          "Clarified Milk Punch",
			Tagline:       "Crystal-clear with unbelievable depth",
			Description:   "Use milk proteins to clarify complex cocktails into crystal-clear, silky elixirs.",
			Difficulty:    models.DifficultyMaster,
			Category:      models.TechniqueTexture,
			WowFactor:     10,
			Equipment:     []string{"Fine mesh strainer", "Coffee filters", "Patience (24+ hours)"},
			PerfectFor:    []string{"Batch Cocktails", "Clear Presentation", "Make-ahead Events"},
			FunFact:       "Benjamin Franklin drank clarified milk punch, and his recipe survives today!",
			PopularDrinks: []string{"Clear Piña Colada", "Transparent Tea Punch", "Crystal Mai Tai"},
		},
		{
			Slug:          "fat-washing",
			Name:          "Fat-Washed Spirits",
			Tagline:       "Savory richness meets spirits",
			Description:   "Infuse spirits with fat-based flavors (bacon, butter, olive oil) then remove the fat for clean, rich taste.",
			Difficulty:    models.DifficultyMaster,
			Category:      models.TechniqueAroma,
			WowFactor:     9,
			Equipment:     []string{"Mason jars", "Freezer", "Fine strainer", "Cheesecloth"},
			PerfectFor:    []string{"Craft Bars", "Savory Cocktails", "Brunch"},
			FunFact:       "PDT bar in NYC made bacon-infused bourbon famous in 2007!",
			PopularDrinks: []string{"Benton's Old Fashioned", "Butter Rum", "Brown Butter Bourbon"},
		},
		{
			Slug:          "rotary-evaporation",
			Name:          "Rotary Evaporation",
			Tagline:       "Laboratory precision for flavor extraction",
			Description:   "Use vacuum distillation to capture delicate flavors at low temperatures, preserving volatile aromatics.",
			Difficulty:    models.DifficultyMaster,
			Category:      models.TechniqueAroma,
			WowFactor:     10,
			Equipment:     []string{"Rotary evaporator ($3000+)", "Vacuum pump", "Receiving flasks"},
			PerfectFor:    []string{"High-end Bars", "Research", "Competition"},
			FunFact:       "Dave Arnold at Booker & Dax popularized rotovap in bars!",
			PopularDrinks: []string{"Rotovap Gin", "Strawberry Essence Daiquiri", "Fresh Herb Spirits"},
		},
		{
			Slug:          "centrifuge-clarification",
			Name:          "Centrifuge Clarification",
			Tagline:       "Spin at 4000G for instant clarity",
			Description:   "Use high-speed spinning to separate particles and clarify any liquid in minutes.",
			Difficulty:    models.DifficultyMaster,
			Category:      models.TechniqueTexture,
			WowFactor:     9,
			Equipment:     []string{"Laboratory centrifuge", "Centrifuge tubes", "Pipettes"},
			PerfectFor:    []string{"Research Bars", "Competitions", "Signature Cocktails"},
			FunFact:       "Centrifugal force at 4000G is 4000x the force of gravity!",
			PopularDrinks: []string{"Clarified Lime Daiquiri", "Crystal Bloody Mary", "Clear Passion Fruit"},
		},
		{
			Slug:          "ultrasonic-homogenization",
			Name:          "Ultrasonic Infusion",
			Tagline:       "Sound waves that extract in seconds",
			Description:   "Use ultrasonic waves to rapidly infuse flavors that would take days through traditional methods.",
			Difficulty:    models.DifficultyMaster,
			Category:      models.TechniqueAroma,
			WowFactor:     8,
			Equipment:     []string{"Ultrasonic homogenizer", "Ice bath", "Sealed containers"},
			PerfectFor:    []string{"Fast Service", "Fresh Infusions", "Research"},
			FunFact:       "Ultrasonic waves can age whiskey in minutes rather than years!",
			PopularDrinks: []string{"Instant Aged Cocktails", "Flash Herb Spirits", "Rapid Bitters"},
		},
	}
}
