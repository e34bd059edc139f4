package catalog

import "hqd-api/models"

// DefaultSeed returns the production catalog content
func DefaultSeed() Seed {
	return Seed{
		Setups:       defaultSetups(),
		Drinks:       defaultDrinks(),
		Testimonials: defaultTestimonials(),
		Gallery:      defaultGallery(),
		Packages:     defaultPackages(),
		FAQs:         defaultFAQs(),
		Techniques:   defaultTechniques(),
	}
}

const assetBase = "https://customer-assets.emergentagent.com/job_ac6c9480-7211-41d1-abd8-0c6fb67adb33/artifacts/"

func defaultSetups() []models.BarSetup {
	return []models.BarSetup{
		{
			ID:                  "1",
			Slug:                "mehendi-soiree",
			Title:               "Mehendi Soirée",
			Subtitle:            "Colour, folk charm and aromatic mists",
			Description:         "Vibrant bar setup with colorful cocktails and traditional aesthetics. Perfect for your mehendi celebration with folk-inspired decor.",
			ImageURL:            "https://images.unsplash.com/photo-1551024709-8f23befc6f87?w=600",
			VideoURL:            assetBase + "5if3jo8e_6ed5da08-8e47-4c62-95e1-594fc854688c.mp4",
			Events:              []string{"mehendi", "haldi"},
			Style:               models.StyleRoyal,
			PricingTier:         models.PricingPremium,
			BestFor:             "150-250 guests",
			GuestRange:          "150-250",
			SetupTime:           "3 hours",
			StaffIncluded:       "4-5",
			Features:            []string{"Hand-painted bar façade", "Marigold and brass accents", "Live mocktail counter", "Signature welcome drink"},
			SignatureDrinks:     []string{"Kufri", "Mango Tango", "Rose Lassi Cloud"},
			MolecularTechniques: []string{"Aromatic Mists", "Edible Flower Garnish"},
			MolecularTag:        "Aromatic Mists",
			Featured:            true,
		},
		{
			ID:                  "2",
			Slug:                "sangeet-spectacular",
			Title:               "Sangeet Spectacular",
			Subtitle:            "LED glow and a dance-floor bar",
			Description:         "High-energy bar with LED accents and signature cocktails. Dance the night away with premium drinks and dramatic presentations.",
			ImageURL:            "https://images.unsplash.com/photo-1470337458703-46ad1756a187?w=600",
			VideoURL:            assetBase + "91amfrgt_c839badf-d007-42a6-ad69-487b21abdaa8.mp4",
			Events:              []string{"sangeet", "cocktail-night"},
			Style:               models.StyleBollywood,
			PricingTier:         models.PricingLuxury,
			BestFor:             "200-400 guests",
			GuestRange:          "200-400",
			SetupTime:           "4 hours",
			StaffIncluded:       "6-8",
			Features:            []string{"Programmable LED bar front", "Dual service stations", "Shot luge", "Flair bartending segment"},
			SignatureDrinks:     []string{"Bollywood Blast", "Disco Daiquiri", "Starlight Spritz"},
			MolecularTechniques: []string{"Smoke Bubbles", "Color-Changing Cocktails"},
			MolecularTag:        "Smoke Bubbles",
			Featured:            true,
		},
		{
			ID:                  "3",
			Slug:                "reception-royale",
			Title:               "Reception Royale",
			Subtitle:            "Champagne towers and gold accents",
			Description:         "Elegant champagne-tower bar with gold accents. The perfect finale for your wedding with signature couple cocktails.",
			ImageURL:            "https://images.unsplash.com/photo-1574096079513-d8259312b785?w=600",
			VideoURL:            assetBase + "9lwf5b60_652a3209-9aa4-4751-8442-eaa11e571476.mp4",
			Events:              []string{"reception", "engagement"},
			Style:               models.StyleMinimalLuxe,
			PricingTier:         models.PricingLuxury,
			BestFor:             "300-500 guests",
			GuestRange:          "300-500",
			SetupTime:           "4 hours",
			StaffIncluded:       "8-10",
			Features:            []string{"Champagne tower", "Mirrored bar with gold trim", "Couple cocktail reveal", "Crystal glassware"},
			SignatureDrinks:     []string{"Forever New", "His & Hers", "Golden Toast"},
			MolecularTechniques: []string{"Champagne Foam", "Flavored Ice Spheres"},
			MolecularTag:        "Champagne Foam",
			Featured:            true,
		},
		{
			ID:                  "4",
			Slug:                "cocktail-night-noir",
			Title:               "Cocktail Night Noir",
			Subtitle:            "Dark, smoky and dramatic",
			Description:         "Moody, sophisticated setup with dark aesthetics and premium spirits. For the discerning couple who loves drama.",
			ImageURL:            "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?w=600",
			VideoURL:            assetBase + "jbuu83v8_97efb419-8fda-4ece-b870-1fbb600cb81c.mp4",
			Events:              []string{"cocktail-night", "after-party"},
			Style:               models.StyleModernMonochrome,
			PricingTier:         models.PricingPremium,
			BestFor:             "100-200 guests",
			GuestRange:          "100-200",
			SetupTime:           "3 hours",
			StaffIncluded:       "4-6",
			Features:            []string{"Matte black bar", "Backlit spirit wall", "Smoke cloche service", "Premium whisky flight"},
			SignatureDrinks:     []string{"Midnight Noir", "Velvet Kiss", "Smoky Old Fashioned"},
			MolecularTechniques: []string{"Smoke Bubbles", "Smoke Cloche Service"},
			MolecularTag:        "Smoke Bubbles",
			Featured:            true,
		},
		{
			ID:                  "5",
			Slug:                "pool-party-paradise",
			Title:               "Pool Party Paradise",
			Subtitle:            "Island drinks by the water",
			Description:         "Tropical vibes with refreshing cocktails and mocktails. Waterside bar setup with island-inspired drinks.",
			ImageURL:            "https://images.unsplash.com/photo-1560963689-b5682b6440f8?w=600",
			Events:              []string{"pool-party", "brunch"},
			Style:               models.StyleTropical,
			PricingTier:         models.PricingEssential,
			BestFor:             "50-150 guests",
			GuestRange:          "50-150",
			SetupTime:           "2 hours",
			StaffIncluded:       "2-3",
			Features:            []string{"Bamboo tiki bar", "Fresh coconut station", "Frozen cocktail machines"},
			SignatureDrinks:     []string{"Tropical Thunder", "Coconut Cloud", "Blue Lagoon"},
			MolecularTechniques: []string{"Aromatic Mists", "Fruit Caviar (Spherification)"},
			MolecularTag:        "Aromatic Mists",
			Featured:            false,
		},
		{
			ID:                  "6",
			Slug:                "corporate-excellence",
			Title:               "Corporate Excellence",
			Subtitle:            "Brandable bars at volume",
			Description:         "Professional setup with brandable elements and high-volume service. Impress your clients with sophisticated beverages.",
			ImageURL:            "https://images.unsplash.com/photo-1566417713940-fe7c737a9ef2?w=600",
			VideoURL:            assetBase + "ju2ki38n_6abda637-ea97-4d01-8861-eb67f7787ef2.mp4",
			Events:              []string{"corporate"},
			Style:               models.StyleMinimalLuxe,
			PricingTier:         models.PricingPremium,
			BestFor:             "100-500 guests",
			GuestRange:          "100-500",
			SetupTime:           "3 hours",
			StaffIncluded:       "4-10",
			Features:            []string{"Logo-printed foam art", "Branded bar wraps", "High-volume service lanes", "Low-ABV options"},
			SignatureDrinks:     []string{"Executive Espresso Martini", "The Boardroom", "Sparkling Success"},
			MolecularTechniques: []string{"Champagne Foam", "Edible Cocktail Paper"},
			MolecularTag:        "Foam Art",
			Featured:            true,
		},
		{
			ID:                  "7",
			Slug:                "after-party-lounge",
			Title:               "After-Party Lounge",
			Subtitle:            "Late-night shots for the inner circle",
			Description:         "Intimate setup for the inner circle. Late-night vibes with premium shots and signature cocktails.",
			ImageURL:            "https://images.unsplash.com/photo-1572116469696-31de0f17cc34?w=600",
			Events:              []string{"after-party"},
			Style:               models.StyleModernMonochrome,
			PricingTier:         models.PricingEssential,
			BestFor:             "30-80 guests",
			GuestRange:          "30-80",
			SetupTime:           "2 hours",
			StaffIncluded:       "2",
			Features:            []string{"Lounge-height bar", "Shot wall", "Curated playlist tie-in"},
			SignatureDrinks:     []string{"Night Owl", "Last Dance", "Shooter Selection"},
			MolecularTechniques: []string{"Smoke Bubbles", "Dry Ice Fog"},
			MolecularTag:        "Smoke Bubbles",
			Featured:            false,
		},
		{
			ID:                  "8",
			Slug:                "garden-elegance",
			Title:               "Garden Elegance",
			Subtitle:            "Rustic-chic with florals",
			Description:         "Rustic-chic outdoor setup with floral accents. Perfect for garden ceremonies and daytime events.",
			ImageURL:            "https://images.unsplash.com/photo-1519671482749-fd09be7ccebf?w=600",
			Events:              []string{"engagement", "reception"},
			Style:               models.StyleRoyal,
			PricingTier:         models.PricingPremium,
			BestFor:             "100-300 guests",
			GuestRange:          "100-300",
			SetupTime:           "3 hours",
			StaffIncluded:       "4-6",
			Features:            []string{"Reclaimed wood bar", "Floral canopy", "Herb garnish garden", "Spritz station"},
			SignatureDrinks:     []string{"Garden Spritz", "Lavender Dreams", "Rosemary Gin Fizz"},
			MolecularTechniques: []string{"Aromatic Mists", "Edible Flower Garnish"},
			MolecularTag:        "Aromatic Mists",
			Featured:            false,
		},
	}
}

func defaultDrinks() []models.DrinkMenuItem {
	return []models.DrinkMenuItem{
		{ID: "1", Name: "Kufri", Type: models.DrinkCocktail, FlavorProfile: []models.Flavor{models.FlavorCitrus, models.FlavorHerbal}, SpiritBase: "Gin",
			Description: "A refreshing Himalayan-inspired cocktail with botanicals and a hint of mountain mist. Our signature house creation.",
			Ingredients: []string{"Premium Gin", "Fresh Lime", "Elderflower", "Himalayan Herbs", "Tonic"},
			Garnish:     "Dehydrated lime wheel & rosemary sprig", Molecular: true, MolecularTechnique: "Aromatic Mist", Signature: true,
			ImageURL: "https://images.unsplash.com/photo-1551024709-8f23befc6f87?w=400"},
		{ID: "2", Name: "Forever New", Type: models.DrinkCocktail, FlavorProfile: []models.Flavor{models.FlavorFloral, models.FlavorSweet}, SpiritBase: "Champagne",
			Description: "A romantic champagne cocktail for the couple. Rose petals meet bubbles in this ethereal creation.",
			Ingredients: []string{"Champagne", "Rose Syrup", "Elderflower Liqueur", "Fresh Strawberry"},
			Garnish:     "Edible rose petals & gold dust", Molecular: true, MolecularTechnique: "Champagne Foam", Signature: true,
			ImageURL: "https://images.unsplash.com/photo-1470337458703-46ad1756a187?w=400"},
		{ID: "3", Name: "Midnight Noir", Type: models.DrinkCocktail, FlavorProfile: []models.Flavor{models.FlavorSmoky, models.FlavorSpicy}, SpiritBase: "Whiskey",
			Description: "Dark, mysterious, and unforgettable. A smoky whiskey creation with activated charcoal and spice.",
			Ingredients: []string{"Bourbon", "Activated Charcoal", "Maple Syrup", "Angostura Bitters", "Orange Zest"},
			Garnish:     "Flamed orange peel", Molecular: true, MolecularTechnique: "Smoke Bubble", Signature: true,
			ImageURL: "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?w=400"},
		{ID: "4", Name: "Mango Tango", Type: models.DrinkMocktail, FlavorProfile: []models.Flavor{models.FlavorFruity, models.FlavorSweet},
			Description: "A tropical dance of Alphonso mango and passion fruit. Refreshingly festive.",
			Ingredients: []string{"Alphonso Mango Puree", "Passion Fruit", "Lime Juice", "Coconut Water", "Mint"},
			Garnish:     "Mango slice & mint bouquet",
			ImageURL:    "https://images.unsplash.com/photo-1546171753-97d7676e4602?w=400"},
		{ID: "5", Name: "Rose Lassi Cloud", Type: models.DrinkMocktail, FlavorProfile: []models.Flavor{models.FlavorFloral, models.FlavorCreamy},
			Description: "Traditional lassi meets modern presentation. Creamy, rose-infused, topped with a cloud of foam.",
			Ingredients: []string{"Fresh Yogurt", "Rose Water", "Cardamom", "Saffron", "Honey"},
			Garnish:     "Dried rose petals & pistachio", Molecular: true, MolecularTechnique: "Rose Foam", Signature: true,
			ImageURL: "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=400"},
		{ID: "6", Name: "Velvet Kiss", Type: models.DrinkCocktail, FlavorProfile: []models.Flavor{models.FlavorFruity, models.FlavorSweet}, SpiritBase: "Vodka",
			Description: "Smooth as velvet, sweet as a kiss. Berry-infused vodka with a silky finish.",
			Ingredients: []string{"Premium Vodka", "Mixed Berries", "Vanilla", "Lemon", "Simple Syrup"},
			Garnish:     "Fresh berries on a pick",
			ImageURL:    "https://images.unsplash.com/photo-1560963689-b5682b6440f8?w=400"},
		{ID: "7", Name: "Bollywood Blast", Type: models.DrinkCocktail, FlavorProfile: []models.Flavor{models.FlavorSpicy, models.FlavorCitrus}, SpiritBase: "Rum",
			Description: "Vibrant and bold like a Bollywood dance number. Spiced rum with a citrus kick.",
			Ingredients: []string{"Spiced Rum", "Pineapple", "Jalapeño", "Lime", "Ginger Beer"},
			Garnish:     "Pineapple leaf & chili", Molecular: true, MolecularTechnique: "Smoke Bubble",
			ImageURL: "https://images.unsplash.com/photo-1536935338788-846bb9981813?w=400"},
		{ID: "8", Name: "Golden Toast", Type: models.DrinkCocktail, FlavorProfile: []models.Flavor{models.FlavorSweet, models.FlavorCitrus}, SpiritBase: "Champagne",
			Description: "Raise a glass to forever. Champagne meets gold in this celebratory creation.",
			Ingredients: []string{"Champagne", "Grand Marnier", "Honey", "Edible Gold Flakes"},
			Garnish:     "Sugar rim & gold flakes", Signature: true,
			ImageURL: "https://images.unsplash.com/photo-1574096079513-d8259312b785?w=400"},
	}
}

func defaultTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{ID: "1", Name: "Priya & Rahul Sharma", EventType: "Wedding", EventDate: "December 2024", Location: "Delhi", Rating: 5, Featured: true,
			Quote: "HQ.D transformed our wedding into a cinematic experience. The molecular cocktails had our guests mesmerized, and the bar setup was absolutely stunning. Every detail was perfect."},
		{ID: "2", Name: "Ananya Mehta", EventType: "Corporate Event", EventDate: "November 2024", Location: "Mumbai", Rating: 5, Featured: true,
			Quote: "We hired HQ.D for our product launch and they exceeded all expectations. Professional, creative, and the branded cocktails were a huge hit with our clients."},
		{ID: "3", Name: "Vikram & Neha Kapoor", EventType: "Wedding", EventDate: "October 2024", Location: "Jaipur", Rating: 5, Featured: true,
			Quote: "The smoke bubble cocktails were the talk of our sangeet! HQ.D's team was incredibly professional and managed our 400-guest event flawlessly."},
		{ID: "4", Name: "Rohan Gupta", EventType: "Private Party", EventDate: "September 2024", Location: "Gurgaon", Rating: 5, Featured: false,
			Quote: "Hired HQ.D for my 30th birthday bash. The after-party bar setup was intimate yet luxurious. Best decision ever!"},
		{ID: "5", Name: "Simran & Arjun Malhotra", EventType: "Wedding", EventDate: "January 2025", Location: "Udaipur", Rating: 5, Featured: true,
			Quote: "From mehendi to reception, HQ.D was with us for all 4 functions. Each setup was unique and the signature 'Forever New' cocktail they created for us was magical."},
	}
}

func defaultGallery() []models.GalleryItem {
	return []models.GalleryItem{
		{ID: "1", Title: "Royal Reception Setup", Category: models.GalleryWedding, ImageURL: "https://images.unsplash.com/photo-1574096079513-d8259312b785?w=800", EventName: "Sharma Wedding", Location: "The Leela Palace, Delhi", Featured: true},
		{ID: "2", Title: "Sangeet Night Bar", Category: models.GalleryWedding, ImageURL: "https://images.unsplash.com/photo-1470337458703-46ad1756a187?w=800", EventName: "Kapoor Sangeet", Location: "Taj Falaknuma, Hyderabad", Featured: true},
		{ID: "3", Title: "Corporate Launch Event", Category: models.GalleryCorporate, ImageURL: "https://images.unsplash.com/photo-1566417713940-fe7c737a9ef2?w=800", EventName: "Tech Summit 2024", Location: "Four Seasons, Mumbai", Featured: true},
		{ID: "4", Title: "Molecular Mixology Display", Category: models.GalleryWedding, ImageURL: "https://images.unsplash.com/photo-1551024709-8f23befc6f87?w=800", EventName: "Mehta Reception", Location: "ITC Grand Bharat", Featured: true},
		{ID: "5", Title: "Poolside Cocktail Bar", Category: models.GalleryPrivate, ImageURL: "https://images.unsplash.com/photo-1560963689-b5682b6440f8?w=800", EventName: "Private Villa Party", Location: "Goa"},
		{ID: "6", Title: "Noir Cocktail Evening", Category: models.GalleryPrivate, ImageURL: "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?w=800", EventName: "Birthday Celebration", Location: "Private Residence, Delhi"},
		{ID: "7", Title: "Garden Wedding Bar", Category: models.GalleryWedding, ImageURL: "https://images.unsplash.com/photo-1519671482749-fd09be7ccebf?w=800", EventName: "Singh Wedding", Location: "Raas Jodhpur", Featured: true},
		{ID: "8", Title: "Brand Activation Setup", Category: models.GalleryCorporate, ImageURL: "https://images.unsplash.com/photo-1572116469696-31de0f17cc34?w=800", EventName: "Luxury Brand Launch", Location: "Ritz Carlton, Bangalore"},
	}
}

func defaultPackages() []models.Package {
	return []models.Package{
		{ID: "1", Name: "Essential", Tier: models.TierGood, Tagline: "Perfect start for intimate gatherings",
			Description: "Our foundational package for smaller events. Premium service with curated selections.",
			Inclusions:  []string{"Professional bartenders (2)", "Standard bar setup", "Curated menu of 8 drinks", "Premium glassware", "4-hour service", "Basic garnish station"},
			BestFor:     "Intimate gatherings, small parties (up to 100 guests)"},
		{ID: "2", Name: "Signature", Tier: models.TierBetter, Tagline: "Elevated experience for memorable events",
			Description: "Our most popular package. Enhanced bar presence with signature drinks and molecular elements.",
			Inclusions:  []string{"Professional bartenders (3-4)", "Customized bar setup", "Expanded menu of 12 drinks", "2 signature cocktails", "Basic molecular elements", "Premium glassware", "6-hour service", "Full garnish station"},
			BestFor:     "Medium events, engagement parties (100-250 guests)", Highlight: "Most Popular"},
		{ID: "3", Name: "Luxe", Tier: models.TierBest, Tagline: "Luxury experience for grand celebrations",
			Description: "Comprehensive bar experience with full molecular mixology and premium selections.",
			Inclusions:  []string{"Professional bartenders (4-6)", "Premium designer bar setup", "Complete menu of 16+ drinks", "4 signature cocktails", "Full molecular mixology", "Crystal glassware", "8-hour service", "Champagne tower", "Dedicated bar manager"},
			BestFor:     "Large weddings, corporate galas (250-400 guests)", Highlight: "Best Value"},
		{ID: "4", Name: "Ultra", Tier: models.TierUltra, Tagline: "The ultimate bespoke experience",
			Description: "Completely customized luxury bar experience. White-glove service for the most discerning clients.",
			Inclusions:  []string{"Unlimited professional bartenders", "Bespoke bar design & fabrication", "Unlimited custom menu", "Personal mixologist consultation", "Complete molecular arsenal", "Premium crystal & gold glassware", "Unlimited service hours", "Multiple bar stations", "VIP lounge setup", "Dedicated event coordinator"},
			BestFor:     "Destination weddings, ultra-luxury events (400+ guests)", Highlight: "Ultimate Luxury"},
	}
}

func defaultFAQs() []models.FAQ {
	return []models.FAQ{
		{ID: "1", Order: 1, Category: models.FAQService, Question: "Do you provide food or only bars?",
			Answer: "We specialize exclusively in bar services - cocktails and mocktails only. We do not provide food or catering services. However, we work seamlessly with caterers and event planners to ensure perfect coordination."},
		{ID: "2", Order: 2, Category: models.FAQService, Question: "Do you offer mocktail-only packages?",
			Answer: "Absolutely! We have extensive mocktail menus and can create fully non-alcoholic bar experiences. Our molecular mixology techniques work beautifully with mocktails too."},
		{ID: "3", Order: 3, Category: models.FAQService, Question: "What is molecular mixology?",
			Answer: "Molecular mixology uses scientific techniques to create unique drink experiences - think smoke bubbles that release aromas, foams, caviar-like spheres, and aromatic mists. It's about creating memorable moments, not just drinks."},
		{ID: "4", Order: 4, Category: models.FAQBooking, Question: "How far in advance should we book?",
			Answer: "We recommend booking 3-6 months in advance for weddings and large events. For smaller private parties, 4-6 weeks notice is usually sufficient. Peak wedding season (October-February) books up quickly."},
		{ID: "5", Order: 5, Category: models.FAQLogistics, Question: "Do you travel outside Delhi NCR?",
			Answer: "Yes! We service events across India and have experience with destination weddings in Udaipur, Jaipur, Goa, Kerala, and more. Travel and accommodation costs apply for outstation events."},
		{ID: "6", Order: 6, Category: models.FAQService, Question: "Can we customize the menu?",
			Answer: "Absolutely! Menu customization is at the heart of what we do. We can create signature 'couple cocktails' for weddings, branded drinks for corporate events, and tailor menus to your theme and preferences."},
		{ID: "7", Order: 7, Category: models.FAQLogistics, Question: "What about alcohol procurement?",
			Answer: "We can either work with alcohol you provide, or assist with procurement recommendations. Final procurement and permits are the client's responsibility, but we guide you through the process."},
		{ID: "8", Order: 8, Category: models.FAQBooking, Question: "How does pricing work?",
			Answer: "Every event is unique, so we provide custom quotes based on guest count, duration, setup requirements, menu complexity, and location. Contact us for a personalized quote - there's no obligation."},
	}
}
