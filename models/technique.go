package models

// Difficulty grades a molecular technique; each level is worth a fixed number of points
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyMaster       Difficulty = "master"
)

// Points returns the score awarded for exploring a technique of this difficulty
func (d Difficulty) Points() int {
	switch d {
	case DifficultyBeginner:
		return 100
	case DifficultyIntermediate:
		return 250
	case DifficultyAdvanced:
		return 500
	case DifficultyMaster:
		return 1000
	}
	return 0
}

type TechniqueCategory string

const (
	TechniqueVisual       TechniqueCategory = "visual"
	TechniqueTexture      TechniqueCategory = "texture"
	TechniqueAroma        TechniqueCategory = "aroma"
	TechniqueTemperature  TechniqueCategory = "temperature"
	TechniquePresentation TechniqueCategory = "presentation"
)

// Technique is an entry of the molecular mixology library
type Technique struct {
	Slug          string            `json:"id"`
	Name          string            `json:"name"`
	Tagline       string            `json:"tagline"`
	Description   string            `json:"description"`
	Difficulty    Difficulty        `json:"difficulty"`
	Category      TechniqueCategory `json:"category"`
	WowFactor     int               `json:"wow_factor"`
	Equipment     []string          `json:"equipment"`
	PerfectFor    []string          `json:"perfect_for"`
	FunFact       string            `json:"fun_fact"`
	PopularDrinks []string          `json:"popular_drinks"`
	Points        int               `json:"points"`
}
