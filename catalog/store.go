// Package catalog holds the read-only marketing content: bar setups, drinks,
// testimonials, gallery, packages, FAQs and the molecular technique library.
//
// A Store is built once at startup and never mutated. Accessors hand out
// copies, so callers may sort or edit what they receive freely.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"hqd-api/models"
)

// Kind names an entity collection
type Kind string

const (
	KindSetups       Kind = "setups"
	KindDrinks       Kind = "drinks"
	KindTestimonials Kind = "testimonials"
	KindGallery      Kind = "gallery"
	KindPackages     Kind = "packages"
	KindFAQs         Kind = "faqs"
	KindTechniques   Kind = "techniques"
)

// Kinds lists every collection a Store serves
var Kinds = []Kind{KindSetups, KindDrinks, KindTestimonials, KindGallery, KindPackages, KindFAQs, KindTechniques}

// Seed is the raw content a Store is built from
type Seed struct {
	Setups       []models.BarSetup
	Drinks       []models.DrinkMenuItem
	Testimonials []models.Testimonial
	Gallery      []models.GalleryItem
	Packages     []models.Package
	FAQs         []models.FAQ
	Techniques   []models.Technique
}

type Store struct {
	seed     Seed
	setupIdx map[string]int
	techIdx  map[string]int
}

// New validates seed and builds an immutable Store from a private copy of it
func New(seed Seed) (*Store, error) {
	if err := validate(seed); err != nil {
		return nil, err
	}
	s := &Store{
		seed: Seed{
			Setups:       cloneSetups(seed.Setups),
			Drinks:       cloneDrinks(seed.Drinks),
			Testimonials: slices.Clone(seed.Testimonials),
			Gallery:      slices.Clone(seed.Gallery),
			Packages:     clonePackages(seed.Packages),
			FAQs:         slices.Clone(seed.FAQs),
			Techniques:   cloneTechniques(seed.Techniques),
		},
		setupIdx: make(map[string]int, len(seed.Setups)),
		techIdx:  make(map[string]int, len(seed.Techniques)),
	}
	for i, st := range s.seed.Setups {
		s.setupIdx[st.Slug] = i
	}
	for i := range s.seed.Techniques {
		t := &s.seed.Techniques[i]
		t.Points = t.Difficulty.Points()
		s.techIdx[t.Slug] = i
	}
	// FAQs are always served in display order
	sort.SliceStable(s.seed.FAQs, func(i, j int) bool {
		return s.seed.FAQs[i].Order < s.seed.FAQs[j].Order
	})
	return s, nil
}

// MustNew is New for seeds known to be valid at compile time
func MustNew(seed Seed) *Store {
	s, err := New(seed)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns a Store over the production seed
func Default() *Store {
	return MustNew(DefaultSeed())
}

// All returns the ordered collection for kind as a typed slice
// ([]models.BarSetup for KindSetups and so on).
func (s *Store) All(kind Kind) (any, error) {
	switch kind {
	case KindSetups:
		return s.Setups(), nil
	case KindDrinks:
		return s.Drinks(), nil
	case KindTestimonials:
		return s.Testimonials(), nil
	case KindGallery:
		return s.Gallery(), nil
	case KindPackages:
		return s.Packages(), nil
	case KindFAQs:
		return s.FAQs(), nil
	case KindTechniques:
		return s.Techniques(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func (s *Store) Setups() []models.BarSetup { return cloneSetups(s.seed.Setups) }
func (s *Store) Drinks() []models.DrinkMenuItem { return cloneDrinks(s.seed.Drinks) }
func (s *Store) Testimonials() []models.Testimonial { return nonNil(slices.Clone(s.seed.Testimonials)) }
func (s *Store) Gallery() []models.GalleryItem { return nonNil(slices.Clone(s.seed.Gallery)) }
func (s *Store) Packages() []models.Package { return clonePackages(s.seed.Packages) }
func (s *Store) FAQs() []models.FAQ { return nonNil(slices.Clone(s.seed.FAQs)) }
func (s *Store) Techniques() []models.Technique { return cloneTechniques(s.seed.Techniques) }

// SetupBySlug returns the setup with the given slug or a *NotFoundError
func (s *Store) SetupBySlug(slug string) (models.BarSetup, error) {
	i, ok := s.setupIdx[slug]
	if !ok {
		return models.BarSetup{}, &NotFoundError{Kind: KindSetups, Slug: slug}
	}
	return cloneSetup(s.seed.Setups[i]), nil
}

// TechniqueBySlug returns the technique with the given slug or a *NotFoundError
func (s *Store) TechniqueBySlug(slug string) (models.Technique, error) {
	i, ok := s.techIdx[slug]
	if !ok {
		return models.Technique{}, &NotFoundError{Kind: KindTechniques, Slug: slug}
	}
	return cloneTechnique(s.seed.Techniques[i]), nil
}

// RelatedSetups returns up to limit other setups sharing an event tag with slug, in catalog order
func (s *Store) RelatedSetups(slug string, limit int) ([]models.BarSetup, error) {
	base, err := s.SetupBySlug(slug)
	if err != nil {
		return nil, err
	}
	related := []models.BarSetup{}
	for _, st := range s.seed.Setups {
		if limit > 0 && len(related) == limit {
			break
		}
		if st.ID == base.ID {
			continue
		}
		for _, e := range st.Events {
			if slices.Contains(base.Events, e) {
				related = append(related, cloneSetup(st))
				break
			}
		}
	}
	return related, nil
}

// TotalTechniquePoints is the score for exploring the whole technique library
func (s *Store) TotalTechniquePoints() int {
	total := 0
	for _, t := range s.seed.Techniques {
		total += t.Points
	}
	return total
}

func validate(seed Seed) error {
	var errs []error
	slugs := map[string]bool{}
	for _, st := range seed.Setups {
		if st.Slug == "" {
			errs = append(errs, fmt.Errorf("setup %s: empty slug", st.ID))
		} else if slugs[st.Slug] {
			errs = append(errs, fmt.Errorf("setup %s: duplicate slug %q", st.ID, st.Slug))
		}
		slugs[st.Slug] = true
		if len(st.Events) == 0 {
			errs = append(errs, fmt.Errorf("setup %s: no events", st.Slug))
		}
		if !slices.Contains(models.AllStyles, st.Style) {
			errs = append(errs, fmt.Errorf("setup %s: unknown style %q", st.Slug, st.Style))
		}
		switch st.PricingTier {
		case models.PricingEssential, models.PricingPremium, models.PricingLuxury:
		default:
			errs = append(errs, fmt.Errorf("setup %s: unknown pricing tier %q", st.Slug, st.PricingTier))
		}
	}
	for _, d := range seed.Drinks {
		if d.Type != models.DrinkCocktail && d.Type != models.DrinkMocktail {
			errs = append(errs, fmt.Errorf("drink %s: unknown type %q", d.ID, d.Type))
		}
		if len(d.FlavorProfile) == 0 {
			errs = append(errs, fmt.Errorf("drink %s: empty flavor profile", d.ID))
		}
		for _, f := range d.FlavorProfile {
			if !slices.Contains(models.AllFlavors, f) {
				errs = append(errs, fmt.Errorf("drink %s: unknown flavor %q", d.ID, f))
			}
		}
		if d.Molecular != (d.MolecularTechnique != "") {
			errs = append(errs, fmt.Errorf("drink %s: molecular technique must be set iff molecular", d.ID))
		}
	}
	for _, t := range seed.Testimonials {
		if t.Rating < 1 || t.Rating > 5 {
			errs = append(errs, fmt.Errorf("testimonial %s: rating %d out of range", t.ID, t.Rating))
		}
	}
	for _, g := range seed.Gallery {
		switch g.Category {
		case models.GalleryWedding, models.GalleryCorporate, models.GalleryPrivate:
		default:
			errs = append(errs, fmt.Errorf("gallery %s: unknown category %q", g.ID, g.Category))
		}
	}
	for _, p := range seed.Packages {
		switch p.Tier {
		case models.TierGood, models.TierBetter, models.TierBest, models.TierUltra:
		default:
			errs = append(errs, fmt.Errorf("package %s: unknown tier %q", p.ID, p.Tier))
		}
	}
	for _, f := range seed.FAQs {
		switch f.Category {
		case models.FAQBooking, models.FAQService, models.FAQLogistics:
		default:
			errs = append(errs, fmt.Errorf("faq %s: unknown category %q", f.ID, f.Category))
		}
	}
	techSlugs := map[string]bool{}
	for _, t := range seed.Techniques {
		if techSlugs[t.Slug] {
			errs = append(errs, fmt.Errorf("technique %q: duplicate slug", t.Slug))
		}
		techSlugs[t.Slug] = true
		if t.Difficulty.Points() == 0 {
			errs = append(errs, fmt.Errorf("technique %s: unknown difficulty %q", t.Slug, t.Difficulty))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("catalog: invalid seed: %w", errors.Join(errs...))
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func cloneSetup(st models.BarSetup) models.BarSetup {
	st.Events = slices.Clone(st.Events)
	st.Features = slices.Clone(st.Features)
	st.SignatureDrinks = slices.Clone(st.SignatureDrinks)
	st.MolecularTechniques = slices.Clone(st.MolecularTechniques)
	return st
}

func cloneSetups(in []models.BarSetup) []models.BarSetup {
	out := make([]models.BarSetup, len(in))
	for i, st := range in {
		out[i] = cloneSetup(st)
	}
	return out
}

func cloneDrinks(in []models.DrinkMenuItem) []models.DrinkMenuItem {
	out := make([]models.DrinkMenuItem, len(in))
	for i, d := range in {
		d.FlavorProfile = slices.Clone(d.FlavorProfile)
		d.Ingredients = slices.Clone(d.Ingredients)
		out[i] = d
	}
	return out
}

func clonePackages(in []models.Package) []models.Package {
	out := make([]models.Package, len(in))
	for i, p := range in {
		p.Inclusions = slices.Clone(p.Inclusions)
		out[i] = p
	}
	return out
}

func cloneTechnique(t models.Technique) models.Technique {
	t.Equipment = slices.Clone(t.Equipment)
	t.PerfectFor = slices.Clone(t.PerfectFor)
	t.PopularDrinks = slices.Clone(t.PopularDrinks)
	return t
}

func cloneTechniques(in []models.Technique) []models.Technique {
	out := make([]models.Technique, len(in))
	for i, t := range in {
		out[i] = cloneTechnique(t)
	}
	return out
}
