// Package query narrows catalog collections by criteria.
//
// Every function here is pure: the input slice is never modified, the
// relative order of matches is preserved and an empty result is an empty
// (non-nil) slice, never an error.
package query

import (
	"slices"
	"strings"

	"hqd-api/models"
)

// Predicate reports whether a record matches one criterion
type Predicate[T any] func(T) bool

// Filter returns the records matching every predicate, in input order.
// Nil predicates are skipped, so an absent criterion imposes no constraint.
func Filter[T any](records []T, preds ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if matchesAll(r, active) {
			out = append(out, r)
		}
	}
	return out
}

func matchesAll[T any](r T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

// Setups filters bar setups by event, style and featured
func Setups(records []models.BarSetup, c Criteria) []models.BarSetup {
	var byEvent, byStyle, byFeatured Predicate[models.BarSetup]
	if ev, ok := c.event(); ok {
		byEvent = func(s models.BarSetup) bool {
			return slices.ContainsFunc(s.Events, func(e string) bool { return NormalizeTag(e) == ev })
		}
	}
	if style, ok := c.value(c.Style); ok {
		byStyle = func(s models.BarSetup) bool { return strings.EqualFold(string(s.Style), style) }
	}
	if c.Featured != nil {
		want := *c.Featured
		byFeatured = func(s models.BarSetup) bool { return s.Featured == want }
	}
	return Filter(records, byEvent, byStyle, byFeatured)
}

// Drinks filters the menu by type, flavor, molecular and free text
func Drinks(records []models.DrinkMenuItem, c Criteria) []models.DrinkMenuItem {
	var byType, byFlavor, byMolecular, bySearch Predicate[models.DrinkMenuItem]
	if typ, ok := c.value(c.Type); ok {
		byType = func(d models.DrinkMenuItem) bool { return strings.EqualFold(string(d.Type), typ) }
	}
	if flavor, ok := c.value(c.Flavor); ok {
		byFlavor = func(d models.DrinkMenuItem) bool {
			return slices.ContainsFunc(d.FlavorProfile, func(f models.Flavor) bool {
				return strings.EqualFold(string(f), flavor)
			})
		}
	}
	if c.Molecular != nil {
		want := *c.Molecular
		byMolecular = func(d models.DrinkMenuItem) bool { return d.Molecular == want }
	}
	if q, ok := c.search(); ok {
		bySearch = func(d models.DrinkMenuItem) bool {
			return containsFold(d.Name, q) || containsFold(d.Description, q)
		}
	}
	return Filter(records, byType, byFlavor, byMolecular, bySearch)
}

// Testimonials filters by featured
func Testimonials(records []models.Testimonial, c Criteria) []models.Testimonial {
	var byFeatured Predicate[models.Testimonial]
	if c.Featured != nil {
		want := *c.Featured
		byFeatured = func(t models.Testimonial) bool { return t.Featured == want }
	}
	return Filter(records, byFeatured)
}

// Gallery filters by category and featured
func Gallery(records []models.GalleryItem, c Criteria) []models.GalleryItem {
	var byCategory, byFeatured Predicate[models.GalleryItem]
	if cat, ok := c.value(c.Category); ok {
		byCategory = func(g models.GalleryItem) bool { return strings.EqualFold(string(g.Category), cat) }
	}
	if c.Featured != nil {
		want := *c.Featured
		byFeatured = func(g models.GalleryItem) bool { return g.Featured == want }
	}
	return Filter(records, byCategory, byFeatured)
}

// FAQs filters by category and free text over question and answer
func FAQs(records []models.FAQ, c Criteria) []models.FAQ {
	var byCategory, bySearch Predicate[models.FAQ]
	if cat, ok := c.value(c.Category); ok {
		byCategory = func(f models.FAQ) bool { return strings.EqualFold(string(f.Category), cat) }
	}
	if q, ok := c.search(); ok {
		bySearch = func(f models.FAQ) bool {
			return containsFold(f.Question, q) || containsFold(f.Answer, q)
		}
	}
	return Filter(records, byCategory, bySearch)
}

// Techniques filters the molecular library by category and difficulty
func Techniques(records []models.Technique, c Criteria) []models.Technique {
	var byCategory, byDifficulty Predicate[models.Technique]
	if cat, ok := c.value(c.Category); ok {
		byCategory = func(t models.Technique) bool { return strings.EqualFold(string(t.Category), cat) }
	}
	if d, ok := c.value(c.Difficulty); ok {
		byDifficulty = func(t models.Technique) bool { return strings.EqualFold(string(t.Difficulty), d) }
	}
	return Filter(records, byCategory, byDifficulty)
}

// NormalizeTag maps a display label such as "Cocktail Night" to its tag form "cocktail-night"
func NormalizeTag(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

func containsFold(s, lowerSubstr string) bool {
	return strings.Contains(strings.ToLower(s), lowerSubstr)
}
