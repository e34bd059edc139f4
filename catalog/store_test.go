package catalog

import (
	"errors"
	"testing"

	"hqd-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeedIsValid(t *testing.T) {
	_, err := New(DefaultSeed())
	require.NoError(t, err)
}

func TestSetupSlugsUnique(t *testing.T) {
	s := Default()
	seen := map[string]bool{}
	for _, st := range s.Setups() {
		assert.False(t, seen[st.Slug], "duplicate slug %q", st.Slug)
		seen[st.Slug] = true

		got, err := s.SetupBySlug(st.Slug)
		require.NoError(t, err)
		assert.Equal(t, st.ID, got.ID)
	}
}

func TestSetupBySlug_NotFound(t *testing.T) {
	_, err := Default().SetupBySlug("moonlight-bar")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, KindSetups, nf.Kind)
	assert.Equal(t, "moonlight-bar", nf.Slug)
}

func TestTechniqueBySlug(t *testing.T) {
	s := Default()
	tech, err := s.TechniqueBySlug("smoke-bubbles")
	require.NoError(t, err)
	assert.Equal(t, "Smoke Bubbles", tech.Name)
	assert.Equal(t, 100, tech.Points)

	_, err = s.TechniqueBySlug("teleportation")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAll(t *testing.T) {
	s := Default()
	for _, kind := range Kinds {
		got, err := s.All(kind)
		require.NoError(t, err, kind)
		assert.NotNil(t, got, kind)
	}

	setups, err := s.All(KindSetups)
	require.NoError(t, err)
	assert.Len(t, setups.([]models.BarSetup), 8)

	_, err = s.All("cars")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestAll_EmptyKindIsEmptyNotNil(t *testing.T) {
	s, err := New(Seed{Setups: DefaultSeed().Setups})
	require.NoError(t, err)

	got, err := s.All(KindTestimonials)
	require.NoError(t, err)
	testimonials := got.([]models.Testimonial)
	assert.NotNil(t, testimonials)
	assert.Empty(t, testimonials)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := Default()
	setups := s.Setups()
	setups[0].Title = "changed"
	setups[0].Events[0] = "changed"

	again := s.Setups()
	assert.NotEqual(t, "changed", again[0].Title)
	assert.NotEqual(t, "changed", again[0].Events[0])
}

func TestNew_CopiesSeed(t *testing.T) {
	seed := DefaultSeed()
	s, err := New(seed)
	require.NoError(t, err)

	seed.Setups[0].Slug = "mutated"
	_, err = s.SetupBySlug("mutated")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNew_RejectsInvalidSeed(t *testing.T) {
	base := DefaultSeed().Setups[0]

	dup := base
	noEvents := base
	noEvents.Slug = "no-events"
	noEvents.Events = nil

	_, err := New(Seed{Setups: []models.BarSetup{base, dup}})
	assert.ErrorContains(t, err, "duplicate slug")

	_, err = New(Seed{Setups: []models.BarSetup{noEvents}})
	assert.ErrorContains(t, err, "no events")

	drink := DefaultSeed().Drinks[0]
	drink.MolecularTechnique = ""
	_, err = New(Seed{Drinks: []models.DrinkMenuItem{drink}})
	assert.ErrorContains(t, err, "molecular technique")

	_, err = New(Seed{Testimonials: []models.Testimonial{{ID: "x", Rating: 6}}})
	assert.ErrorContains(t, err, "rating 6 out of range")
}

func TestRelatedSetups(t *testing.T) {
	s := Default()
	related, err := s.RelatedSetups("reception-royale", 3)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "garden-elegance", related[0].Slug)

	related, err = s.RelatedSetups("cocktail-night-noir", 0)
	require.NoError(t, err)
	slugs := []string{}
	for _, r := range related {
		slugs = append(slugs, r.Slug)
	}
	assert.Equal(t, []string{"sangeet-spectacular", "after-party-lounge"}, slugs)

	_, err = s.RelatedSetups("nope", 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFAQsOrdered(t *testing.T) {
	faqs := []models.FAQ{
		{ID: "b", Order: 2, Category: models.FAQBooking},
		{ID: "a", Order: 1, Category: models.FAQService},
	}
	s, err := New(Seed{FAQs: faqs})
	require.NoError(t, err)
	got := s.FAQs()
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestTotalTechniquePoints(t *testing.T) {
	assert.Equal(t, 10000, Default().TotalTechniquePoints())
}
