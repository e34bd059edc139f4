package query

import (
	"net/url"
	"testing"

	"hqd-api/catalog"
	"hqd-api/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFixture() []models.BarSetup {
	return []models.BarSetup{
		{ID: "1", Slug: "a", Events: []string{"sangeet"}, Style: models.StyleBollywood, Featured: true},
		{ID: "2", Slug: "b", Events: []string{"reception"}, Style: models.StyleRoyal},
		{ID: "3", Slug: "c", Events: []string{"mehendi", "sangeet"}, Style: models.StyleRoyal},
		{ID: "4", Slug: "d", Events: []string{"corporate"}, Style: models.StyleMinimalLuxe, Featured: true},
		{ID: "5", Slug: "e", Events: []string{"cocktail-night", "sangeet"}, Style: models.StyleModernMonochrome},
	}
}

func ids[T any](records []T, id func(T) string) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = id(r)
	}
	return out
}

func setupIDs(s []models.BarSetup) []string { return ids(s, func(b models.BarSetup) string { return b.ID }) }

func TestSetups_SangeetScenario(t *testing.T) {
	got := Setups(setupFixture(), Criteria{Event: "Sangeet", Style: "all"})
	if diff := cmp.Diff([]string{"1", "3", "5"}, setupIDs(got)); diff != "" {
		t.Fatalf("sangeet setups mismatch (-want +got):\n%s", diff)
	}
}

func TestSetups_IdentityFilter(t *testing.T) {
	records := setupFixture()
	got := Setups(records, Criteria{})
	if diff := cmp.Diff(records, got); diff != "" {
		t.Fatalf("empty criteria changed the collection (-want +got):\n%s", diff)
	}

	got = Setups(records, Criteria{Event: "All", Style: "ALL"})
	assert.Equal(t, setupIDs(records), setupIDs(got))
}

func TestSetups_ConjunctionComposes(t *testing.T) {
	records := setupFixture()
	byEvent := Criteria{Event: "sangeet"}
	byStyle := Criteria{Style: "Royal"}
	both := Criteria{Event: "sangeet", Style: "Royal"}

	combined := Setups(records, both)
	chained := Setups(Setups(records, byEvent), byStyle)
	reversed := Setups(Setups(records, byStyle), byEvent)

	assert.Equal(t, []string{"3"}, setupIDs(combined))
	if diff := cmp.Diff(combined, chained); diff != "" {
		t.Errorf("event then style differs (-combined +chained):\n%s", diff)
	}
	if diff := cmp.Diff(combined, reversed); diff != "" {
		t.Errorf("style then event differs (-combined +reversed):\n%s", diff)
	}
}

func TestSetups_StableOrder(t *testing.T) {
	records := setupFixture()
	got := Setups(records, Criteria{Featured: Bool(true)})
	assert.Equal(t, []string{"1", "4"}, setupIDs(got))

	got = Setups(records, Criteria{Featured: Bool(false)})
	assert.Equal(t, []string{"2", "3", "5"}, setupIDs(got))
}

func TestSetups_UnknownValueIsEmpty(t *testing.T) {
	got := Setups(setupFixture(), Criteria{Event: "bar-mitzvah"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSetups_LabelNormalization(t *testing.T) {
	got := Setups(setupFixture(), Criteria{Event: "Cocktail Night"})
	assert.Equal(t, []string{"5"}, setupIDs(got))
}

func TestSetups_MissingAttributeNeverMatches(t *testing.T) {
	records := []models.BarSetup{{ID: "x"}, {ID: "y", Events: []string{"sangeet"}}}
	assert.Equal(t, []string{"y"}, setupIDs(Setups(records, Criteria{Event: "sangeet"})))
	assert.Empty(t, Setups(records[:1], Criteria{Style: "Royal"}))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := setupFixture()
	before := setupFixture()
	_ = Setups(records, Criteria{Event: "sangeet", Featured: Bool(false)})
	if diff := cmp.Diff(before, records); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}

func TestFilter_NilInput(t *testing.T) {
	got := Filter[int](nil, func(int) bool { return true })
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDrinks(t *testing.T) {
	drinks := catalog.Default().Drinks()
	drinkIDs := func(d []models.DrinkMenuItem) []string {
		return ids(d, func(m models.DrinkMenuItem) string { return m.ID })
	}

	assert.Equal(t, []string{"4", "5"}, drinkIDs(Drinks(drinks, Criteria{Type: "mocktail"})))
	assert.Equal(t, []string{"1", "7", "8"}, drinkIDs(Drinks(drinks, Criteria{Flavor: "citrus"})))
	assert.Equal(t, []string{"1", "7"}, drinkIDs(Drinks(drinks, Criteria{Flavor: "citrus", Molecular: Bool(true)})))
	assert.Equal(t, []string{"5"}, drinkIDs(Drinks(drinks, Criteria{Type: "mocktail", Molecular: Bool(true)})))
	assert.Equal(t, []string{"3"}, drinkIDs(Drinks(drinks, Criteria{Search: "CHARCOAL"})))
	assert.Empty(t, Drinks(drinks, Criteria{Flavor: "umami"}))
}

func TestGalleryAndFAQs(t *testing.T) {
	store := catalog.Default()

	corporate := Gallery(store.Gallery(), Criteria{Category: "corporate"})
	assert.Equal(t, []string{"3", "8"}, ids(corporate, func(g models.GalleryItem) string { return g.ID }))

	featuredCorporate := Gallery(store.Gallery(), Criteria{Category: "corporate", Featured: Bool(true)})
	assert.Len(t, featuredCorporate, 1)

	logistics := FAQs(store.FAQs(), Criteria{Category: "logistics"})
	assert.Equal(t, []string{"5", "7"}, ids(logistics, func(f models.FAQ) string { return f.ID }))

	found := FAQs(store.FAQs(), Criteria{Search: "molecular"})
	require.NotEmpty(t, found)
	assert.Equal(t, "2", found[0].ID)
}

func TestTechniques(t *testing.T) {
	techs := catalog.Default().Techniques()
	master := Techniques(techs, Criteria{Difficulty: "master"})
	assert.Len(t, master, 5)

	aromaMaster := Techniques(techs, Criteria{Difficulty: "master", Category: "aroma"})
	for _, tech := range aromaMaster {
		assert.Equal(t, models.TechniqueAroma, tech.Category)
		assert.Equal(t, models.DifficultyMaster, tech.Difficulty)
	}
	assert.Len(t, aromaMaster, 3)
}

func TestTestimonials(t *testing.T) {
	all := catalog.Default().Testimonials()
	assert.Len(t, Testimonials(all, Criteria{Featured: Bool(true)}), 4)
	assert.Len(t, Testimonials(all, Criteria{}), 5)
}

func TestParseCriteria(t *testing.T) {
	v := url.Values{}
	v.Set("occasion", "Sangeet")
	v.Set("style", "all")
	v.Set("featured", "true")
	v.Set("molecular", "maybe")
	v.Set("colour", "gold")

	c := ParseCriteria(v)
	assert.Equal(t, "Sangeet", c.Event)
	assert.Equal(t, "all", c.Style)
	require.NotNil(t, c.Featured)
	assert.True(t, *c.Featured)
	assert.Nil(t, c.Molecular, "unparsable boolean is no constraint")

	v.Set("event", "reception")
	assert.Equal(t, "reception", ParseCriteria(v).Event, "event wins over occasion")
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "cocktail-night", NormalizeTag("Cocktail Night"))
	assert.Equal(t, "after-party", NormalizeTag("After-Party"))
	assert.Equal(t, "pool-party", NormalizeTag("  Pool   Party "))
}
