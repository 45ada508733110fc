package catalog_test

import (
	"testing"

	"github.com/daves-impact/MetaCal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEntryDerivesBaseMacros(t *testing.T) {
	// ng-eba maps to WAFCT 02_041: 165 kcal, 1g protein, 38.7g carbs, 0.4g fat per 100g
	e := catalog.BuildEntry("ng-eba", "Eba (Garri)", "Swallow", "1 wrap (300g)", 300, []string{"swallow"})

	require.NotNil(t, e.Calories)
	assert.Equal(t, 495, *e.Calories)
	assert.Equal(t, 3.0, *e.Protein)
	assert.Equal(t, 116.1, *e.Carbs)
	assert.Equal(t, 1.2, *e.Fat)
	assert.Equal(t, "wafct", e.Source)
	assert.Equal(t, "02_041", e.SourceCode)
	assert.Equal(t, catalog.ConfidenceProxy, e.Confidence)
}

func TestBuildEntryServingVariants(t *testing.T) {
	e := catalog.BuildEntry("ng-jollof-rice", "Jollof Rice", "Rice", "1 cup (200g)", 200, []string{"rice"})

	require.Len(t, e.Servings, 3)
	assert.Equal(t, catalog.Serving{Label: "1 cup (200g)", Grams: 200}, e.Servings[0])
	assert.Equal(t, catalog.Serving{Label: "Half serving", Grams: 100}, e.Servings[1])
	assert.Equal(t, catalog.Serving{Label: "Double serving", Grams: 400}, e.Servings[2])
}

func TestBuildEntryHalfServingRoundsToNearestGram(t *testing.T) {
	e := catalog.BuildEntry("ng-egg", "Boiled Egg", "Protein", "1 egg (125g)", 125, nil)
	assert.Equal(t, 63.0, e.Servings[1].Grams)
}

func TestBuildEntryUnmappedFood(t *testing.T) {
	e := catalog.BuildEntry("ng-suya", "Suya", "Protein", "1 stick (80g)", 80, nil)

	assert.Nil(t, e.Calories)
	assert.Nil(t, e.Protein)
	assert.Nil(t, e.Carbs)
	assert.Nil(t, e.Fat)
	assert.Equal(t, "local", e.Source)
	assert.Equal(t, catalog.ConfidenceNone, e.Confidence)
	assert.Len(t, e.Servings, 3)
}

func TestBuildEntryCalories165At200Grams(t *testing.T) {
	// 165 kcal/100g at a 200g serving is 330 kcal
	e := catalog.BuildEntry("ng-eba", "Eba", "Swallow", "1 bowl (200g)", 200, nil)
	require.NotNil(t, e.Calories)
	assert.Equal(t, 330, *e.Calories)
}

func TestScaleIdentity(t *testing.T) {
	e, ok := catalog.ByID("ng-jollof-rice")
	require.True(t, ok)

	m := catalog.Scale(e, e.Servings[0].Grams, 1)
	assert.Equal(t, *e.Calories, m.Calories)
	assert.Equal(t, *e.Protein, m.Protein)
	assert.Equal(t, *e.Carbs, m.Carbs)
	assert.Equal(t, *e.Fat, m.Fat)
}

func TestScaleQuantity(t *testing.T) {
	e := catalog.BuildEntry("ng-eba", "Eba", "Swallow", "1 bowl (200g)", 200, nil)

	m := catalog.Scale(e, 200, 2)
	assert.Equal(t, 660, m.Calories)
}

func TestScaleHalfServing(t *testing.T) {
	e, ok := catalog.ByID("ng-white-rice")
	require.True(t, ok) // 115 kcal/100g, 200g base serving, 230 kcal

	m := catalog.Scale(e, e.Servings[1].Grams, 1)
	assert.Equal(t, 115, m.Calories)
}

func TestScaleGuardsZeroBaseGrams(t *testing.T) {
	cal := 200
	e := catalog.Entry{ServingGrams: 0, Calories: &cal}

	m := catalog.Scale(e, 150, 1)
	assert.Equal(t, 200, m.Calories) // multiplier falls back to 1
}

func TestScaleNilMacrosCountZero(t *testing.T) {
	e := catalog.BuildEntry("ng-suya", "Suya", "Protein", "1 stick (80g)", 80, nil)

	m := catalog.Scale(e, 160, 3)
	assert.Equal(t, catalog.Macros{}, m)
}

func TestSearchByNameAndTag(t *testing.T) {
	byName := catalog.Search("jollof")
	require.NotEmpty(t, byName)
	assert.Equal(t, "ng-jollof-rice", byName[0].ID)

	byTag := catalog.Search("swallow")
	assert.Len(t, byTag, 5)

	assert.Equal(t, len(catalog.Search("RICE")), len(catalog.Search("rice")))
	assert.Empty(t, catalog.Search("   "))
}

func TestCatalogShape(t *testing.T) {
	foods := catalog.All()
	assert.Len(t, foods, 40)

	seen := make(map[string]bool)
	for _, f := range foods {
		assert.False(t, seen[f.ID], "duplicate id %s", f.ID)
		seen[f.ID] = true
		assert.Len(t, f.Servings, 3)
		assert.Greater(t, f.ServingGrams, 0.0)
	}
}
