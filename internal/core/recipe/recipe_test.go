package recipe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		data string
		want LabelList
	}{
		{"single string", `"Dinner"`, LabelList{"Dinner"}},
		{"array", `["Lunch", " Dinner ", ""]`, LabelList{"Lunch", "Dinner"}},
		{"null", `null`, LabelList{}},
		{"empty string", `""`, LabelList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got LabelList
			require.NoError(t, json.Unmarshal([]byte(tt.data), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var bad LabelList
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestRecipeUnmarshalLegacyMealType(t *testing.T) {
	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(`{"id":"9","name":"Toast","meal_type":"Breakfast","health_goals":["Gut Health"]}`), &r))
	assert.Equal(t, LabelList{"Breakfast"}, r.MealType)
	assert.Equal(t, "Breakfast", r.MealType.First())
	assert.True(t, r.HealthGoals.Contains("Gut Health"))
}

func TestRecipeNormalize(t *testing.T) {
	r := Recipe{ID: " 7 ", Name: " Soup ", Calories: -10, Protein: 3}.Normalize()
	assert.Equal(t, "7", r.ID)
	assert.Equal(t, "Soup", r.Name)
	assert.Equal(t, 0.0, r.Calories)
	assert.Equal(t, 3.0, r.Protein)
	assert.NotNil(t, r.Ingredients)
	assert.NotNil(t, r.Steps)
	assert.NotNil(t, r.MealType)
}

func TestSampleRecipes(t *testing.T) {
	recipes := SampleRecipes()
	require.Len(t, recipes, 6)

	for i, r := range recipes {
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Ingredients)
		assert.NotEmpty(t, r.Instructions)
		assert.Equal(t, string(rune('1'+i)), r.ID)
	}

	thai, ok := FindByID(recipes, "6")
	require.True(t, ok)
	assert.Equal(t, "Thai Green Curry", thai.Name)
	assert.Contains(t, thai.SearchText(), "spicy coconut curry")

	_, ok = FindByID(recipes, "99")
	assert.False(t, ok)
}

func TestSort(t *testing.T) {
	recipes := SampleRecipes()

	byName := Sort(recipes, SortByName)
	assert.Equal(t, "Italian Caprese Salad", byName[0].Name)
	assert.Equal(t, "Thai Green Curry", byName[len(byName)-1].Name)

	newest := Sort(recipes, SortByNewest)
	assert.Equal(t, "6", newest[0].ID)

	popular := Sort(recipes, SortByPopularity)
	assert.Equal(t, "1", popular[0].ID)

	low := Sort(recipes, SortByCaloriesLow)
	assert.Equal(t, 280.0, low[0].Calories)
	high := Sort(recipes, SortByCaloriesHigh)
	assert.Equal(t, 520.0, high[0].Calories)

	protein := Sort(recipes, SortByProteinHigh)
	assert.Equal(t, "Mediterranean Salmon", protein[0].Name)
	proteinLow := Sort(recipes, SortByProteinLow)
	assert.Equal(t, "Quinoa Power Bowl", proteinLow[0].Name)

	// 輸入不被修改
	assert.Equal(t, "1", recipes[0].ID)

	unknown := Sort(recipes, "bogus")
	assert.Equal(t, recipes, unknown)
	assert.False(t, IsSortKey("bogus"))
	assert.True(t, IsSortKey(SortByProteinLow))
}

func TestFilterByFacets(t *testing.T) {
	recipes := SampleRecipes()

	t.Run("all sentinels keep everything", func(t *testing.T) {
		f := FacetFilter{Cuisines: []string{"All Cuisines"}, MealTypes: []string{"All Meal Types"}}
		assert.True(t, f.IsEmpty())
		assert.Len(t, FilterByFacets(recipes, f), 6)
	})

	t.Run("search term matches ingredient", func(t *testing.T) {
		got := FilterByFacets(recipes, FacetFilter{SearchTerm: "TOFU"})
		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("or within and across", func(t *testing.T) {
		got := FilterByFacets(recipes, FacetFilter{
			Cuisines:  []string{"Korean", "Thai"},
			MealTypes: []string{"Dinner"},
		})
		require.Len(t, got, 2)
		assert.Equal(t, "4", got[0].ID)
		assert.Equal(t, "6", got[1].ID)

		got = FilterByFacets(recipes, FacetFilter{
			Cuisines:    []string{"Korean", "Thai"},
			HealthGoals: []string{"Digestive Health"},
		})
		require.Len(t, got, 1)
		assert.Equal(t, "6", got[0].ID)
	})
}

func TestPaginate(t *testing.T) {
	recipes := SampleRecipes()

	p := Paginate(recipes, 1, 4)
	assert.Len(t, p.Items, 4)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, 1, p.StartIndex)
	assert.Equal(t, 4, p.EndIndex)
	assert.True(t, p.CanGoNext)
	assert.False(t, p.CanGoPrev)

	p = Paginate(recipes, 9, 4)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Len(t, p.Items, 2)
	assert.Equal(t, 5, p.StartIndex)
	assert.Equal(t, 6, p.EndIndex)
	assert.False(t, p.CanGoNext)

	p = Paginate(nil, 1, 0)
	assert.Empty(t, p.Items)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 0, p.StartIndex)
}

func TestOptions(t *testing.T) {
	opts := Options()
	assert.Equal(t, "All Cuisines", opts.Cuisines[0])
	assert.Len(t, opts.SortOptions, 7)

	opts.Cuisines[0] = "changed"
	assert.Equal(t, "All Cuisines", Options().Cuisines[0])

	assert.Equal(t, []string{"Thai"}, WithoutAllOption([]string{"All Cuisines", " ", "Thai"}))
}
