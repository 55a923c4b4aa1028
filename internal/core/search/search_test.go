package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatro/internal/core/recipe"
)

func ids(recipes []recipe.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		label, fragment string
		want            bool
	}{
		{"Italian", "Itali", true},
		{"Italian", "italian", true},
		{"Mexican", "Ital", false},
		{"Korean", "Korea", true},
		{"Korean", "Kroean", true},
		{"Thai", "Thia", true},
		{"Lunch", "Low", true},
		{"Party", "Carb", true},
		{"Dinner", "supper", false},
		{"Mediterranean", "Med", true},
		{"Chinese", "Japanese", false},
	}

	for _, tt := range tests {
		t.Run(tt.label+"/"+tt.fragment, func(t *testing.T) {
			assert.Equal(t, tt.want, FuzzyMatch(tt.label, tt.fragment))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, Classify(""))
		assert.Empty(t, Classify("   \t "))
	})

	t.Run("categories and aggregated free text", func(t *testing.T) {
		tokens := Classify("Thai  spicy green")
		require.Len(t, tokens, 2)
		assert.Equal(t, Token{Type: TokenCuisine, Value: "Thai", Original: "Thai"}, tokens[0])
		assert.Equal(t, Token{Type: TokenFreeText, Value: "spicy green", Original: "spicy green"}, tokens[1])
	})

	t.Run("meal type and health goal", func(t *testing.T) {
		tokens := Classify("breakfast superfood")
		require.Len(t, tokens, 2)
		assert.Equal(t, TokenMealType, tokens[0].Type)
		assert.Equal(t, "Breakfast", tokens[0].Value)
		assert.Equal(t, TokenHealthGoal, tokens[1].Type)
		assert.Equal(t, "Superfood", tokens[1].Value)
		assert.Equal(t, "superfood", tokens[1].Original)
	})

	t.Run("cuisine wins over meal type", func(t *testing.T) {
		c := NewClassifier(Vocabulary{
			Cuisines:  []string{"Brunch Bistro"},
			MealTypes: []string{"Brunch"},
		})
		tokens := c.Classify("brunch")
		require.Len(t, tokens, 1)
		assert.Equal(t, TokenCuisine, tokens[0].Type)
		assert.Equal(t, "Brunch Bistro", tokens[0].Value)
	})

	t.Run("empty vocabulary degrades to free text", func(t *testing.T) {
		c := NewClassifier(Vocabulary{Cuisines: []string{"All Cuisines"}})
		tokens := c.Classify("Italian dinner")
		require.Len(t, tokens, 1)
		assert.Equal(t, TokenFreeText, tokens[0].Type)
		assert.Equal(t, "Italian dinner", tokens[0].Value)
	})
}

func TestFilter(t *testing.T) {
	recipes := []recipe.Recipe{
		{ID: "R1", Name: "Lasagna", Cuisine: "Italian", MealType: recipe.LabelList{"Dinner"}},
		{ID: "R2", Name: "Panini", Cuisine: "Italian", MealType: recipe.LabelList{"Lunch"}},
		{ID: "R3", Name: "Pad Thai", Cuisine: "Thai", MealType: recipe.LabelList{"Dinner"}},
	}

	t.Run("and across categories", func(t *testing.T) {
		res := Search(recipes, "Italian Dinner")
		assert.Equal(t, []string{"R1"}, ids(res.Recipes))
		assert.Len(t, res.Tokens, 2)
	})

	t.Run("or within a category keeps input order", func(t *testing.T) {
		res := Search(recipes, "Thai Italian")
		assert.Equal(t, []string{"R1", "R2", "R3"}, ids(res.Recipes))
	})

	t.Run("empty query is identity", func(t *testing.T) {
		res := Search(recipes, "")
		assert.Equal(t, recipes, res.Recipes)
		assert.Empty(t, res.Tokens)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := Search(recipes, "Italian Dinner").Recipes
		twice := Search(once, "Italian Dinner").Recipes
		assert.Equal(t, once, twice)
	})

	t.Run("zero matches is empty, not nil", func(t *testing.T) {
		res := Search(recipes, "Italian zzzzzz")
		assert.NotNil(t, res.Recipes)
		assert.Empty(t, res.Recipes)
	})

	t.Run("free text needs every word", func(t *testing.T) {
		got := Filter(recipes, []Token{{Type: TokenFreeText, Value: "pad thai"}})
		assert.Equal(t, []string{"R3"}, ids(got))
		got = Filter(recipes, []Token{{Type: TokenFreeText, Value: "pad lasagna"}})
		assert.Empty(t, got)
	})
}

func TestSearchSampleCatalog(t *testing.T) {
	recipes := recipe.SampleRecipes()

	res := Search(recipes, "Thai spicy")
	assert.Contains(t, ids(res.Recipes), "6")
	assert.Equal(t, []string{"6"}, ids(res.Recipes))

	// "Low" 與 "Carb" 會被模糊比對成 Lunch 與 Party 兩個餐別
	res = Search(recipes, "Italian Dinner Low Carb")
	require.Len(t, res.Tokens, 4)
	assert.Equal(t, Token{Type: TokenMealType, Value: "Lunch", Original: "Low"}, res.Tokens[2])
	assert.Equal(t, Token{Type: TokenMealType, Value: "Party", Original: "Carb"}, res.Tokens[3])
	assert.Equal(t, []string{"3"}, ids(res.Recipes))

	res = Search(recipes, "salmon")
	assert.Equal(t, []string{"2"}, ids(res.Recipes))
}

func TestVocabularyFrom(t *testing.T) {
	v := VocabularyFrom(recipe.Options())
	assert.NotContains(t, v.Cuisines, "All Cuisines")
	assert.Equal(t, "Chinese", v.Cuisines[0])
	assert.NotContains(t, v.HealthGoals, "All Health Goals")
}

func TestRemoveToken(t *testing.T) {
	query := "Italian spicy Dinner green"
	tokens := Classify(query)
	require.Len(t, tokens, 3)

	assert.Equal(t, "spicy Dinner green", RemoveToken(query, tokens[0]))
	assert.Equal(t, "Italian spicy green", RemoveToken(query, tokens[1]))
	assert.Equal(t, "Italian Dinner", RemoveToken(query, tokens[2]))
	assert.Equal(t, "", RemoveToken("", tokens[0]))
}
