package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatro/internal/core/recipe"
	"eatro/internal/infrastructure/config"
	"eatro/internal/pkg/common"
)

const sheetBody = `[
  {
    "Name": " Miso Soup ",
    "Cuisine": "Japanese",
    "Meal Type": "Dinner, Lunch",
    "Health Goals": "Gut Health; Lower Sodium",
    "Image": "",
    "Notes": "Warm and light.",
    "Ingredients": "2 cups dashi\n\n1 tbsp miso paste\n",
    "Steps": "1. Heat the dashi. 2. Whisk in miso.\n3. Serve hot.",
    "Calories": 120,
    "Protein": "8g",
    "Fat": "",
    "Carbs": "abc"
  },
  {
    "Name": "Plain Rice",
    "Cuisine": "Chinese",
    "Meal Type": "Staple Food",
    "Calories": "210.5"
  }
]`

func newSheetServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSheetClientFetch(t *testing.T) {
	srv := newSheetServer(t, http.StatusOK, sheetBody)
	client := NewSheetClient(config.CatalogConfig{URL: srv.URL, Timeout: 5 * time.Second})

	recipes, err := client.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	soup := recipes[0]
	assert.Equal(t, "1", soup.ID)
	assert.Equal(t, "Miso Soup", soup.Name)
	assert.Equal(t, recipe.LabelList{"Dinner", "Lunch"}, soup.MealType)
	assert.Equal(t, recipe.LabelList{"Gut Health", "Lower Sodium"}, soup.HealthGoals)
	assert.Equal(t, recipe.DefaultImageURL, soup.ImageURL)
	assert.Equal(t, "Warm and light.", soup.Description)
	assert.Equal(t, soup.Description, soup.Notes)
	assert.Equal(t, []string{"2 cups dashi", "1 tbsp miso paste"}, soup.Ingredients)
	assert.Equal(t, []string{"Heat the dashi", "Whisk in miso", "Serve hot"}, soup.Steps)
	assert.Equal(t, "1. Heat the dashi. 2. Whisk in miso. 3. Serve hot.", soup.Instructions)
	assert.Equal(t, 120.0, soup.Calories)
	assert.Equal(t, 8.0, soup.Protein)
	assert.Equal(t, 0.0, soup.Fat)
	assert.Equal(t, 0.0, soup.Carbs)

	rice := recipes[1]
	assert.Equal(t, "2", rice.ID)
	assert.Equal(t, 210.5, rice.Calories)
	assert.Empty(t, rice.Steps)
	assert.NotNil(t, rice.Ingredients)
}

func TestSheetClientErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `oops`},
		{"not an array", http.StatusOK, `{"error":"quota"}`},
		{"empty array", http.StatusOK, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newSheetServer(t, tt.status, tt.body)
			client := NewSheetClient(config.CatalogConfig{URL: srv.URL, Timeout: time.Second})
			_, err := client.Fetch(context.Background())
			assert.Error(t, err)
		})
	}

	srv := newSheetServer(t, http.StatusOK, `[]`)
	_, err := NewSheetClient(config.CatalogConfig{URL: srv.URL, Timeout: time.Second}).Fetch(context.Background())
	assert.True(t, errors.Is(err, common.ErrCatalogEmpty))
}

func TestSplitSteps(t *testing.T) {
	assert.Equal(t, []string{"Mix", "Bake for 12 minutes"}, splitSteps("1. Mix. 2. Bake for 12 minutes."))
	assert.Equal(t, []string{"Intro text", "Chop"}, splitSteps("Intro text 1. Chop"))
	assert.Equal(t, []string{"Just one step"}, splitSteps("Just one step."))
	assert.Empty(t, splitSteps("   "))
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 12.5, parseNumber("12.5 kcal"))
	assert.Equal(t, 0.0, parseNumber("kcal 12"))
	assert.Equal(t, 3.0, parseNumber(3.0))
	assert.Equal(t, 0.0, parseNumber(nil))
}
