package search

import "eatro/internal/core/recipe"

// Vocabulary 三組固定分類詞彙，依宣告順序比對
type Vocabulary struct {
	Cuisines    []string `json:"cuisines"`
	MealTypes   []string `json:"meal_types"`
	HealthGoals []string `json:"health_goals"`
}

var defaultCuisines = []string{
	"Chinese", "Japanese", "Korean", "Vietnamese", "Thai", "Italian", "French",
	"Mexican", "American", "Mediterranean", "Global Fusion", "Vegetarian", "Vegan", "Healthy",
}

var defaultMealTypes = []string{
	"Breakfast", "Lunch", "Dinner", "Romantic", "Birthday", "Party",
	"Special Occasion", "Dessert", "Staple Food", "Appetizer",
}

var defaultHealthGoals = []string{
	"Cardiovascular Wellness", "Blood Sugar Friendly", "Cholesterol Friendly",
	"Kidney Friendly", "Liver Friendly", "Digestive Health", "Gut Health",
	"Healthy Weight", "Lower Sodium", "Lower Carb", "Low Carb", "High Fiber",
	"Immune Wellness", "Senior-Friendly", "Iron Rich", "Higher in Protein",
	"High Protein", "Bone Health", "Brain Boost", "Supports Thyroid Health",
	"Supports Lung Health", "Skin & Hair Health", "Heart Health", "Anti-Inflammatory",
	"Weight Control", "Mediterranean Diet", "Balanced Nutrition", "Immune Support",
	"Superfood",
}

// DefaultVocabulary 智慧搜尋使用的詞彙
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Cuisines:    append([]string(nil), defaultCuisines...),
		MealTypes:   append([]string(nil), defaultMealTypes...),
		HealthGoals: append([]string(nil), defaultHealthGoals...),
	}
}

// VocabularyFrom 由下拉選項建立詞彙，移除「All …」哨兵值
func VocabularyFrom(opts recipe.FacetOptions) Vocabulary {
	return Vocabulary{
		Cuisines:    recipe.WithoutAllOption(opts.Cuisines),
		MealTypes:   recipe.WithoutAllOption(opts.MealTypes),
		HealthGoals: recipe.WithoutAllOption(opts.HealthGoals),
	}
}
