package recipe

import "strings"

// 篩選選項的「全部」哨兵值前綴
const allOptionPrefix = "All "

// SortOption 排序選項
type SortOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FacetOptions 提供給前端下拉選單的選項
type FacetOptions struct {
	Cuisines            []string     `json:"cuisines"`
	MealTypes           []string     `json:"meal_types"`
	HealthGoals         []string     `json:"health_goals"`
	SortOptions         []SortOption `json:"sort_options"`
	DietaryRestrictions []string     `json:"dietary_restrictions"`
}

var cuisineOptions = []string{
	"All Cuisines",
	"Chinese",
	"Japanese",
	"Korean",
	"Vietnamese",
	"Thai",
	"Italian",
	"French",
	"Mexican",
	"American",
	"Mediterranean",
	"Global Fusion",
	"Vegetarian",
}

var mealTypeOptions = []string{
	"All Meal Types",
	"Breakfast",
	"Lunch",
	"Dinner",
	"Romantic",
	"Birthday",
	"Party",
	"Special Occasion",
	"Dessert",
	"Staple Food",
}

var healthGoalOptions = []string{
	"All Health Goals",
	"Cardiovascular Wellness",
	"Blood Sugar Friendly",
	"Cholesterol Friendly",
	"Kidney Friendly",
	"Liver Friendly",
	"Digestive Health",
	"Gut Health",
	"Healthy Weight",
	"Lower Sodium",
	"Lower Carb",
	"High Fiber",
	"Immune Wellness",
	"Senior-Friendly",
	"Iron Rich",
	"Higher in Protein",
	"Bone Health",
	"Brain Boost",
	"Supports Thyroid Health",
	"Supports Lung Health",
	"Skin & Hair Health",
}

var sortOptions = []SortOption{
	{Value: SortByName, Label: "Name (A-Z)"},
	{Value: SortByNewest, Label: "Newest First"},
	{Value: SortByPopularity, Label: "Most Popular"},
	{Value: SortByCaloriesLow, Label: "Lowest Calories"},
	{Value: SortByCaloriesHigh, Label: "Highest Calories"},
	{Value: SortByProteinHigh, Label: "Highest Protein"},
	{Value: SortByProteinLow, Label: "Lowest Protein"},
}

var dietaryRestrictions = []string{
	"Gluten-Free",
	"Dairy-Free",
	"Nut-Free",
	"Soy-Free",
	"Egg-Free",
	"Shellfish-Free",
	"Low-Sodium",
	"Sugar-Free",
}

// Options 回傳選項清單的複本
func Options() FacetOptions {
	return FacetOptions{
		Cuisines:            append([]string(nil), cuisineOptions...),
		MealTypes:           append([]string(nil), mealTypeOptions...),
		HealthGoals:         append([]string(nil), healthGoalOptions...),
		SortOptions:         append([]SortOption(nil), sortOptions...),
		DietaryRestrictions: append([]string(nil), dietaryRestrictions...),
	}
}

// IsAllOption 判斷是否為「All …」哨兵值
func IsAllOption(label string) bool {
	return strings.HasPrefix(strings.TrimSpace(label), allOptionPrefix)
}

// WithoutAllOption 移除哨兵值與空白項目
func WithoutAllOption(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" || IsAllOption(label) {
			continue
		}
		out = append(out, label)
	}
	return out
}
