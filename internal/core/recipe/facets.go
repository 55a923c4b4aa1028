package recipe

import "strings"

// FacetFilter 下拉式篩選條件
type FacetFilter struct {
	SearchTerm  string   `json:"search_term"`
	Cuisines    []string `json:"cuisines"`
	MealTypes   []string `json:"meal_types"`
	HealthGoals []string `json:"health_goals"`
}

// IsEmpty 沒有任何篩選條件
func (f FacetFilter) IsEmpty() bool {
	return strings.TrimSpace(f.SearchTerm) == "" &&
		len(WithoutAllOption(f.Cuisines)) == 0 &&
		len(WithoutAllOption(f.MealTypes)) == 0 &&
		len(WithoutAllOption(f.HealthGoals)) == 0
}

// FilterByFacets 以精確標籤比對篩選食譜
// 搜尋詞比對名稱或任一食材；各分類內為 OR，分類之間為 AND
func FilterByFacets(recipes []Recipe, f FacetFilter) []Recipe {
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))
	cuisines := WithoutAllOption(f.Cuisines)
	mealTypes := WithoutAllOption(f.MealTypes)
	healthGoals := WithoutAllOption(f.HealthGoals)

	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if term != "" && !matchesTerm(r, term) {
			continue
		}
		if len(cuisines) > 0 && !containsString(cuisines, r.Cuisine) {
			continue
		}
		if len(mealTypes) > 0 && !anyLabel(r.MealType, mealTypes) {
			continue
		}
		if len(healthGoals) > 0 && !anyLabel(r.HealthGoals, healthGoals) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesTerm(r Recipe, term string) bool {
	if strings.Contains(strings.ToLower(r.Name), term) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), term) {
			return true
		}
	}
	return false
}

func anyLabel(labels LabelList, wanted []string) bool {
	for _, w := range wanted {
		if labels.Contains(w) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
