package recommend

import (
	"strings"

	"eatro/internal/core/recipe"
)

// 剩餘食譜超過此數量才套用使用者偏好
const preferenceThreshold = 3

// FilterRecipes 依解析結果篩選食譜
// 分類內任一符合、分類之間皆須符合；另需符合熱量上限與任一 freeText
func FilterRecipes(recipes []recipe.Recipe, pq ParsedQuery) []recipe.Recipe {
	out := make([]recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if matchesQuery(r, pq) {
			out = append(out, r)
		}
	}
	return out
}

// ApplyPreferences 以使用者偏好做第二層篩選
// 只有在剩餘超過 3 筆且篩選後仍有結果時才採用
func ApplyPreferences(recipes []recipe.Recipe, prefs *recipe.Preferences) []recipe.Recipe {
	if prefs == nil || len(recipes) <= preferenceThreshold {
		return recipes
	}

	narrowed := make([]recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if matchesPreferences(r, *prefs) {
			narrowed = append(narrowed, r)
		}
	}
	if len(narrowed) == 0 {
		return recipes
	}
	return narrowed
}

func matchesQuery(r recipe.Recipe, pq ParsedQuery) bool {
	if len(pq.Cuisines) > 0 && !anyContains([]string{r.Cuisine}, pq.Cuisines) {
		return false
	}
	if len(pq.MealTypes) > 0 && !anyContains(r.MealType, pq.MealTypes) {
		return false
	}
	if len(pq.HealthGoals) > 0 && !anyContains(r.HealthGoals, pq.HealthGoals) {
		return false
	}
	if pq.MaxCalories != nil && r.Calories > float64(*pq.MaxCalories) {
		return false
	}
	if len(pq.FreeText) > 0 {
		haystack := r.SearchText()
		found := false
		for _, text := range pq.FreeText {
			if strings.Contains(haystack, strings.ToLower(text)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// anyContains 任一標籤（小寫）包含任一關鍵字
func anyContains(labels []string, keys []string) bool {
	for _, key := range keys {
		k := strings.ToLower(key)
		for _, label := range labels {
			if strings.Contains(strings.ToLower(label), k) {
				return true
			}
		}
	}
	return false
}

// 空的偏好清單視為符合
func matchesPreferences(r recipe.Recipe, prefs recipe.Preferences) bool {
	goals := len(prefs.HealthGoals) == 0
	for _, g := range prefs.HealthGoals {
		if r.HealthGoals.Contains(g) {
			goals = true
			break
		}
	}

	cuisines := len(prefs.FavoriteCuisines) == 0
	for _, c := range prefs.FavoriteCuisines {
		if r.Cuisine == c {
			cuisines = true
			break
		}
	}
	return goals || cuisines
}
