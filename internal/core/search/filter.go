package search

import (
	"strings"

	"eatro/internal/core/recipe"
)

// Result 智慧搜尋結果
type Result struct {
	Recipes []recipe.Recipe `json:"recipes"`
	Tokens  []Token         `json:"tokens"`
}

// Search 以預設詞彙分類後篩選
func Search(recipes []recipe.Recipe, query string) Result {
	return defaultClassifier.Search(recipes, query)
}

// Search 分類查詢並篩選食譜
func (c *Classifier) Search(recipes []recipe.Recipe, query string) Result {
	tokens := c.Classify(query)
	return Result{Recipes: Filter(recipes, tokens), Tokens: tokens}
}

// Filter 套用 token 篩選食譜
// 同分類內任一 token 符合即可，所有出現的分類都必須符合；保留原始順序
func Filter(recipes []recipe.Recipe, tokens []Token) []recipe.Recipe {
	if len(tokens) == 0 {
		return recipes
	}

	groups := make(map[TokenType][]Token, 4)
	for _, t := range tokens {
		groups[t.Type] = append(groups[t.Type], t)
	}

	out := make([]recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if matchesAll(r, groups) {
			out = append(out, r)
		}
	}
	return out
}

func matchesAll(r recipe.Recipe, groups map[TokenType][]Token) bool {
	if ts := groups[TokenCuisine]; len(ts) > 0 && !anyToken(ts, func(t Token) bool {
		return FuzzyMatch(r.Cuisine, t.Value)
	}) {
		return false
	}

	if ts := groups[TokenMealType]; len(ts) > 0 && !anyToken(ts, func(t Token) bool {
		return anyLabelMatch(r.MealType, t.Value)
	}) {
		return false
	}

	if ts := groups[TokenHealthGoal]; len(ts) > 0 && !anyToken(ts, func(t Token) bool {
		return anyLabelMatch(r.HealthGoals, t.Value)
	}) {
		return false
	}

	if ts := groups[TokenFreeText]; len(ts) > 0 {
		haystack := r.SearchText()
		if !anyToken(ts, func(t Token) bool { return containsEveryWord(haystack, t.Value) }) {
			return false
		}
	}

	return true
}

func anyToken(tokens []Token, pred func(Token) bool) bool {
	for _, t := range tokens {
		if pred(t) {
			return true
		}
	}
	return false
}

func anyLabelMatch(labels recipe.LabelList, value string) bool {
	for _, label := range labels {
		if FuzzyMatch(label, value) {
			return true
		}
	}
	return false
}

func containsEveryWord(haystack, value string) bool {
	for _, word := range strings.Fields(strings.ToLower(value)) {
		if !strings.Contains(haystack, word) {
			return false
		}
	}
	return true
}
