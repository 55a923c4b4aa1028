package recommend

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedQuery 自然語言查詢的解析結果
type ParsedQuery struct {
	Cuisines           []string `json:"cuisines"`
	MealTypes          []string `json:"meal_types"`
	HealthGoals        []string `json:"health_goals"`
	FreeText           []string `json:"free_text"`
	MaxCalories        *int     `json:"max_calories,omitempty"`
	ExcludeIngredients []string `json:"exclude_ingredients"`
	IncludeIngredients []string `json:"include_ingredients"`
}

var (
	calorieRe     = regexp.MustCompile(`(?:under|below|less than)\s+(\d+)\s+calories?`)
	wordRe        = regexp.MustCompile(`\w+|[,.!?;:]`)
	plainWordRe   = regexp.MustCompile(`^\w+$`)
	numericWordRe = regexp.MustCompile(`^\d+$`)
)

var exclusionTriggers = map[string]struct{}{"without": {}, "no": {}, "avoid": {}}

var listJoiners = map[string]struct{}{",": {}, "or": {}, "and": {}}

// ParseQuery 從句子擷取熱量上限、排除與包含的食材，以及各分類
// 各規則彼此獨立，同一個字可同時貢獻多個結果
func ParseQuery(query string) ParsedQuery {
	lower := strings.ToLower(query)
	pq := ParsedQuery{
		Cuisines:           []string{},
		MealTypes:          []string{},
		HealthGoals:        []string{},
		FreeText:           []string{},
		ExcludeIngredients: []string{},
		IncludeIngredients: []string{},
	}

	if m := calorieRe.FindStringSubmatch(lower); m != nil {
		// 數字過大無法解析時視為沒有限制
		if n, err := strconv.Atoi(m[1]); err == nil {
			pq.MaxCalories = &n
		}
	}

	pq.ExcludeIngredients = extractExclusions(lower)
	pq.Cuisines = matchGroups(cuisineSynonyms, lower)
	pq.MealTypes = matchGroups(mealTypeSynonyms, lower)
	pq.HealthGoals = matchGroups(healthGoalSynonyms, lower)

	for _, ing := range ingredientKeywords {
		if strings.Contains(lower, ing) && !excluded(pq.ExcludeIngredients, ing) {
			pq.IncludeIngredients = append(pq.IncludeIngredients, ing)
		}
	}

	pq.FreeText = residualWords(query, pq)
	return pq
}

// extractExclusions 擷取觸發詞後的字，以及用逗號、or、and 接續的字
// 例如 "without nuts or beans" 會得到 nuts 與 beans 兩項
func extractExclusions(lower string) []string {
	out := []string{}
	tokens := wordRe.FindAllString(lower, -1)

	for i, tok := range tokens {
		if _, ok := exclusionTriggers[tok]; !ok {
			continue
		}

		j := i + 1
		for j < len(tokens) && isWord(tokens[j]) {
			if phrase := tokens[j]; containsKeyword(phrase) {
				out = append(out, phrase)
			}

			// 跳過連接詞，", or" 也算一個連接
			k := j + 1
			joined := false
			for k < len(tokens) {
				if _, ok := listJoiners[tokens[k]]; !ok {
					break
				}
				joined = true
				k++
			}
			if !joined {
				break
			}
			j = k
		}
	}
	return out
}

// isWord 一般字詞，標點與觸發詞除外
func isWord(tok string) bool {
	if _, ok := exclusionTriggers[tok]; ok {
		return false
	}
	if _, ok := listJoiners[tok]; ok {
		return false
	}
	return plainWordRe.MatchString(tok)
}

func containsKeyword(phrase string) bool {
	for _, ing := range ingredientKeywords {
		if strings.Contains(phrase, ing) {
			return true
		}
	}
	return false
}

func excluded(exclusions []string, ingredient string) bool {
	for _, ex := range exclusions {
		if strings.Contains(ex, ingredient) {
			return true
		}
	}
	return false
}

func matchGroups(groups []synonymGroup, lower string) []string {
	out := []string{}
	for _, g := range groups {
		for _, syn := range g.synonyms {
			if strings.Contains(lower, syn) {
				out = append(out, g.key)
				break
			}
		}
	}
	return out
}

func residualWords(query string, pq ParsedQuery) []string {
	matched := make(map[string]struct{})
	add := func(words ...string) {
		for _, w := range words {
			matched[w] = struct{}{}
		}
	}

	for _, key := range pq.Cuisines {
		add(synonymsOf(cuisineSynonyms, key)...)
	}
	for _, key := range pq.MealTypes {
		add(synonymsOf(mealTypeSynonyms, key)...)
	}
	for _, key := range pq.HealthGoals {
		add(synonymsOf(healthGoalSynonyms, key)...)
	}
	add(pq.IncludeIngredients...)
	for _, ex := range pq.ExcludeIngredients {
		add(strings.Fields(ex)...)
	}
	add(triggerWords...)

	out := []string{}
	for _, w := range strings.Fields(query) {
		if len([]rune(w)) <= 2 || numericWordRe.MatchString(w) {
			continue
		}
		if _, ok := matched[strings.ToLower(w)]; ok {
			continue
		}
		out = append(out, w)
	}
	return out
}
