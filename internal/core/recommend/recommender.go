package recommend

import (
	"sync"

	"eatro/internal/core/recipe"
)

// MaxResults 每次推薦最多顯示的食譜數
const MaxResults = 4

// inspireGoals Inspire me 挑選的健康目標
var inspireGoals = []string{"Heart Health", "High Protein", "Anti-Inflammatory", "Balanced Nutrition", "Superfood"}

// Recommendation 推薦結果
type Recommendation struct {
	Query        ParsedQuery     `json:"parsed_query"`
	Message      string          `json:"message"`
	Recipes      []recipe.Recipe `json:"recipes"`
	TotalMatches int             `json:"total_matches"`
}

// Inspiration Inspire me 結果
type Inspiration struct {
	Recipe  *recipe.Recipe `json:"recipe,omitempty"`
	Message string         `json:"message"`
}

// Recommender 規則式推薦，隨機來源以互斥鎖保護
type Recommender struct {
	mu  sync.Mutex
	rnd Rand
}

// NewRecommender 建立推薦器；rnd 為 nil 時使用以時間為種子的來源
func NewRecommender(rnd Rand) *Recommender {
	if rnd == nil {
		rnd = NewRand()
	}
	return &Recommender{rnd: rnd}
}

// Recommend 解析查詢、篩選食譜並隨機挑出最多 4 筆
func (r *Recommender) Recommend(recipes []recipe.Recipe, query string, prefs *recipe.Preferences) Recommendation {
	pq := ParseQuery(query)
	matched := ApplyPreferences(FilterRecipes(recipes, pq), prefs)

	r.mu.Lock()
	defer r.mu.Unlock()

	return Recommendation{
		Query:        pq,
		Message:      FriendlyResponse(len(matched), pq, r.rnd),
		Recipes:      r.pick(matched, MaxResults),
		TotalMatches: len(matched),
	}
}

// Inspire 從具特定健康目標的食譜中隨機挑一道
func (r *Recommender) Inspire(recipes []recipe.Recipe) Inspiration {
	candidates := make([]recipe.Recipe, 0, len(recipes))
	for _, rec := range recipes {
		for _, goal := range inspireGoals {
			if rec.HealthGoals.Contains(goal) {
				candidates = append(candidates, rec)
				break
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(candidates) == 0 {
		return Inspiration{Message: apologies[r.rnd.Intn(len(apologies))]}
	}
	chosen := candidates[r.rnd.Intn(len(candidates))]
	return Inspiration{Recipe: &chosen, Message: InspireMessage(chosen, r.rnd)}
}

// Today 依偏好的健康目標與喜愛菜系依序篩選後，隨機挑出最多 4 筆
func (r *Recommender) Today(recipes []recipe.Recipe, prefs recipe.Preferences) []recipe.Recipe {
	filtered := recipes
	if len(prefs.HealthGoals) > 0 {
		filtered = keep(filtered, func(rec recipe.Recipe) bool {
			for _, g := range prefs.HealthGoals {
				if rec.HealthGoals.Contains(g) {
					return true
				}
			}
			return false
		})
	}
	if len(prefs.FavoriteCuisines) > 0 {
		filtered = keep(filtered, func(rec recipe.Recipe) bool {
			for _, c := range prefs.FavoriteCuisines {
				if rec.Cuisine == c {
					return true
				}
			}
			return false
		})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pick(filtered, MaxResults)
}

// pick 洗牌後取前 n 筆，不修改輸入；呼叫端需持有鎖
func (r *Recommender) pick(recipes []recipe.Recipe, n int) []recipe.Recipe {
	shuffled := make([]recipe.Recipe, len(recipes))
	copy(shuffled, recipes)
	r.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > n {
		shuffled = shuffled[:n]
	}
	return shuffled
}

func keep(recipes []recipe.Recipe, pred func(recipe.Recipe) bool) []recipe.Recipe {
	out := make([]recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
