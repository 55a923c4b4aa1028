package recommend

// synonymGroup 一個標準分類及其同義詞，依宣告順序比對
type synonymGroup struct {
	key      string
	synonyms []string
}

var cuisineSynonyms = []synonymGroup{
	{"italian", []string{"italian", "italy", "pasta", "pizza"}},
	{"chinese", []string{"chinese", "china", "asian", "stir fry", "wok"}},
	{"japanese", []string{"japanese", "japan", "sushi", "ramen", "miso"}},
	{"korean", []string{"korean", "korea", "kimchi", "bulgogi", "bibimbap"}},
	{"thai", []string{"thai", "thailand", "curry", "pad thai", "coconut"}},
	{"mexican", []string{"mexican", "mexico", "taco", "burrito", "salsa", "avocado"}},
	{"mediterranean", []string{"mediterranean", "greek", "olive", "feta"}},
	{"french", []string{"french", "france", "baguette", "croissant"}},
	{"american", []string{"american", "usa", "burger", "bbq"}},
	{"vegetarian", []string{"vegetarian", "veggie", "plant based", "no meat"}},
	{"vegan", []string{"vegan", "plant based", "no dairy", "no animal"}},
	{"healthy", []string{"healthy", "nutritious", "wholesome", "clean eating"}},
}

var mealTypeSynonyms = []synonymGroup{
	{"breakfast", []string{"breakfast", "morning", "brunch"}},
	{"lunch", []string{"lunch", "midday", "lunchbox", "noon"}},
	{"dinner", []string{"dinner", "evening", "supper", "night"}},
	{"dessert", []string{"dessert", "sweet", "cake", "cookie"}},
	{"appetizer", []string{"appetizer", "starter", "snack", "finger food"}},
	{"party", []string{"party", "celebration", "gathering"}},
	{"romantic", []string{"romantic", "date night", "special"}},
	{"birthday", []string{"birthday", "celebration"}},
}

var healthGoalSynonyms = []synonymGroup{
	{"heart health", []string{"heart", "cardiovascular", "heart healthy", "heart disease"}},
	{"anti-inflammatory", []string{"anti-inflammatory", "inflammation", "inflammatory", "reduce inflammation"}},
	{"high protein", []string{"protein", "high protein", "muscle", "strength"}},
	{"low carb", []string{"low carb", "keto", "ketogenic", "no carbs", "low sugar"}},
	{"digestive health", []string{"digestive", "digestion", "gut health", "stomach", "bloating"}},
	{"weight control", []string{"weight loss", "diet", "slim", "lose weight", "healthy weight"}},
	{"immune support", []string{"immune", "immunity", "cold", "flu", "vitamin c"}},
	{"brain boost", []string{"brain", "memory", "focus", "concentration", "mental"}},
	{"bone health", []string{"bone", "calcium", "osteoporosis", "strong bones"}},
	{"balanced nutrition", []string{"balanced", "nutritious", "healthy", "wholesome"}},
}

// ingredientKeywords 可被包含或排除的食材關鍵字
var ingredientKeywords = []string{
	"salmon", "chicken", "beef", "tofu", "eggs", "cheese", "avocado", "spinach",
	"broccoli", "tomato", "garlic", "onion", "rice", "quinoa", "pasta", "bread",
	"nuts", "seeds", "beans", "lentils", "mushrooms", "peppers", "carrots",
}

// 不列入 freeText 的觸發詞
var triggerWords = []string{
	"under", "calories", "without", "no", "avoid", "below", "less", "than", "or", "and",
}

func synonymsOf(groups []synonymGroup, key string) []string {
	for _, g := range groups {
		if g.key == key {
			return g.synonyms
		}
	}
	return nil
}
