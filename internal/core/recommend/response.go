package recommend

import (
	"fmt"
	"strings"

	"eatro/internal/core/recipe"
)

var apologies = []string{
	"I couldn't find exact matches, but let me suggest some popular healthy options!",
	"No perfect matches, but here are some nutritious recipes you might enjoy:",
	"I don't have exactly what you're looking for, but these healthy alternatives might work:",
	"Let me show you some similar healthy recipes that could be perfect for you!",
}

// 沒有特定條件時的預設回覆
var genericTemplates = []func(count int) string{
	func(n int) string {
		return fmt.Sprintf("I found %d amazing recipe%s that should be perfect for you:", n, plural(n))
	},
	func(n int) string {
		return fmt.Sprintf("Here %s %d delicious recipe%s I think you'll love:", be(n), n, plural(n))
	},
	func(n int) string {
		return fmt.Sprintf("Perfect! I have %d wonderful recipe%s to recommend:", n, plural(n))
	},
	func(n int) string {
		return fmt.Sprintf("Great question! Here %s %d fantastic recipe%s for you:", be(n), n, plural(n))
	},
}

// FriendlyResponse 依擷取到的條件產生回覆
// 優先順序：熱量 > 排除 > 菜系 > 健康目標 > 餐別 > 包含食材 > 隨機預設
func FriendlyResponse(count int, pq ParsedQuery, rnd Rand) string {
	if count == 0 {
		return apologies[rnd.Intn(len(apologies))]
	}

	switch {
	case pq.MaxCalories != nil:
		return fmt.Sprintf("Perfect! I found %d delicious recipe%s under %d calories for you:",
			count, plural(count), *pq.MaxCalories)
	case len(pq.ExcludeIngredients) > 0:
		return fmt.Sprintf("Great news! Here %s %d tasty recipe%s without %s:",
			be(count), count, plural(count), pq.ExcludeIngredients[0])
	case len(pq.Cuisines) > 0:
		return fmt.Sprintf("Wonderful choice! I found %d amazing %s recipe%s for you:",
			count, pq.Cuisines[0], plural(count))
	case len(pq.HealthGoals) > 0:
		return fmt.Sprintf("Excellent! Here %s %d recipe%s perfect for %s:",
			be(count), count, plural(count), pq.HealthGoals[0])
	case len(pq.MealTypes) > 0:
		return fmt.Sprintf("Perfect timing! I have %d fantastic %s recipe%s for you:",
			count, pq.MealTypes[0], plural(count))
	case len(pq.IncludeIngredients) > 0:
		return fmt.Sprintf("Great choice! Here %s %d delicious recipe%s featuring %s:",
			be(count), count, plural(count), pq.IncludeIngredients[0])
	}

	return genericTemplates[rnd.Intn(len(genericTemplates))](count)
}

// InspireMessage Inspire me 的隨機鼓勵訊息
func InspireMessage(r recipe.Recipe, rnd Rand) string {
	messages := []string{
		fmt.Sprintf("I think you'd love this %s! It's a wonderful %s dish.", r.Name, strings.ToLower(r.Cuisine)),
		fmt.Sprintf("Let me inspire you with %s - it's one of my favorites for healthy eating!", r.Name),
	}
	if goal := r.HealthGoals.First(); goal != "" {
		goal = strings.ToLower(goal)
		messages = append(messages,
			fmt.Sprintf("How about trying this %s today? It's perfect for %s!", r.Name, goal),
			fmt.Sprintf("Why not try %s? It's delicious and supports %s.", r.Name, goal),
		)
	}
	if meal := r.MealType.First(); meal != "" {
		messages = append(messages,
			fmt.Sprintf("Here's something special: %s. Great for %s and so nutritious!", r.Name, strings.ToLower(meal)))
	}
	return messages[rnd.Intn(len(messages))]
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

func be(n int) string {
	if n > 1 {
		return "are"
	}
	return "is"
}
