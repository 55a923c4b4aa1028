package recipe

import "strings"

// DefaultImageURL 來源缺少圖片時使用的預設圖片
const DefaultImageURL = "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=800"

// SampleRecipes 外部來源不可用時的內建食譜
func SampleRecipes() []Recipe {
	recipes := []Recipe{
		{
			ID:          "1",
			Name:        "Lemon Tofu Bowl",
			Cuisine:     "Vegan",
			MealType:    LabelList{"Lunch"},
			HealthGoals: LabelList{"Weight Control", "Low Carb", "High Protein"},
			ImageURL:    DefaultImageURL,
			Description: "Crispy tofu with lemon sauce and fresh vegetables. Perfect plant-based protein meal.",
			Ingredients: []string{
				"200g firm tofu, cubed",
				"1 lemon, juiced and zested",
				"2 cups broccoli florets",
				"1 tbsp olive oil",
				"2 cloves garlic, minced",
				"1 tsp ginger, grated",
				"2 tbsp soy sauce",
				"1 tbsp sesame oil",
				"Salt and pepper to taste",
			},
			Steps: []string{
				"Press tofu to remove excess water, then cube into bite-sized pieces",
				"Heat olive oil in a large pan over medium-high heat",
				"Add tofu cubes and cook until golden brown on all sides, about 8 minutes",
				"Add garlic and ginger, cook for 1 minute until fragrant",
				"Steam broccoli until tender-crisp, about 4 minutes",
				"In a small bowl, whisk together lemon juice, zest, soy sauce, and sesame oil",
				"Toss tofu and broccoli with the lemon sauce",
				"Season with salt and pepper, serve immediately",
			},
			Notes:    "Contains soy. Perfect for plant-based protein needs.",
			Calories: 300,
			Protein:  20,
			Fat:      10,
			Carbs:    15,
		},
		{
			ID:          "2",
			Name:        "Mediterranean Salmon",
			Cuisine:     "Mediterranean",
			MealType:    LabelList{"Dinner", "Special Occasion"},
			HealthGoals: LabelList{"Heart Health", "Anti-Inflammatory", "Brain Boost", "High Protein"},
			ImageURL:    "https://images.pexels.com/photos/1639562/pexels-photo-1639562.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description: "Baked salmon with olives, tomatoes, and herbs. Rich in omega-3 fatty acids.",
			Ingredients: []string{
				"4 salmon fillets (6oz each)",
				"1/4 cup olive oil",
				"2 lemons, sliced",
				"1 cup cherry tomatoes",
				"1/2 cup kalamata olives",
				"1 red onion, sliced",
				"2 tbsp fresh oregano",
				"3 cloves garlic, minced",
				"Salt and black pepper",
			},
			Steps: []string{
				"Preheat oven to 400°F (200°C)",
				"Place salmon fillets in a baking dish",
				"Drizzle with olive oil and season with salt and pepper",
				"Arrange lemon slices, tomatoes, olives, and onion around salmon",
				"Sprinkle with garlic and oregano",
				"Bake for 15-18 minutes until salmon flakes easily",
				"Let rest for 5 minutes before serving",
				"Garnish with fresh herbs and serve with vegetables",
			},
			Notes:    "Rich in omega-3 fatty acids. Contains fish.",
			Calories: 420,
			Protein:  35,
			Fat:      22,
			Carbs:    12,
		},
		{
			ID:          "3",
			Name:        "Italian Caprese Salad",
			Cuisine:     "Italian",
			MealType:    LabelList{"Lunch", "Appetizer"},
			HealthGoals: LabelList{"Heart Health", "Mediterranean Diet", "Low Carb"},
			ImageURL:    "https://images.pexels.com/photos/1116558/pexels-photo-1116558.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description: "Fresh mozzarella, tomatoes, and basil with balsamic glaze. A classic Italian appetizer.",
			Ingredients: []string{
				"3 large ripe tomatoes",
				"8oz fresh mozzarella",
				"1/4 cup fresh basil leaves",
				"3 tbsp extra virgin olive oil",
				"2 tbsp balsamic glaze",
				"Sea salt to taste",
				"Freshly cracked black pepper",
			},
			Steps: []string{
				"Slice tomatoes and mozzarella into 1/4-inch thick rounds",
				"Arrange alternating slices on a platter",
				"Tuck fresh basil leaves between slices",
				"Drizzle with extra virgin olive oil and balsamic glaze",
				"Season with sea salt and freshly cracked black pepper",
				"Let stand for 10 minutes before serving to allow flavors to meld",
			},
			Notes:    "Use the ripest tomatoes and highest quality mozzarella for best results.",
			Calories: 280,
			Protein:  18,
			Fat:      20,
			Carbs:    8,
		},
		{
			ID:          "4",
			Name:        "Korean Bibimbap",
			Cuisine:     "Korean",
			MealType:    LabelList{"Dinner", "Lunch"},
			HealthGoals: LabelList{"Balanced Nutrition", "High Fiber", "Immune Support"},
			ImageURL:    "https://images.pexels.com/photos/4958792/pexels-photo-4958792.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description: "Mixed rice bowl with vegetables, meat, and gochujang sauce. A nutritious Korean comfort food.",
			Ingredients: []string{
				"2 cups cooked white rice",
				"200g beef bulgogi",
				"1 cup spinach, blanched",
				"1 carrot, julienned",
				"1 cup shiitake mushrooms",
				"2 eggs",
				"2 tbsp gochujang",
				"1 tbsp sesame oil",
				"2 cloves garlic, minced",
				"Soy sauce to taste",
			},
			Steps: []string{
				"Cook rice according to package directions",
				"Prepare vegetables by blanching spinach, julienning carrots, and sautéing mushrooms separately",
				"Cook beef with soy sauce and garlic",
				"Fry eggs sunny-side up",
				"Arrange rice in bowls, top with vegetables and beef in sections",
				"Place fried egg on top",
				"Serve with gochujang sauce on the side",
			},
			Notes:    "Mix everything together before eating. Adjust gochujang to taste.",
			Calories: 520,
			Protein:  28,
			Fat:      15,
			Carbs:    65,
		},
		{
			ID:          "5",
			Name:        "Quinoa Power Bowl",
			Cuisine:     "Healthy",
			MealType:    LabelList{"Breakfast", "Lunch"},
			HealthGoals: LabelList{"High Protein", "High Fiber", "Superfood", "Weight Control"},
			ImageURL:    "https://images.pexels.com/photos/1640774/pexels-photo-1640774.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description: "Nutritious quinoa bowl with avocado, seeds, and fresh greens. Packed with superfoods.",
			Ingredients: []string{
				"1 cup cooked quinoa",
				"2 cups baby kale",
				"1 avocado, sliced",
				"1 cup cherry tomatoes, halved",
				"2 tbsp pumpkin seeds",
				"1 tbsp hemp hearts",
				"1/4 cup feta cheese",
				"2 tbsp lemon juice",
				"3 tbsp olive oil",
				"Salt and pepper to taste",
			},
			Steps: []string{
				"Cook quinoa according to package directions and let cool",
				"Massage kale with lemon juice and olive oil",
				"Arrange quinoa in bowls, top with massaged kale",
				"Add sliced avocado and cherry tomatoes",
				"Sprinkle with pumpkin seeds, hemp hearts, and feta cheese",
				"Drizzle with lemon vinaigrette",
			},
			Notes:    "Great source of complete protein and healthy fats.",
			Calories: 380,
			Protein:  15,
			Fat:      22,
			Carbs:    35,
		},
		{
			ID:          "6",
			Name:        "Thai Green Curry",
			Cuisine:     "Thai",
			MealType:    LabelList{"Dinner"},
			HealthGoals: LabelList{"Anti-Inflammatory", "Immune Support", "Digestive Health"},
			ImageURL:    "https://images.pexels.com/photos/2474658/pexels-photo-2474658.jpeg?auto=compress&cs=tinysrgb&w=800",
			Description: "Spicy coconut curry with vegetables and herbs. Aromatic and flavorful Thai classic.",
			Ingredients: []string{
				"2 tbsp green curry paste",
				"400ml coconut milk",
				"300g chicken breast, sliced",
				"1 eggplant, cubed",
				"1 bell pepper, sliced",
				"100g green beans",
				"2 tbsp fish sauce",
				"1 tbsp palm sugar",
				"Thai basil leaves",
				"2 tbsp vegetable oil",
			},
			Steps: []string{
				"Heat oil in a large pan and sauté green curry paste for 1 minute",
				"Add thick coconut milk and simmer until oil separates",
				"Add chicken and cook until done",
				"Add remaining coconut milk, vegetables, and seasonings",
				"Simmer until vegetables are tender",
				"Garnish with Thai basil and serve with jasmine rice",
			},
			Notes:    "Adjust curry paste amount for desired spice level.",
			Calories: 450,
			Protein:  25,
			Fat:      28,
			Carbs:    20,
		},
	}

	for i := range recipes {
		recipes[i].Instructions = JoinSteps(recipes[i].Steps)
	}
	return recipes
}

// JoinSteps 將步驟串成一段說明文字
func JoinSteps(steps []string) string {
	if len(steps) == 0 {
		return ""
	}
	return strings.Join(steps, ". ") + "."
}
