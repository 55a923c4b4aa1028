package recipe

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Recipe 食譜
// 從外部來源載入後即視為不可變
type Recipe struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Cuisine      string    `json:"cuisine"`
	MealType     LabelList `json:"meal_type"`
	HealthGoals  LabelList `json:"health_goals"`
	ImageURL     string    `json:"image_url"`
	Description  string    `json:"description"`
	Instructions string    `json:"instructions"`
	Ingredients  []string  `json:"ingredients"`
	Steps        []string  `json:"steps"`
	Notes        string    `json:"notes,omitempty"`
	Calories     float64   `json:"calories"`
	Protein      float64   `json:"protein"`
	Fat          float64   `json:"fat"`
	Carbs        float64   `json:"carbs"`
}

// LabelList 分類標籤序列
// 舊資料可能只有單一字串，在解析時即轉成單元素序列
type LabelList []string

// UnmarshalJSON 接受字串或字串陣列
func (l *LabelList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = LabelList{}
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var labels []string
		if err := json.Unmarshal(data, &labels); err != nil {
			return fmt.Errorf("invalid label list: %w", err)
		}
		*l = NewLabelList(labels...)
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("invalid label: %w", err)
	}
	*l = NewLabelList(single)
	return nil
}

// NewLabelList 去除空白與空字串後建立標籤序列
func NewLabelList(labels ...string) LabelList {
	out := make(LabelList, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label != "" {
			out = append(out, label)
		}
	}
	return out
}

// Contains 標籤完全相符
func (l LabelList) Contains(label string) bool {
	for _, v := range l {
		if v == label {
			return true
		}
	}
	return false
}

// First 第一個標籤，沒有時回傳空字串
func (l LabelList) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// Normalize 收斂資料邊界：營養數值不得為負，序列不為 nil
func (r Recipe) Normalize() Recipe {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.Cuisine = strings.TrimSpace(r.Cuisine)
	r.MealType = NewLabelList(r.MealType...)
	r.HealthGoals = NewLabelList(r.HealthGoals...)
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	if r.Steps == nil {
		r.Steps = []string{}
	}
	r.Calories = nonNegative(r.Calories)
	r.Protein = nonNegative(r.Protein)
	r.Fat = nonNegative(r.Fat)
	r.Carbs = nonNegative(r.Carbs)
	return r
}

// SearchText 名稱、描述與食材合併後的小寫文字，供全文比對
func (r Recipe) SearchText() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	sb.WriteString(" ")
	sb.WriteString(r.Description)
	sb.WriteString(" ")
	sb.WriteString(strings.Join(r.Ingredients, " "))
	return strings.ToLower(sb.String())
}

// Preferences 使用者偏好
type Preferences struct {
	HealthGoals         []string `json:"health_goals"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	FavoriteCuisines    []string `json:"favorite_cuisines"`
	MealPreferences     []string `json:"meal_preferences"`
}

// Normalize 確保所有序列都不是 nil，方便序列化
func (p Preferences) Normalize() Preferences {
	if p.HealthGoals == nil {
		p.HealthGoals = []string{}
	}
	if p.DietaryRestrictions == nil {
		p.DietaryRestrictions = []string{}
	}
	if p.FavoriteCuisines == nil {
		p.FavoriteCuisines = []string{}
	}
	if p.MealPreferences == nil {
		p.MealPreferences = []string{}
	}
	return p
}

// IsEmpty 沒有任何可用於篩選的偏好
func (p Preferences) IsEmpty() bool {
	return len(p.HealthGoals) == 0 && len(p.FavoriteCuisines) == 0
}

// FindByID 依 ID 查找食譜
func FindByID(recipes []Recipe, id string) (Recipe, bool) {
	for _, r := range recipes {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
