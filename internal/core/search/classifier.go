package search

import (
	"strings"

	"eatro/internal/core/recipe"
)

// TokenType 搜尋片段的分類
type TokenType string

const (
	TokenCuisine    TokenType = "cuisine"
	TokenMealType   TokenType = "mealType"
	TokenHealthGoal TokenType = "healthGoal"
	TokenFreeText   TokenType = "freeText"
)

// Token 單一片段的分類結果
type Token struct {
	Type     TokenType `json:"type"`
	Value    string    `json:"value"`
	Original string    `json:"original"`
}

// Matcher 判斷片段是否符合標籤
type Matcher func(label, fragment string) bool

type rule struct {
	tokenType TokenType
	labels    []string
	match     Matcher
}

// Classifier 依序套用分類規則，第一個符合者勝出
type Classifier struct {
	rules []rule
}

// NewClassifier 建立分類器，規則順序為 cuisine → mealType → healthGoal
func NewClassifier(v Vocabulary) *Classifier {
	return &Classifier{
		rules: []rule{
			{tokenType: TokenCuisine, labels: recipe.WithoutAllOption(v.Cuisines), match: FuzzyMatch},
			{tokenType: TokenMealType, labels: recipe.WithoutAllOption(v.MealTypes), match: FuzzyMatch},
			{tokenType: TokenHealthGoal, labels: recipe.WithoutAllOption(v.HealthGoals), match: FuzzyMatch},
		},
	}
}

var defaultClassifier = NewClassifier(DefaultVocabulary())

// Classify 使用預設詞彙分類查詢
func Classify(query string) []Token {
	return defaultClassifier.Classify(query)
}

// Classify 將查詢切成片段並逐一分類
// 未符合任何詞彙的片段合併成單一 freeText token，放在最後
func (c *Classifier) Classify(query string) []Token {
	fragments := strings.Fields(query)
	if len(fragments) == 0 {
		return []Token{}
	}

	tokens := make([]Token, 0, len(fragments))
	var freeText []string

	for _, fragment := range fragments {
		if tok, ok := c.classifyFragment(fragment); ok {
			tokens = append(tokens, tok)
			continue
		}
		freeText = append(freeText, fragment)
	}

	if len(freeText) > 0 {
		joined := strings.Join(freeText, " ")
		tokens = append(tokens, Token{Type: TokenFreeText, Value: joined, Original: joined})
	}
	return tokens
}

func (c *Classifier) classifyFragment(fragment string) (Token, bool) {
	for _, r := range c.rules {
		for _, label := range r.labels {
			if r.match(label, fragment) {
				return Token{Type: r.tokenType, Value: label, Original: fragment}, true
			}
		}
	}
	return Token{}, false
}
