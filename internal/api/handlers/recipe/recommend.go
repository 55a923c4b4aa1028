package recipe

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eatro/internal/core/recipe"
	"eatro/internal/core/recommend"
	"eatro/internal/pkg/common"
)

// Recommender 推薦器介面
type Recommender interface {
	Recommend(recipes []recipe.Recipe, query string, prefs *recipe.Preferences) recommend.Recommendation
	Inspire(recipes []recipe.Recipe) recommend.Inspiration
	Today(recipes []recipe.Recipe, prefs recipe.Preferences) []recipe.Recipe
}

// PreferenceReader 讀取使用者偏好
type PreferenceReader interface {
	Preferences(ctx context.Context, userID string) (recipe.Preferences, error)
}

// RecommendRequest 自然語言推薦請求
type RecommendRequest struct {
	Prompt      string              `json:"prompt"`
	Preferences *recipe.Preferences `json:"preferences,omitempty"` // 未提供時使用已儲存的偏好
}

// TodayResponse 今日推薦
type TodayResponse struct {
	Recipes []recipe.Recipe `json:"recipes"`
}

// HandleRecommend 解析自然語言需求並推薦食譜
func (h *Handler) HandleRecommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.WriteError(c, common.ErrInvalidRequest.Wrap(err))
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		common.WriteError(c, common.NewValidationError("prompt 不可為空"))
		return
	}

	recipes, _, err := h.catalog.Get(c.Request.Context(), false)
	if err != nil {
		common.WriteError(c, err)
		return
	}

	prefs := req.Preferences
	if prefs == nil {
		prefs = h.storedPreferences(c)
	}

	rec := h.recommender.Recommend(recipes, req.Prompt, prefs)
	common.LogDebug("推薦完成",
		zap.String("prompt", req.Prompt),
		zap.Int("matches", rec.TotalMatches),
		zap.String("request_id", common.RequestID(c)),
	)
	c.JSON(http.StatusOK, rec)
}

// HandleInspire 隨機挑一道有健康目標的食譜
func (h *Handler) HandleInspire(c *gin.Context) {
	recipes, _, err := h.catalog.Get(c.Request.Context(), false)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.recommender.Inspire(recipes))
}

// HandleToday 依使用者偏好挑選今日推薦
func (h *Handler) HandleToday(c *gin.Context) {
	recipes, _, err := h.catalog.Get(c.Request.Context(), false)
	if err != nil {
		common.WriteError(c, err)
		return
	}

	var prefs recipe.Preferences
	if stored := h.storedPreferences(c); stored != nil {
		prefs = *stored
	}
	c.JSON(http.StatusOK, TodayResponse{Recipes: h.recommender.Today(recipes, prefs)})
}

// storedPreferences 讀取失敗時不套用偏好
func (h *Handler) storedPreferences(c *gin.Context) *recipe.Preferences {
	if h.profiles == nil {
		return nil
	}
	prefs, err := h.profiles.Preferences(c.Request.Context(), common.UserID(c))
	if err != nil {
		common.LogWarn("讀取使用者偏好失敗", zap.Error(err), zap.String("user", common.UserID(c)))
		return nil
	}
	return &prefs
}
