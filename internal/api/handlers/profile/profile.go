package profile

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eatro/internal/core/profile"
	"eatro/internal/core/recipe"
	"eatro/internal/pkg/common"
)

// RecipeSource 取得目前的食譜目錄
type RecipeSource interface {
	Get(ctx context.Context, forceRefresh bool) ([]recipe.Recipe, time.Duration, error)
}

// Handler 收藏與偏好處理器
type Handler struct {
	store   profile.Store
	catalog RecipeSource
}

// NewHandler 創建處理器
func NewHandler(store profile.Store, catalog RecipeSource) *Handler {
	return &Handler{store: store, catalog: catalog}
}

// FavoritesResponse 收藏清單
type FavoritesResponse struct {
	IDs     []string        `json:"ids"`
	Recipes []recipe.Recipe `json:"recipes"`
}

// ToggleResponse 切換收藏結果
type ToggleResponse struct {
	RecipeID string `json:"recipe_id"`
	Favorite bool   `json:"favorite"`
}

// HandleFavorites 列出收藏；目錄無法取得時只回傳 ID
func (h *Handler) HandleFavorites(c *gin.Context) {
	ids, err := h.store.Favorites(c.Request.Context(), common.UserID(c))
	if err != nil {
		common.WriteError(c, common.ErrProfileStore.Wrap(err))
		return
	}

	resp := FavoritesResponse{IDs: ids, Recipes: []recipe.Recipe{}}
	recipes, _, err := h.catalog.Get(c.Request.Context(), false)
	if err != nil {
		common.LogWarn("收藏清單無法對應食譜", zap.Error(err))
		c.JSON(http.StatusOK, resp)
		return
	}
	for _, id := range ids {
		// 已下架的食譜略過
		if r, ok := recipe.FindByID(recipes, id); ok {
			resp.Recipes = append(resp.Recipes, r)
		}
	}
	c.JSON(http.StatusOK, resp)
}

// HandleToggleFavorite 切換指定食譜的收藏狀態
func (h *Handler) HandleToggleFavorite(c *gin.Context) {
	id := c.Param("id")

	recipes, _, err := h.catalog.Get(c.Request.Context(), false)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	if _, ok := recipe.FindByID(recipes, id); !ok {
		common.WriteError(c, common.ErrRecipeNotFound)
		return
	}

	favorite, err := h.store.ToggleFavorite(c.Request.Context(), common.UserID(c), id)
	if err != nil {
		common.WriteError(c, common.ErrProfileStore.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, ToggleResponse{RecipeID: id, Favorite: favorite})
}

// HandleGetPreferences 取得偏好
func (h *Handler) HandleGetPreferences(c *gin.Context) {
	prefs, err := h.store.Preferences(c.Request.Context(), common.UserID(c))
	if err != nil {
		common.WriteError(c, common.ErrProfileStore.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, prefs.Normalize())
}

// HandleSavePreferences 以請求內容整筆取代偏好
func (h *Handler) HandleSavePreferences(c *gin.Context) {
	var prefs recipe.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		common.WriteError(c, common.ErrInvalidRequest.Wrap(err))
		return
	}
	prefs = prefs.Normalize()

	if err := h.store.SavePreferences(c.Request.Context(), common.UserID(c), prefs); err != nil {
		common.WriteError(c, common.ErrProfileStore.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// HandleDelete 刪除使用者的所有資料
func (h *Handler) HandleDelete(c *gin.Context) {
	userID := common.UserID(c)
	if err := h.store.Delete(c.Request.Context(), userID); err != nil {
		common.WriteError(c, common.ErrProfileStore.Wrap(err))
		return
	}
	common.LogInfo("使用者資料已刪除", zap.String("user", userID))
	c.Status(http.StatusNoContent)
}
