package profile

import (
	"context"

	"eatro/internal/core/recipe"
)

// Store 使用者收藏與偏好的儲存
type Store interface {
	Favorites(ctx context.Context, userID string) ([]string, error)
	// ToggleFavorite 切換收藏，回傳切換後是否為收藏
	ToggleFavorite(ctx context.Context, userID, recipeID string) (bool, error)
	Preferences(ctx context.Context, userID string) (recipe.Preferences, error)
	SavePreferences(ctx context.Context, userID string, prefs recipe.Preferences) error
	// Delete 刪除帳號時清除所有資料
	Delete(ctx context.Context, userID string) error
}
