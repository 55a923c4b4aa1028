package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"eatro/internal/core/recipe"

	"github.com/go-redis/redis/v8"
)

// RedisStore 以 Redis 保存收藏（List）與偏好（JSON 字串）
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 創建 Redis 儲存
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func favoritesKey(userID string) string {
	return fmt.Sprintf("profile:%s:favorites", userID)
}

func preferencesKey(userID string) string {
	return fmt.Sprintf("profile:%s:preferences", userID)
}

func (s *RedisStore) Favorites(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.client.LRange(ctx, favoritesKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}
	return ids, nil
}

// ToggleFavorite 先嘗試移除，沒有可移除的才加入
func (s *RedisStore) ToggleFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	key := favoritesKey(userID)

	removed, err := s.client.LRem(ctx, key, 0, recipeID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	if removed > 0 {
		return false, nil
	}

	if err := s.client.RPush(ctx, key, recipeID).Err(); err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	return true, nil
}

func (s *RedisStore) Preferences(ctx context.Context, userID string) (recipe.Preferences, error) {
	data, err := s.client.Get(ctx, preferencesKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return recipe.Preferences{}.Normalize(), nil
		}
		return recipe.Preferences{}, fmt.Errorf("failed to get preferences: %w", err)
	}

	var prefs recipe.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return recipe.Preferences{}, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	return prefs.Normalize(), nil
}

func (s *RedisStore) SavePreferences(ctx context.Context, userID string, prefs recipe.Preferences) error {
	data, err := json.Marshal(prefs.Normalize())
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := s.client.Set(ctx, preferencesKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set preferences: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, favoritesKey(userID), preferencesKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
