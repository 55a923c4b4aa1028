package profile

import (
	"context"
	"sync"

	"eatro/internal/core/recipe"
)

// MemoryStore 行程內儲存，重啟後資料消失
type MemoryStore struct {
	mu          sync.RWMutex
	favorites   map[string][]string
	preferences map[string]recipe.Preferences
}

// NewMemoryStore 創建記憶體儲存
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		favorites:   make(map[string][]string),
		preferences: make(map[string]recipe.Preferences),
	}
}

func (s *MemoryStore) Favorites(ctx context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string{}, s.favorites[userID]...), nil
}

func (s *MemoryStore) ToggleFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.favorites[userID]
	for i, id := range ids {
		if id == recipeID {
			s.favorites[userID] = append(ids[:i:i], ids[i+1:]...)
			return false, nil
		}
	}
	s.favorites[userID] = append(ids, recipeID)
	return true, nil
}

func (s *MemoryStore) Preferences(ctx context.Context, userID string) (recipe.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.preferences[userID].Normalize(), nil
}

func (s *MemoryStore) SavePreferences(ctx context.Context, userID string, prefs recipe.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.preferences[userID] = prefs.Normalize()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.favorites, userID)
	delete(s.preferences, userID)
	return nil
}
