package catalog

import (
	"context"
	"sync"
	"time"

	"eatro/internal/core/recipe"
	"eatro/internal/infrastructure/config"
	"eatro/internal/pkg/common"

	"go.uber.org/zap"
)

// Snapshot 某次抓取的完整目錄
type Snapshot struct {
	Recipes   []recipe.Recipe `json:"recipes"`
	FetchedAt time.Time       `json:"fetched_at"`
	Fallback  bool            `json:"fallback"`
}

// SnapshotStore 多個實例共用的目錄快照
type SnapshotStore interface {
	Load(ctx context.Context) (Snapshot, bool, error)
	Save(ctx context.Context, snap Snapshot) error
}

// Status 目錄緩存狀態
type Status struct {
	Loaded    bool      `json:"loaded"`
	Count     int       `json:"count"`
	FetchedAt time.Time `json:"fetched_at,omitempty"`
	Age       string    `json:"age"`
	Fallback  bool      `json:"fallback"`
	LastError string    `json:"last_error,omitempty"`
}

// Catalog 帶有 TTL 的食譜目錄緩存
type Catalog struct {
	source    Source
	snapshots SnapshotStore
	ttl       time.Duration
	fallback  bool
	now       func() time.Time

	mu           sync.Mutex
	recipes      []recipe.Recipe
	fetchedAt    time.Time
	fromFallback bool
	lastErr      error
	// 來源失敗後，在此之前沿用過期目錄不再重抓
	retryAfter time.Time
}

// NewCatalog 創建目錄緩存；snapshots 可為 nil
func NewCatalog(source Source, cfg config.CatalogConfig, snapshots SnapshotStore) *Catalog {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &Catalog{
		source:    source,
		snapshots: snapshots,
		ttl:       ttl,
		fallback:  cfg.Fallback,
		now:       time.Now,
	}
}

// Get 回傳目錄與其存在時間；未過期且非強制刷新時直接使用緩存
func (c *Catalog) Get(ctx context.Context, forceRefresh bool) ([]recipe.Recipe, time.Duration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	recipes, err := c.get(ctx, forceRefresh, now)
	if err != nil {
		return nil, 0, err
	}
	return recipes, now.Sub(c.fetchedAt), nil
}

// Current 與 Get 相同，但連同抓取時間一起回傳，兩者來自同一次讀取
func (c *Catalog) Current(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	recipes, err := c.get(ctx, false, c.now())
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Recipes: recipes, FetchedAt: c.fetchedAt, Fallback: c.fromFallback}, nil
}

// get 需持有鎖
func (c *Catalog) get(ctx context.Context, forceRefresh bool, now time.Time) ([]recipe.Recipe, error) {
	if !forceRefresh && c.recipes != nil && (now.Sub(c.fetchedAt) < c.ttl || now.Before(c.retryAfter)) {
		common.LogCacheHit("catalog")
		return c.recipes, nil
	}
	common.LogCacheMiss("catalog")

	if !forceRefresh && c.loadSnapshot(ctx, now) {
		return c.recipes, nil
	}

	start := time.Now()
	recipes, err := c.source.Fetch(ctx)
	common.LogCatalogFetch("sheet", len(recipes), time.Since(start), err)

	if err != nil {
		c.lastErr = err
		switch {
		case c.recipes != nil && !c.fromFallback:
			common.LogWarn("食譜來源失敗，沿用過期目錄", zap.Error(err))
			c.retryAfter = now.Add(c.ttl)
			return c.recipes, nil
		case c.fallback:
			common.LogWarn("食譜來源失敗，改用範例食譜", zap.Error(err))
			c.store(ctx, recipe.SampleRecipes(), now, true)
			return c.recipes, nil
		default:
			return nil, common.ErrCatalogUnavailable.Wrap(err)
		}
	}

	c.lastErr = nil
	normalized := make([]recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		normalized = append(normalized, r.Normalize())
	}
	c.store(ctx, normalized, now, false)
	return c.recipes, nil
}

// Recipes 取目錄但不回傳存在時間
func (c *Catalog) Recipes(ctx context.Context) ([]recipe.Recipe, error) {
	recipes, _, err := c.Get(ctx, false)
	return recipes, err
}

// Invalidate 清除記憶體緩存，下次讀取會重新抓取
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recipes = nil
	c.fetchedAt = time.Time{}
	c.fromFallback = false
	c.retryAfter = time.Time{}
	common.LogInfo("食譜目錄緩存已清除")
}

// Status 目前的緩存狀態
func (c *Catalog) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := Status{
		Loaded:   c.recipes != nil,
		Count:    len(c.recipes),
		Fallback: c.fromFallback,
		Age:      "0s",
	}
	if st.Loaded {
		st.FetchedAt = c.fetchedAt
		st.Age = c.now().Sub(c.fetchedAt).Truncate(time.Second).String()
	}
	if c.lastErr != nil {
		st.LastError = c.lastErr.Error()
	}
	return st
}

// loadSnapshot 從共用快照載入，需持有鎖
func (c *Catalog) loadSnapshot(ctx context.Context, now time.Time) bool {
	if c.snapshots == nil {
		return false
	}

	snap, ok, err := c.snapshots.Load(ctx)
	if err != nil {
		common.LogWarn("讀取目錄快照失敗", zap.Error(err))
		return false
	}
	if !ok || len(snap.Recipes) == 0 || now.Sub(snap.FetchedAt) >= c.ttl {
		return false
	}

	c.recipes = snap.Recipes
	c.fetchedAt = snap.FetchedAt
	c.fromFallback = snap.Fallback
	common.LogDebug("已從共用快照載入目錄", zap.Int("count", len(snap.Recipes)))
	return true
}

// store 更新緩存並寫入共用快照，需持有鎖
func (c *Catalog) store(ctx context.Context, recipes []recipe.Recipe, now time.Time, fallback bool) {
	c.recipes = recipes
	c.fetchedAt = now
	c.fromFallback = fallback
	c.retryAfter = time.Time{}

	if c.snapshots == nil {
		return
	}
	snap := Snapshot{Recipes: recipes, FetchedAt: now, Fallback: fallback}
	if err := c.snapshots.Save(ctx, snap); err != nil {
		common.LogWarn("寫入目錄快照失敗", zap.Error(err))
	}
}
