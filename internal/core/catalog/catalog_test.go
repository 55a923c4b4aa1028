package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatro/internal/core/recipe"
	"eatro/internal/infrastructure/config"
	"eatro/internal/pkg/common"
)

type fakeSource struct {
	mu      sync.Mutex
	recipes []recipe.Recipe
	err     error
	calls   int
}

func (f *fakeSource) Fetch(ctx context.Context) ([]recipe.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.recipes, nil
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCatalog(src Source, fallback bool, snaps SnapshotStore) (*Catalog, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	c := NewCatalog(src, config.CatalogConfig{TTL: 2 * time.Minute, Fallback: fallback}, snaps)
	c.now = clock.Now
	return c, clock
}

func oneRecipe(name string) []recipe.Recipe {
	return []recipe.Recipe{{ID: "1", Name: name, Cuisine: "Thai", Calories: -5}}
}

func TestCatalogCachesWithinTTL(t *testing.T) {
	src := &fakeSource{recipes: oneRecipe("Curry")}
	c, clock := newTestCatalog(src, true, nil)
	ctx := context.Background()

	got, age, err := c.Get(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), age)
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].Calories)
	assert.NotNil(t, got[0].Ingredients)

	clock.Advance(90 * time.Second)
	_, age, err = c.Get(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, age)
	assert.Equal(t, 1, src.calls)

	clock.Advance(31 * time.Second)
	_, _, err = c.Get(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)

	_, _, err = c.Get(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 3, src.calls)
}

func TestCatalogInvalidate(t *testing.T) {
	src := &fakeSource{recipes: oneRecipe("Curry")}
	c, _ := newTestCatalog(src, true, nil)
	ctx := context.Background()

	_, err := c.Recipes(ctx)
	require.NoError(t, err)
	assert.True(t, c.Status().Loaded)

	c.Invalidate()
	st := c.Status()
	assert.False(t, st.Loaded)
	assert.Equal(t, 0, st.Count)

	_, err = c.Recipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestCatalogFallback(t *testing.T) {
	src := &fakeSource{err: errors.New("boom")}
	c, _ := newTestCatalog(src, true, nil)

	got, _, err := c.Get(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, got, 6)

	st := c.Status()
	assert.True(t, st.Fallback)
	assert.Equal(t, "boom", st.LastError)
}

func TestCatalogKeepsStaleDataOnFailure(t *testing.T) {
	src := &fakeSource{recipes: oneRecipe("Curry")}
	c, clock := newTestCatalog(src, true, nil)
	ctx := context.Background()

	_, _, err := c.Get(ctx, false)
	require.NoError(t, err)

	src.err = errors.New("down")
	clock.Advance(5 * time.Minute)

	got, age, err := c.Get(ctx, false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Curry", got[0].Name)
	assert.Equal(t, 5*time.Minute, age)
	assert.False(t, c.Status().Fallback)
}

func TestCatalogWaitsOneTTLBeforeRetryingFailedSource(t *testing.T) {
	src := &fakeSource{recipes: oneRecipe("Curry")}
	c, clock := newTestCatalog(src, true, nil)
	ctx := context.Background()

	_, _, err := c.Get(ctx, false)
	require.NoError(t, err)

	src.err = errors.New("down")
	clock.Advance(3 * time.Minute)

	for i := 0; i < 5; i++ {
		got, _, err := c.Get(ctx, false)
		require.NoError(t, err)
		require.Len(t, got, 1)
		clock.Advance(10 * time.Second)
	}
	assert.Equal(t, 2, src.calls)
	assert.NotEmpty(t, c.Status().LastError)

	// 重試期限過後再抓一次，來源恢復即更新
	src.err = nil
	src.recipes = oneRecipe("Laksa")
	clock.Advance(2 * time.Minute)

	got, age, err := c.Get(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "Laksa", got[0].Name)
	assert.Equal(t, time.Duration(0), age)
	assert.Equal(t, 3, src.calls)
	assert.Empty(t, c.Status().LastError)
}

func TestCatalogForceRefreshIgnoresRetryWindow(t *testing.T) {
	src := &fakeSource{recipes: oneRecipe("Curry")}
	c, clock := newTestCatalog(src, true, nil)
	ctx := context.Background()

	_, _, err := c.Get(ctx, false)
	require.NoError(t, err)

	src.err = errors.New("down")
	clock.Advance(3 * time.Minute)
	_, _, err = c.Get(ctx, false)
	require.NoError(t, err)

	_, _, err = c.Get(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 3, src.calls)
}

func TestCatalogCurrent(t *testing.T) {
	src := &fakeSource{recipes: oneRecipe("Curry")}
	c, clock := newTestCatalog(src, true, nil)
	ctx := context.Background()

	first, err := c.Current(ctx)
	require.NoError(t, err)
	require.Len(t, first.Recipes, 1)
	assert.Equal(t, clock.Now(), first.FetchedAt)
	assert.False(t, first.Fallback)

	clock.Advance(30 * time.Second)
	again, err := c.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.FetchedAt, again.FetchedAt)
	assert.Equal(t, 1, src.calls)

	_, _, err = c.Get(ctx, true)
	require.NoError(t, err)
	refreshed, err := c.Current(ctx)
	require.NoError(t, err)
	assert.True(t, refreshed.FetchedAt.After(first.FetchedAt))
}

func TestCatalogWithoutFallback(t *testing.T) {
	src := &fakeSource{err: errors.New("down")}
	c, _ := newTestCatalog(src, false, nil)

	_, _, err := c.Get(context.Background(), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrCatalogUnavailable))
}

func TestCatalogSharedSnapshot(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	snaps := NewRedisSnapshotStore(client, 2*time.Minute)
	ctx := context.Background()

	first := &fakeSource{recipes: oneRecipe("Curry")}
	a, clock := newTestCatalog(first, true, snaps)
	_, _, err := a.Get(ctx, false)
	require.NoError(t, err)
	assert.True(t, mr.Exists(SnapshotKey))

	// 第二個實例直接使用快照，不再抓取
	second := &fakeSource{recipes: oneRecipe("Other")}
	b, clockB := newTestCatalog(second, true, snaps)
	clockB.t = clock.t.Add(30 * time.Second)

	got, age, err := b.Get(ctx, false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Curry", got[0].Name)
	assert.Equal(t, 30*time.Second, age)
	assert.Equal(t, 0, second.calls)

	// 強制刷新會略過快照
	got, _, err = b.Get(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "Other", got[0].Name)
	assert.Equal(t, 1, second.calls)
}

func TestRedisSnapshotStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisSnapshotStore(client, time.Minute)
	ctx := context.Background()

	_, ok, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, Snapshot{Recipes: recipe.SampleRecipes(), FetchedAt: now}))

	snap, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, snap.Recipes, 6)
	assert.True(t, now.Equal(snap.FetchedAt))

	mr.FastForward(2 * time.Minute)
	_, ok, err = store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	mr.Set(SnapshotKey, "not json")
	_, _, err = store.Load(ctx)
	assert.Error(t, err)
}
