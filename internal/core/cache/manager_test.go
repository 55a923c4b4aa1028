package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatro/internal/infrastructure/config"
	"eatro/internal/pkg/common"
)

func newTestManager(t *testing.T, maxSize int) (*Manager, *time.Time) {
	t.Helper()
	m := NewManager(config.CacheConfig{Enabled: true, MaxSize: maxSize, TTL: time.Minute})
	require.NotNil(t, m)
	t.Cleanup(func() { _ = m.Close() })

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	return m, &now
}

func TestManagerGetSet(t *testing.T) {
	m, now := newTestManager(t, 10)

	_, err := m.Get("thai", "v1")
	assert.True(t, errors.Is(err, common.ErrCacheMiss))

	require.NoError(t, m.Set("Thai  Spicy", "v1", `{"recipes":[]}`))

	got, err := m.Get("thai spicy", "v1")
	require.NoError(t, err)
	assert.Equal(t, `{"recipes":[]}`, got)

	// 版本不同視為不同條目
	_, err = m.Get("thai spicy", "v2")
	assert.Error(t, err)

	*now = now.Add(2 * time.Minute)
	_, err = m.Get("thai spicy", "v1")
	assert.Error(t, err)

	st := m.GetStats()
	assert.Equal(t, int64(1), st.Hits)
	assert.Equal(t, int64(3), st.Misses)
	assert.Equal(t, int64(1), st.Evictions)
	assert.Equal(t, 0, st.Size)
}

func TestManagerEvictsLRU(t *testing.T) {
	m, _ := newTestManager(t, 2)

	require.NoError(t, m.Set("a", "v", "A"))
	require.NoError(t, m.Set("b", "v", "B"))
	_, err := m.Get("a", "v")
	require.NoError(t, err)

	require.NoError(t, m.Set("c", "v", "C"))

	_, err = m.Get("b", "v")
	assert.Error(t, err)
	_, err = m.Get("a", "v")
	assert.NoError(t, err)
	_, err = m.Get("c", "v")
	assert.NoError(t, err)
	assert.Equal(t, 2, m.GetStats().Size)
}

func TestNilManager(t *testing.T) {
	m := NewManager(config.CacheConfig{Enabled: false})
	assert.Nil(t, m)

	_, err := m.Get("x", "v")
	assert.Error(t, err)
	assert.NoError(t, m.Set("x", "v", "y"))
	assert.Equal(t, Stats{}, m.GetStats())
	m.Clear()
	assert.NoError(t, m.Close())
}

func TestGenerateKey(t *testing.T) {
	assert.Equal(t, GenerateKey("Thai spicy", "1"), GenerateKey("Thai spicy", "1"))
	assert.NotEqual(t, GenerateKey("Thai spicy", "1"), GenerateKey("thai SPICY", "1"))
	assert.NotEqual(t, GenerateKey("Thai spicy", "1"), GenerateKey("Thai  spicy", "1"))
	assert.NotEqual(t, GenerateKey("thai", "1"), GenerateKey("thai", "2"))
}
