package recipe

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"eatro/internal/core/catalog"
	"eatro/internal/core/recipe"
)

// CatalogReader 處理器需要的目錄操作
type CatalogReader interface {
	Get(ctx context.Context, forceRefresh bool) ([]recipe.Recipe, time.Duration, error)
	Current(ctx context.Context) (catalog.Snapshot, error)
	Status() catalog.Status
	Invalidate()
}

// queryInt 讀取整數查詢參數，缺少或格式錯誤時回傳預設值
func queryInt(c *gin.Context, key string, def int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// queryList 同時接受重複參數與逗號分隔
func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// catalogVersion 目錄版本，用於區隔搜尋緩存
func catalogVersion(snap catalog.Snapshot) string {
	return strconv.FormatInt(snap.FetchedAt.UnixNano(), 36)
}
