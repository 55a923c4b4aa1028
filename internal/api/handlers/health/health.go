package health

import (
	"net/http"
	"runtime"
	"time"

	"eatro/internal/core/cache"
	"eatro/internal/core/catalog"
	"eatro/internal/infrastructure/config"
	"eatro/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// context 中的鍵
const (
	ConfigKey  = "config"
	CatalogKey = "catalog"
	CacheKey   = "cache"
)

// StatusReporter 回報目錄狀態
type StatusReporter interface {
	Status() catalog.Status
}

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Catalog   *catalog.Status        `json:"catalog,omitempty"`
	Cache     *cache.Stats           `json:"cache,omitempty"`
}

// HealthCheck 健康檢查處理器
func HealthCheck(c *gin.Context) {
	// 獲取配置
	cfg, exists := c.Get(ConfigKey)
	if !exists {
		common.LogError("Configuration not found in context")
		common.WriteError(c, common.ErrInternalError)
		return
	}
	appConfig, ok := cfg.(*config.Config)
	if !ok {
		common.LogError("Invalid configuration type in context")
		common.WriteError(c, common.ErrInternalError)
		return
	}

	// 獲取運行時信息
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   appConfig.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	if v, exists := c.Get(CatalogKey); exists {
		reporter, _ := v.(StatusReporter)
		if reporter != nil {
			st := reporter.Status()
			response.Catalog = &st
			if !st.Loaded {
				response.Status = "degraded"
			}
		}
	}
	if v, exists := c.Get(CacheKey); exists {
		if manager, ok := v.(*cache.Manager); ok && manager != nil {
			stats := manager.GetStats()
			response.Cache = &stats
		}
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 目錄載入後才算就緒
func ReadinessCheck(c *gin.Context) {
	v, _ := c.Get(CatalogKey)
	reporter, ok := v.(StatusReporter)
	if !ok {
		common.WriteError(c, common.ErrServiceUnavailable)
		return
	}

	st := reporter.Status()
	if !st.Loaded {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"last_error": st.LastError,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"recipes":  st.Count,
		"fallback": st.Fallback,
	})
}

// LivenessCheck 存活檢查處理器
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
