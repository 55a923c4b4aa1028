package api

import (
	"time"

	"eatro/internal/api/handlers/health"
	profileHandler "eatro/internal/api/handlers/profile"
	recipeHandler "eatro/internal/api/handlers/recipe"
	"eatro/internal/api/middleware"
	"eatro/internal/core/cache"
	"eatro/internal/core/profile"
	"eatro/internal/infrastructure/config"
	"eatro/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 請求體大小上限預設值 (1MB)
const defaultMaxBodySize = 1 << 20

// Dependencies 路由需要的服務
type Dependencies struct {
	Config      *config.Config
	Catalog     recipeHandler.CatalogReader
	Profiles    profile.Store
	Cache       *cache.Manager
	Recommender recipeHandler.Recommender
}

// SetupRouter 設置路由
func SetupRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	maxBodySize := cfg.Server.MaxBodyBytes
	if maxBodySize <= 0 {
		maxBodySize = defaultMaxBodySize
	}
	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// 注入共用服務
	router.Use(func(c *gin.Context) {
		c.Set(health.ConfigKey, cfg)
		c.Set(health.CatalogKey, deps.Catalog)
		c.Set(health.CacheKey, deps.Cache)
		c.Next()
	})

	router.NoRoute(func(c *gin.Context) {
		common.WriteError(c, common.ErrNotFound)
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	recipes := recipeHandler.NewHandler(deps.Catalog, deps.Cache, deps.Recommender, deps.Profiles, cfg.Search)
	profiles := profileHandler.NewHandler(deps.Profiles, deps.Catalog)

	// API 路由組
	api := router.Group("/api/v1")
	api.Use(middleware.Deduplication(cfg.DedupWindow))
	{
		api.GET("/options", recipes.HandleOptions)

		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.GET("", recipes.HandleList)
			recipeGroup.GET("/:id", recipes.HandleGet)
			recipeGroup.POST("/refresh", recipes.HandleRefresh)
		}

		searchGroup := api.Group("/search")
		{
			searchGroup.GET("", recipes.HandleSearch)
			searchGroup.POST("/remove-filter", recipes.HandleRemoveFilter)
		}

		recommendGroup := api.Group("/recommendations")
		{
			recommendGroup.POST("", recipes.HandleRecommend)
			recommendGroup.GET("/inspire", recipes.HandleInspire)
			recommendGroup.GET("/today", recipes.HandleToday)
		}

		api.GET("/favorites", profiles.HandleFavorites)
		api.POST("/favorites/:id/toggle", profiles.HandleToggleFavorite)
		api.GET("/preferences", profiles.HandleGetPreferences)
		api.PUT("/preferences", profiles.HandleSavePreferences)
		api.DELETE("/profile", profiles.HandleDelete)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("cache_enabled", deps.Cache != nil),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Duration("request_timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router
}
