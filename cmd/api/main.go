package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eatro/internal/api"
	"eatro/internal/core/cache"
	"eatro/internal/core/catalog"
	"eatro/internal/core/profile"
	"eatro/internal/core/recommend"
	"eatro/internal/infrastructure/config"
	"eatro/internal/infrastructure/store"
	"eatro/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel, cfg.LogDir); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("catalog_url", cfg.Catalog.URL),
		zap.Duration("catalog_ttl", cfg.Catalog.TTL),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.String("profile_backend", cfg.Profile.Backend),
	)

	// Redis 只在需要時連線
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = store.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			common.LogFatal("Failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
	}

	// 食譜目錄
	var snapshots catalog.SnapshotStore
	if cfg.Catalog.Snapshot && redisClient != nil {
		snapshots = catalog.NewRedisSnapshotStore(redisClient, cfg.Catalog.TTL)
	}
	recipeCatalog := catalog.NewCatalog(catalog.NewSheetClient(cfg.Catalog), cfg.Catalog, snapshots)

	// 預先載入，失敗時由請求路徑重試
	warmCtx, warmCancel := context.WithTimeout(context.Background(), cfg.Catalog.Timeout)
	if _, _, err := recipeCatalog.Get(warmCtx, false); err != nil {
		common.LogWarn("Initial catalog load failed", zap.Error(err))
	}
	warmCancel()

	// 使用者資料
	var profiles profile.Store
	switch cfg.Profile.Backend {
	case "redis":
		if redisClient == nil {
			common.LogFatal("Redis profile backend requires redis to be enabled")
		}
		profiles = profile.NewRedisStore(redisClient)
	default:
		profiles = profile.NewMemoryStore()
	}

	// 初始化搜尋快取
	cacheManager := cache.NewManager(cfg.Cache)
	// 只在快取開啟但初始化失敗時才 Fatal
	if cfg.Cache.Enabled && cacheManager == nil {
		common.LogFatal("Failed to initialize cache manager")
	}
	defer cacheManager.Close()

	// 設置路由
	router := api.SetupRouter(api.Dependencies{
		Config:      cfg,
		Catalog:     recipeCatalog,
		Profiles:    profiles,
		Cache:       cacheManager,
		Recommender: recommend.NewRecommender(nil),
	})

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
