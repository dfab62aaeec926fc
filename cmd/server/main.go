package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"giftdash/docs" // swagger docs
	"giftdash/internal/cache"
	"giftdash/internal/config"
	"giftdash/internal/db"
	"giftdash/internal/errors"
	"giftdash/internal/handler"
	"giftdash/internal/logger"
	"giftdash/internal/repository"
	"giftdash/internal/router"
	"giftdash/internal/service"
)

// @title GiftCard Lifecycle Dashboard API
// @version 1.0
// @description Read-only views over gift cards and their lifecycle events: filtered and sorted card table, risk scores, map markers and per-card timelines.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	src, err := newSource(cfg)
	if err != nil {
		zl.Fatal("record source init", zap.Error(err))
	}

	store, err := repository.Load(ctx, src)
	if err != nil {
		zl.Fatal("load records", zap.String("source", cfg.DataSource), zap.Error(err))
	}
	zl.Info("records loaded",
		zap.String("source", cfg.DataSource),
		zap.Int("cards", len(store.Cards())),
		zap.Int("events", len(store.Events())),
		zap.String("version", store.Version()),
	)

	var viewCache service.ViewCache
	if cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, zl); cacheClient != nil {
		if err := cacheClient.Ping(ctx); err != nil {
			zl.Warn("redis unreachable, views are computed on every request", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		defer cacheClient.Close()
		viewCache = cacheClient
	}

	dashboardService := service.NewDashboardService(store, viewCache, service.Options{
		CacheTTL: cfg.CacheTTLDuration(),
		MapsKey:  cfg.AzureMapsKey,
	}, zl)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, zl, dashboardHandler)

	zl.Info("swagger documentation available", zap.String("url", swaggerURL(cfg)))

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		zl.Fatal("server start", zap.Error(err))
	}
}

// newSource picks the record source named by DATA_SOURCE.
func newSource(cfg *config.Config) (repository.Source, error) {
	switch cfg.DataSource {
	case config.SourceFixtures:
		return repository.NewFixtureSource(cfg.CardsFile, cfg.EventsFile), nil
	case config.SourceMySQL:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(gormDB, os.Getenv("RESET_DB") == "true"); err != nil {
			return nil, err
		}
		return repository.NewMySQLSource(
			repository.NewGiftCardRepository(gormDB),
			repository.NewGiftCardEventRepository(gormDB),
		), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownDataSource, cfg.DataSource)
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
