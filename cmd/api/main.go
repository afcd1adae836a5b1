package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/folio-site/folio-backend/config"
	"github.com/folio-site/folio-backend/internal/bootstrap"
	"github.com/folio-site/folio-backend/internal/storage/cache"
	"github.com/folio-site/folio-backend/internal/storage/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := postgres.NewConnection(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	var (
		store cache.Cache
		rdb   *redis.Client
	)
	if cfg.Redis.URL != "" {
		rdb, err = bootstrap.OpenRedis(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rdb.Close()
		store = cache.NewRedisCache(rdb)
		log.Println("[cache] using redis")
	} else {
		store = cache.NewMemoryCache(cfg.Redis.CacheTTL)
		log.Println("[cache] using in-process memory")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Config: cfg,
		DB:     db,
		Cache:  store,
		Redis:  rdb,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s env=%s version=%s", cfg.Server.Port, cfg.App.Environment, cfg.App.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
