package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/folio-site/folio-backend/config"
	"github.com/folio-site/folio-backend/internal/bootstrap"
	"github.com/folio-site/folio-backend/internal/deploy"
	"github.com/folio-site/folio-backend/internal/storage/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Deploy.HookURL == "" {
		log.Fatal("DEPLOY_HOOK_URL is not set")
	}

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: postgres.DSN(&cfg.Database)})
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	watcher := deploy.NewWatcher(
		deploy.NewChangeDetector(pool),
		deploy.NewHook(cfg.Deploy.HookURL, cfg.Deploy.HookSecret, cfg.Deploy.MinGap),
		cfg.Deploy.PollInterval,
	)
	scheduler := deploy.NewScheduler(watcher, cfg.Deploy.PollInterval)
	if err := scheduler.Start(ctx); err != nil {
		log.Fatalf("scheduler: %v", err)
	}

	<-ctx.Done()
	log.Println("[deploy] stopping")
	<-scheduler.Stop().Done()
}
