package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"options-dashboard/internal/infra/memory"
	"options-dashboard/internal/infrastructure/config"
	"options-dashboard/internal/infrastructure/dataset"
	"options-dashboard/internal/infrastructure/db"
	"options-dashboard/internal/infrastructure/logging"
	"options-dashboard/internal/infrastructure/persistence/postgres"
	httpapi "options-dashboard/internal/interface/http"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadFromFile(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: load config failed: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Logging)
	logger.Infof("configuration loaded (HTTP_ADDR=%s, DATASET_SOURCE=%s)", cfg.HTTP.Addr, cfg.Dataset.Source)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.DB)
	switch {
	case err != nil && cfg.Dataset.Source == config.SourcePostgres:
		logger.Fatalf("database connection failed: %v", err)
	case err != nil:
		logger.Warnf("database connection failed, health check will report it: %v", err)
	case pool == nil:
		logger.Info("no DB_DSN provided; serving from file dataset only")
	default:
		defer pool.Close()
		logger.Info("database connected successfully")
	}

	loader, err := newLoader(cfg, pool)
	if err != nil {
		logger.Fatalf("select dataset source: %v", err)
	}
	store, warnings, err := memory.Load(ctx, loader)
	if err != nil {
		logger.Fatalf("load dataset: %v", err)
	}
	for _, w := range warnings {
		logger.Warnf("dataset: %s", w)
	}
	info := store.Info()
	logger.WithField("source", info.Source).
		WithField("opportunities", info.Opportunities).
		WithField("generated_at", info.GeneratedAt).
		Info("dataset loaded")

	apiServer := httpapi.NewServer(cfg, store, pool, logger)
	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: apiServer.Handler(),
	}

	go func() {
		logger.Infof("starting HTTP server on %s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server stopped: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("error shutting down server: %v", err)
		return
	}
	logger.Info("server gracefully stopped")
}

// newLoader 依設定選擇資料來源；postgres 來源需要可用的連線。
func newLoader(cfg config.Config, pool *sql.DB) (dataset.Loader, error) {
	switch cfg.Dataset.Source {
	case config.SourcePostgres:
		if pool == nil {
			return nil, errors.New("dataset source postgres requires db.dsn")
		}
		return postgres.NewSnapshotRepo(pool), nil
	case config.SourceFile, "":
		return dataset.NewFileSource(cfg.Dataset.Path), nil
	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}
}
