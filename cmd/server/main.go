package main

import (
	"context"
	"errors"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/svpcet/campus-compass/internal/adapters/filewatcher"
	"github.com/svpcet/campus-compass/internal/adapters/gemini"
	"github.com/svpcet/campus-compass/internal/adapters/loader"
	"github.com/svpcet/campus-compass/internal/adapters/locationstore"
	"github.com/svpcet/campus-compass/internal/adapters/sessionstore"
	"github.com/svpcet/campus-compass/internal/config"
	"github.com/svpcet/campus-compass/internal/domain/usecases"
	"github.com/svpcet/campus-compass/internal/infrastructure/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if err := cfg.RequireAPIKey(); err != nil {
		log.Fatal(err)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := locationstore.NewSQLiteStore(cfg.DataPath)
	if err != nil {
		logger.Fatal("opening location store", zap.Error(err))
	}
	defer store.Close()

	model, err := gemini.New(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatal("creating Gemini model", zap.Error(err))
	}

	sessions := sessionstore.NewMemoryStore()
	navigate := usecases.NewNavigateUseCase(store, model, sessions)

	// Re-seed the location store whenever the seed file changes.
	seed := usecases.NewSeedUseCase(loader.NewJSONLoader(), store)
	watcher, err := filewatcher.NewFSNotifyWatcher()
	if err != nil {
		logger.Fatal("creating file watcher", zap.Error(err))
	}
	defer watcher.Stop()

	go func() {
		err := seed.Run(ctx, watcher, cfg.LocationsFile, func(count int, err error) {
			if err != nil {
				logger.Warn("seed file reload failed, keeping previous data", zap.Error(err))
				return
			}
			logger.Info("location store re-seeded", zap.Int("count", count))
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("seed file watch stopped", zap.Error(err))
		}
	}()

	server := http.NewServer(navigate, logger, cfg.Addr)
	if err := server.Start(ctx); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	var logger *zap.Logger
	var err error
	if level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	return logger
}
