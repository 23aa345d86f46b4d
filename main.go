package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avast/retry-go/v4"
	"gopkg.in/natefinch/lumberjack.v2"

	"watchdeck/api"
	"watchdeck/config"
	"watchdeck/handlers"
	"watchdeck/services/tmdb"
	"watchdeck/services/watchlist"
	"watchdeck/utils"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("[main] invalid configuration: %v", err)
	}

	if cfg.LogFile != "" {
		log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    20, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		}))
	}

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("[main] failed to open watchlist store: %v", err)
	}
	defer store.Close()

	// The store may come up after us in containerized deployments; probe a
	// few times before giving up.
	if err := retry.Do(
		func() error { return store.Ping(ctx) },
		retry.Attempts(5),
		retry.Delay(time.Second),
		retry.Context(ctx),
	); err != nil {
		log.Fatalf("[main] watchlist store unreachable: %v", err)
	}

	tmdbService := tmdb.NewService(tmdb.NewClient(cfg.TMDBBaseURL, cfg.TMDBAPIKey), cfg.CacheTTLMinutes)
	watchlistService := watchlist.NewService(store)

	router := utils.NewRouter(cfg.AllowedOrigins)
	handlers.NewMoviesHandler(tmdbService).Register(router)

	protected := router.PathPrefix("/api/watchlist").Subrouter()
	protected.Use(api.RequireUserMiddleware())
	handlers.NewWatchlistHandler(watchlistService).Register(protected)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Printf("[main] listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Printf("[main] shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] shutdown error: %v", err)
	}
}

func openStore(ctx context.Context, cfg config.Config) (watchlist.Store, error) {
	if cfg.FirestoreProject != "" {
		log.Printf("[main] using firestore watchlist store project=%s", cfg.FirestoreProject)
		return watchlist.NewFirestoreStore(ctx, cfg.FirestoreProject, cfg.FirestoreCredentials)
	}
	log.Printf("[main] using sqlite watchlist store path=%s", cfg.SQLitePath)
	return watchlist.NewSQLiteStore(cfg.SQLitePath)
}
