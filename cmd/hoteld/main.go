package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ShreyasBadgujar/hotel-booking/config"
	"github.com/ShreyasBadgujar/hotel-booking/internal/api"
	"github.com/ShreyasBadgujar/hotel-booking/internal/db"
	"github.com/ShreyasBadgujar/hotel-booking/internal/seed"
	"github.com/ShreyasBadgujar/hotel-booking/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "hotel-booking ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Seed.Enabled {
		if err := seed.Load(ctx, gormDB, cfg.Seed.Path); err != nil {
			logger.Fatalf("failed to load seed data from %s: %v", cfg.Seed.Path, err)
		}
		logger.Printf("seed data loaded from %s", cfg.Seed.Path)
	}

	appStore := store.NewGormStore(gormDB)
	logger.Println("data store initialized")

	router := api.NewRouter(appStore, cfg)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
