package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ghostcity-rp/companion/internal/auth"
	"github.com/ghostcity-rp/companion/internal/cases"
	"github.com/ghostcity-rp/companion/internal/config"
	"github.com/ghostcity-rp/companion/internal/database"
	"github.com/ghostcity-rp/companion/internal/database/postgres"
	"github.com/ghostcity-rp/companion/internal/inventory"
	"github.com/ghostcity-rp/companion/internal/news"
	"github.com/ghostcity-rp/companion/internal/server"
)

const shutdownGracePeriod = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(), database.PoolSettings{})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Repositories
	lootRepo := postgres.NewLootRepository(pool, cfg.StoreTimeout)
	caseStore := postgres.NewCaseStore(pool, cfg.StoreTimeout)
	playerRepo := postgres.NewPlayerRepository(pool, cfg.Users, cfg.StoreTimeout)
	engineRepo := postgres.NewEngineRepository(pool, lootRepo, cfg.Users, cfg.StoreTimeout)
	inventoryRepo := postgres.NewInventoryRepository(pool, playerRepo, lootRepo, cfg.Users, cfg.StoreTimeout)
	guardRepo := postgres.NewIPGuardRepository(pool, cfg.StoreTimeout)
	newsRepo := postgres.NewNewsRepository(pool, cfg.StoreTimeout)

	// Services
	caseService := cases.NewService(engineRepo, caseStore, cfg.CatalogCap, cfg.LegacySlotEncoding)
	inventoryService := inventory.NewService(inventoryRepo, cfg.SellReturnRate, cfg.LegacySlotEncoding)
	authService := auth.NewService(playerRepo, guardRepo, playerRepo, cfg.GuardMaxAttempts, cfg.GuardBlockDuration)
	newsService := news.NewService(newsRepo, playerRepo)

	srv := server.NewServer(cfg.Port, pool, caseService, inventoryService, authService, newsService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
