package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/clock"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/config"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/database"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/policy"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/server"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	db, err := database.Open()
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	documents := store.New(db, cfg.StoreLatency, models.Schemas())

	ctx := context.Background()
	if err := services.SeedMenus(ctx, documents); err != nil {
		slog.Error("Failed to seed menus", "error", err)
		os.Exit(1)
	}
	if cfg.SeedDemoData {
		if err := services.SeedDemoAccounts(ctx, documents); err != nil {
			slog.Error("Failed to seed demo accounts", "error", err)
			os.Exit(1)
		}
	}

	var clk clock.Clock
	var simulated *clock.Simulated
	if cfg.ClockMode == config.ClockModeSimulated {
		simulated = clock.NewSimulated(time.Now())
		clk = simulated
	} else {
		clk = clock.System{}
	}

	resolver := policy.NewWorkPlanResolver(documents)
	menuService := services.NewMenuService(documents)
	scheduler := policy.NewReminderScheduler(documents, resolver, menuService)
	go scheduler.Run(ctx, clk)

	srv := server.New(documents, cfg, clk, simulated, scheduler)

	slog.Info("Starting canteen portal", "port", cfg.Port, "clock_mode", cfg.ClockMode)
	if err := srv.Start(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
