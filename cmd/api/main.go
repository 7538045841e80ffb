package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"preference-service/config"
	_ "preference-service/docs" // Swagger docs
	"preference-service/internal/httpserver"
	"preference-service/internal/inventory"
	"preference-service/pkg/daypart"
	"preference-service/pkg/log"
)

// @title       Preference Service API
// @description Resolves giveaway shirt colors and display modes from explicit preferences or computed defaults.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting preference service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Time-of-day context for display mode defaults
	clock, err := daypart.NewClock(daypart.ClockConfig{
		Timezone:       cfg.Display.Timezone,
		DayStartHour:   cfg.Display.DayStartHour,
		NightStartHour: cfg.Display.NightStartHour,
	})
	if err != nil {
		logger.Error(ctx, "Invalid display configuration: ", err)
		return
	}
	logger.Infof(ctx, "Display clock: %s, day %02d:00-%02d:00", clock.Location(), cfg.Display.DayStartHour, cfg.Display.NightStartHour)

	// 4. Inventory defaults
	strategy, err := inventory.ParseStrategy(cfg.Inventory.DefaultStrategy)
	if err != nil {
		logger.Error(ctx, "Invalid inventory configuration: ", err)
		return
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		RateLimitPerMin:    cfg.RateLimit.RequestsPerMin,
		InventoryCacheSize: cfg.Inventory.CacheSize,
		DefaultStrategy:    strategy,
		Clock:              clock,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
