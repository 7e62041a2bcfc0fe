// Command server runs the PortfolioZ API: CRUD over the portfolio
// collections, bearer-token auth with an admin gate, and the
// publish-portfolio flow.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/portfolioz/server/internal/config"
	"github.com/portfolioz/server/internal/platform/logger"
)

func main() {
	// A missing .env is fine; configuration can come from the real
	// environment alone.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded", "port", cfg.Server.Port, "log_level", cfg.Server.LogLevel)

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
