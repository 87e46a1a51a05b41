package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/danielhkuo/star-atlas/cliparse"
	"github.com/danielhkuo/star-atlas/db"
	"github.com/danielhkuo/star-atlas/render"
	"github.com/danielhkuo/star-atlas/router"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger.With("run_id", uuid.NewString()))

	// Ctrl-C cancels in-flight reports
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	dbConn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		return 1
	}
	defer dbConn.Close()

	// Create schema (tables, reference rows, views)
	if err := db.CreateSchema(ctx, dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		return 1
	}
	slog.Debug("Database schema ready", "type", cfg.DatabaseType)

	r := router.NewRouter(dbConn, cfg)

	results, err := r.Resolve(ctx, cfg.Report)
	if err != nil {
		slog.Error("reports failed", "report", cfg.Report, "error", err, "available", r.Names())
		render.WriteError(os.Stdout, cfg.Format, err)
		return 1
	}

	if err := render.Write(os.Stdout, cfg.Format, results); err != nil {
		slog.Error("failed to write output", "error", err)
		return 1
	}

	return 0
}
