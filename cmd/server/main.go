package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/obvius1/Location-Search-Game/internal/config"
	"github.com/obvius1/Location-Search-Game/internal/database"
	"github.com/obvius1/Location-Search-Game/internal/dataset"
	"github.com/obvius1/Location-Search-Game/internal/game"
	"github.com/obvius1/Location-Search-Game/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	store, err := server.NewDocStore(ctx, db)
	if err != nil {
		return fmt.Errorf("initializing game store: %w", err)
	}
	admin, err := server.NewAdminStore(ctx, db)
	if err != nil {
		return fmt.Errorf("initializing admin store: %w", err)
	}
	if err := admin.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("bootstrapping admin: %w", err)
	}

	// --- Dataset & deck ---
	ds := dataset.Ghent()
	if cfg.DataDir != "" {
		ds, err = dataset.LoadDir(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("loading dataset from %s: %w", cfg.DataDir, err)
		}
	}
	for _, warn := range ds.Validate() {
		logger.Warn("dataset issue", "error", warn)
	}
	logger.Info("dataset loaded", "name", ds.Name, "radius_m", ds.RadiusM)

	deck := game.GentDeck()

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.Deps{
		DB:      db,
		Store:   store,
		Admin:   admin,
		Dataset: ds,
		Deck:    deck,
		SPADir:  cfg.SPADir,
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
