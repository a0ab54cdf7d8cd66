package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/baxromumarov/recipe-hunter/internal/config"
	"github.com/baxromumarov/recipe-hunter/internal/core"
	"github.com/baxromumarov/recipe-hunter/internal/scraper"
	"github.com/baxromumarov/recipe-hunter/internal/store"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (defaults are used when empty)")
	sites := flag.String("site", "", "Comma-separated sites to run (default: every enabled site)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var dbStore *store.Store
	if cfg.Database.URL != "" {
		dbStore, err = store.NewStore(cfg.Database.URL)
		if err != nil {
			slog.Error("failed to connect to store", "error", err)
			os.Exit(1)
		}
		defer dbStore.Close()
	}

	plans, err := core.BuildPlans(ctx, cfg, scraper.DefaultRegistry(), splitSites(*sites), logger)
	if err != nil {
		slog.Error("failed to build scrapers", "error", err)
		os.Exit(1)
	}

	runner := core.NewRunner(logger)
	total := 0
	for _, plan := range plans {
		sinks, err := core.OpenSinks(plan.Settings, dbStore)
		if err != nil {
			slog.Error("failed to open output", "site", plan.Settings.Name, "error", err)
			continue
		}
		slog.Info("will save recipes", "site", plan.Settings.Name, "path", plan.Settings.Output)
		n, err := runner.Run(ctx, plan.Job, sinks...)
		if err != nil {
			slog.Error("run finished with errors", "site", plan.Settings.Name, "error", err)
		}
		total += n
	}

	slog.Info("done", "recipes", total)
}

func splitSites(raw string) []string {
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
