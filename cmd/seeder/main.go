// Command seeder upserts the exercise, food and plan catalog from a YAML
// dataset. Rows are matched by title, so reruns are safe.
//
// Usage:
//
//	seeder [-catalog catalog.yaml] [-phase foods,plans] [-batch 200] [-dry-run]
//
// SEEDER_* variables supply the defaults for the flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/heartmarshall/calorie-backend/internal/adapter/postgres"
	"github.com/heartmarshall/calorie-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/calorie-backend/internal/adapter/postgres/plan"
	"github.com/heartmarshall/calorie-backend/internal/app"
	"github.com/heartmarshall/calorie-backend/internal/app/seeder"
	"github.com/heartmarshall/calorie-backend/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := seeder.LoadConfig()
	if err != nil {
		log.Printf("seeder: %v", err)
		return 1
	}

	flag.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "YAML dataset to load")
	flag.IntVar(&cfg.BatchSize, "batch", cfg.BatchSize, "rows per upsert statement")
	flag.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "parse and validate the dataset only")
	phaseList := flag.String("phase", "", "comma-separated phases to run (default: all)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Print(err)
		return 1
	}

	appCfg, err := config.Load()
	if err != nil {
		log.Printf("seeder: %v", err)
		return 1
	}
	logger := app.NewLogger(appCfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return 1
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, catalog.New(pool), plan.New(pool), cfg)
	if err := pipeline.Run(ctx, splitPhases(*phaseList)); err != nil {
		logger.Error("seeding aborted", slog.String("error", err.Error()))
		return 1
	}

	for name, r := range pipeline.Results() {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
		}
		fmt.Printf("%-10s upserted=%-6d skipped=%-6d %s\n", name, r.Upserted, r.Skipped, status)
	}
	if pipeline.HasErrors() {
		return 1
	}
	return 0
}

func splitPhases(s string) []string {
	var phases []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			phases = append(phases, p)
		}
	}
	return phases
}
