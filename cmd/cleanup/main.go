// Command cleanup removes verification codes older than the configured
// retention period. It is intended to be invoked by an external cron job,
// not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/calorie-backend/internal/adapter/postgres"
	"github.com/heartmarshall/calorie-backend/internal/adapter/postgres/verification"
	"github.com/heartmarshall/calorie-backend/internal/app"
	"github.com/heartmarshall/calorie-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	cutoff := time.Now().AddDate(0, 0, -cfg.Verification.RetentionDays)

	deleted, err := verification.New(pool).DeleteIssuedBefore(ctx, cutoff)
	if err != nil {
		logger.Error("delete verification codes",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("verification codes cleaned up",
		slog.Int("deleted", deleted),
		slog.Time("cutoff", cutoff),
	)
}
