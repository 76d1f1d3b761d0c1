// Command cleanup-tokens deletes expired and revoked refresh tokens. It is
// meant to be run periodically by an external scheduler.
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
	"github.com/heartmarshall/calorie-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/calorie-backend/internal/app"
	"github.com/heartmarshall/calorie-backend/internal/config"
	authsvc "github.com/heartmarshall/calorie-backend/internal/service/auth"
	"github.com/heartmarshall/calorie-backend/pkg/clock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// Purging only touches the token store; the login collaborators stay nil.
	svc := authsvc.NewService(logger, nil, token.New(pool), nil, nil, nil, nil, clock.NewReal(), cfg.Auth)
	if _, err := svc.PurgeSessions(ctx); err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}
}
