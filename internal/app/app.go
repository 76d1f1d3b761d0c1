package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/calorie-backend/internal/adapter/notify"
	"github.com/heartmarshall/calorie-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/calorie-backend/internal/adapter/postgres/activity"
	catalogrepo "github.com/heartmarshall/calorie-backend/internal/adapter/postgres/catalog"
	customentryrepo "github.com/heartmarshall/calorie-backend/internal/adapter/postgres/customentry"
	planrepo "github.com/heartmarshall/calorie-backend/internal/adapter/postgres/plan"
	tokenrepo "github.com/heartmarshall/calorie-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/calorie-backend/internal/adapter/postgres/user"
	verificationrepo "github.com/heartmarshall/calorie-backend/internal/adapter/postgres/verification"
	"github.com/heartmarshall/calorie-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/calorie-backend/internal/auth"
	"github.com/heartmarshall/calorie-backend/internal/config"
	authsvc "github.com/heartmarshall/calorie-backend/internal/service/auth"
	"github.com/heartmarshall/calorie-backend/internal/service/statistics"
	"github.com/heartmarshall/calorie-backend/internal/service/user"
	"github.com/heartmarshall/calorie-backend/internal/service/verification"
	"github.com/heartmarshall/calorie-backend/internal/transport/middleware"
	"github.com/heartmarshall/calorie-backend/internal/transport/rest"
	"github.com/heartmarshall/calorie-backend/pkg/clock"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires repositories, services and the HTTP router, and serves
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Calendar.Timezone),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	handler, stop := newHandler(logger, cfg, pool)
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// newHandler builds the dependency graph behind the HTTP API. The returned
// stop function releases background workers.
func newHandler(logger *slog.Logger, cfg *config.Config, pool postgresPool) (http.Handler, func()) {
	clk := clock.NewReal()
	txm := postgres.NewTxManager(pool)

	// Repositories
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	codes := verificationrepo.New(pool)
	activities := activityrepo.New(pool)
	catalog := catalogrepo.New(pool)
	custom := customentryrepo.New(pool)
	plans := planrepo.New(pool)

	// Services
	verificationService := verification.NewService(logger, codes, txm, clk, verification.Config{
		Cooldown:   cfg.Verification.Cooldown,
		DailyLimit: cfg.Verification.DailyLimit,
		Location:   cfg.Calendar.Location,
	})

	if !cfg.Auth.GoogleEnabled() {
		logger.Warn("google client id is not set; id token audience is not checked")
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(
		logger,
		users,
		tokens,
		verificationService,
		notify.NewLogSender(logger),
		google.NewVerifier(cfg.Auth.GoogleClientID, logger),
		jwtManager,
		clk,
		cfg.Auth,
	)
	userService := user.NewService(logger, users, txm, clk)
	statisticsService := statistics.NewService(logger, activities, catalog, custom, plans, users, clk, cfg.Calendar.Location)

	// Transport
	rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	router := rest.NewRouter(logger, cfg, rest.Handlers{
		Health:     rest.NewHealthHandler(BuildVersion(), map[string]rest.Check{"database": pool.Ping}),
		Auth:       rest.NewAuthHandler(authService, logger),
		Profile:    rest.NewProfileHandler(userService, logger),
		Statistics: rest.NewStatisticsHandler(statisticsService, logger),
	}, authService, rl)

	return router, rl.Stop
}

// postgresPool is what the repositories, the tx manager and the readiness
// probe need from *pgxpool.Pool.
type postgresPool interface {
	postgres.Querier
	postgres.Beginner
	Ping(ctx context.Context) error
}
