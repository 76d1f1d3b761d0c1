package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/calorie-backend/internal/config"
	"github.com/heartmarshall/calorie-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Profile    *ProfileHandler
	Statistics *StatisticsHandler
}

// NewRouter builds the HTTP handler of the API.
//
// Every request passes RequestID, ClientIP, Recovery, CORS, Auth and Logger
// in that order. Code issuance and code submission are additionally limited
// per client IP.
func NewRouter(
	logger *slog.Logger,
	cfg *config.Config,
	h Handlers,
	tokens tokenValidator,
	rl *middleware.RateLimiter,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	codeLimited := middleware.Chain(rl.Limit(cfg.RateLimit.CodeRequestsPerMinute))
	loginLimited := middleware.Chain(rl.Limit(cfg.RateLimit.LoginPerMinute))
	private := middleware.Chain(middleware.RequireAuth)

	mux.Handle("POST /api/auth/get-verification-code/via-sms", codeLimited.ThenFunc(h.Auth.RequestCodeSMS))
	mux.Handle("POST /api/auth/get-verification-code/via-email", codeLimited.ThenFunc(h.Auth.RequestCodeEmail))
	mux.Handle("POST /api/auth/submit-verification-code/via-sms", loginLimited.ThenFunc(h.Auth.SubmitCodeSMS))
	mux.Handle("POST /api/auth/submit-verification-code/via-email", loginLimited.ThenFunc(h.Auth.SubmitCodeEmail))
	mux.Handle("POST /api/auth/verify-google-sign-in", loginLimited.ThenFunc(h.Auth.VerifyGoogleSignIn))
	mux.Handle("POST /api/auth/refresh", loginLimited.ThenFunc(h.Auth.Refresh))
	mux.Handle("POST /api/auth/logout", private.ThenFunc(h.Auth.Logout))

	mux.Handle("GET /api/profile/show", private.ThenFunc(h.Profile.Show))
	mux.Handle("POST /api/profile/update", private.ThenFunc(h.Profile.Update))
	mux.Handle("POST /api/profile/toggle-allow-notification", private.ThenFunc(h.Profile.ToggleNotification))

	mux.Handle("GET /api/statistics", private.ThenFunc(h.Statistics.Daily))
	mux.Handle("GET /api/statistics/current-month", private.ThenFunc(h.Statistics.CurrentMonth))

	return middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
		middleware.Logger(logger),
	).Then(mux)
}
