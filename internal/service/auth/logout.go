package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/calorie-backend/internal/domain"
	"github.com/heartmarshall/calorie-backend/pkg/ctxutil"
)

// Logout ends every session of the caller. Access tokens already handed out
// stay valid until they expire.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "sessions revoked", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken resolves an access token to its user. Any parse or signature
// failure maps to domain.ErrUnauthorized.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// PurgeSessions deletes refresh tokens that can no longer be used.
func (s *Service) PurgeSessions(ctx context.Context) (int, error) {
	n, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("auth.PurgeSessions: %w", err)
	}
	s.log.InfoContext(ctx, "stale sessions purged", slog.Int("count", n))
	return n, nil
}
