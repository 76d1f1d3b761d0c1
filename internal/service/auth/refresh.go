package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/calorie-backend/internal/auth"
	"github.com/heartmarshall/calorie-backend/internal/domain"
)

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. Presenting a token that was already rotated is treated as
// theft and revokes every session of its owner.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsRevoked() {
		return nil, s.revokeOnReuse(ctx, token)
	}
	if token.IsExpired(s.clock.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	// Two concurrent refreshes of one token: only the request that flips
	// revoked_at may issue a new pair.
	revoked, err := s.tokens.RevokeByID(ctx, token.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}
	if !revoked {
		return nil, s.revokeOnReuse(ctx, token)
	}

	result, err := s.issueTokens(ctx, user, false)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}

func (s *Service) revokeOnReuse(ctx context.Context, token *domain.RefreshToken) error {
	s.log.WarnContext(ctx, "revoked refresh token presented, ending all sessions",
		slog.String("user_id", token.UserID.String()),
		slog.String("token_id", token.ID.String()))

	if err := s.tokens.RevokeAllByUser(ctx, token.UserID); err != nil {
		return fmt.Errorf("auth.Refresh revoke sessions: %w", err)
	}
	return domain.ErrUnauthorized
}
