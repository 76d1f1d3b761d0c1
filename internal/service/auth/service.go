package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/calorie-backend/internal/auth"
	"github.com/heartmarshall/calorie-backend/internal/config"
	"github.com/heartmarshall/calorie-backend/internal/domain"
	"github.com/heartmarshall/calorie-backend/pkg/clock"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	// RevokeByID reports false when the token was already revoked.
	RevokeByID(ctx context.Context, id uuid.UUID) (bool, error)
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// codeIssuer issues and consumes one-time verification codes.
type codeIssuer interface {
	Issue(ctx context.Context, ch domain.Channel) (*domain.VerificationCode, error)
	Validate(ctx context.Context, ch domain.Channel, code string) error
}

// codeSender delivers a verification code over SMS or email.
type codeSender interface {
	SendCode(ctx context.Context, ch domain.Channel, code string) error
}

// googleVerifier checks Google ID tokens.
type googleVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleIdentity, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenRepo
	codes  codeIssuer
	sender codeSender
	google googleVerifier
	jwt    jwtManager
	clock  clock.Clock
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	codes codeIssuer,
	sender codeSender,
	google googleVerifier,
	jwt jwtManager,
	clk clock.Clock,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		codes:  codes,
		sender: sender,
		google: google,
		jwt:    jwt,
		clock:  clk,
		cfg:    cfg,
	}
}

// issueTokens generates access and refresh tokens for the given user, stores
// the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, user *domain.User, created bool) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, user.ID, hashRefresh, s.clock.Now().Add(s.cfg.RefreshTokenTTL)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		User:         user,
		Created:      created,
	}, nil
}

// findOrCreate returns the user owning ch, registering a new one when none
// exists. The second result is true when the user was created.
func (s *Service) findOrCreate(ctx context.Context, ch domain.Channel, fullName string) (*domain.User, bool, error) {
	user, err := s.getByChannel(ctx, ch)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get user: %w", err)
	}

	value := ch.Value
	newUser := &domain.User{
		FullName:          fullName,
		AllowNotification: true,
	}
	if ch.Kind == domain.ChannelPhone {
		newUser.PhoneNumber = &value
	} else {
		newUser.Email = &value
	}

	user, err = s.users.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Concurrent first login: the other request won.
			user, err = s.getByChannel(ctx, ch)
			if err != nil {
				return nil, false, fmt.Errorf("get user after conflict: %w", err)
			}
			return user, false, nil
		}
		return nil, false, fmt.Errorf("create user: %w", err)
	}

	return user, true, nil
}

func (s *Service) getByChannel(ctx context.Context, ch domain.Channel) (*domain.User, error) {
	if ch.Kind == domain.ChannelPhone {
		return s.users.GetByPhone(ctx, ch.Value)
	}
	return s.users.GetByEmail(ctx, ch.Value)
}
