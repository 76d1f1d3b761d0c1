package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/calorie-backend/internal/domain"
)

// RequestCode issues a verification code for the channel of input and
// hands it to the sender. Throttling errors of the issuer are returned as is.
func (s *Service) RequestCode(ctx context.Context, input RequestCodeInput) error {
	// Step 1: Validate input
	ch, err := input.Validate()
	if err != nil {
		return err
	}

	// Step 2: Issue
	code, err := s.codes.Issue(ctx, ch)
	if err != nil {
		return fmt.Errorf("auth.RequestCode: %w", err)
	}

	// Step 3: Deliver
	if err := s.sender.SendCode(ctx, ch, code.Code); err != nil {
		s.log.ErrorContext(ctx, "verification code delivery failed",
			slog.String("channel", ch.Kind.String()),
			slog.String("error", err.Error()))
		return fmt.Errorf("auth.RequestCode send: %w", err)
	}

	return nil
}

// LoginWithCode consumes a verification code and signs the owner of the
// channel in, registering a new user on first login.
func (s *Service) LoginWithCode(ctx context.Context, input LoginWithCodeInput) (*AuthResult, error) {
	// Step 1: Validate input
	ch, err := input.Validate()
	if err != nil {
		return nil, err
	}

	// Step 2: Consume the code
	if err := s.codes.Validate(ctx, ch, input.Code); err != nil {
		return nil, fmt.Errorf("auth.LoginWithCode: %w", err)
	}

	// Step 3: Find or register the user
	user, created, err := s.findOrCreate(ctx, ch, "")
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithCode: %w", err)
	}

	// Step 4: Issue token pair
	result, err := s.issueTokens(ctx, user, created)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithCode issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in with code",
		slog.String("user_id", user.ID.String()),
		slog.String("channel", ch.Kind.String()),
		slog.Bool("registered", created))

	return result, nil
}

// LoginWithGoogle verifies a Google ID token and signs in the user owning
// its email, registering a new user on first login.
func (s *Service) LoginWithGoogle(ctx context.Context, input GoogleLoginInput) (*AuthResult, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Verify with Google
	identity, err := s.google.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle verify: %w", err)
	}

	// Step 3: Find or register the user
	ch, err := domain.ParseEmailChannel(identity.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle: %w", err)
	}
	user, created, err := s.findOrCreate(ctx, ch, derefOrEmpty(identity.Name))
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle: %w", err)
	}

	// Step 4: Issue token pair
	result, err := s.issueTokens(ctx, user, created)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in via google",
		slog.String("user_id", user.ID.String()),
		slog.Bool("registered", created))

	return result, nil
}

// derefOrEmpty returns the dereferenced value or empty string if nil.
func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
