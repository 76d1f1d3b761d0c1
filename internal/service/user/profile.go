package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/calorie-backend/internal/domain"
	"github.com/heartmarshall/calorie-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateProfile applies the provided fields to the authenticated user and
// marks the registration as completed. A phone number or email owned by
// another user fails with ErrConflict. A changed weight is appended to the
// weight history in the same transaction.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	// Step 1: Validate input
	changes, err := input.Validate()
	if err != nil {
		return nil, err
	}

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		updated       *domain.User
		weightChanged bool
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		// Step 3: Contact uniqueness
		if changes.phone != nil {
			if err := s.ensureFree(ctx, userID, "phone_number", s.users.GetByPhone, *changes.phone); err != nil {
				return err
			}
		}
		if changes.email != nil {
			if err := s.ensureFree(ctx, userID, "email", s.users.GetByEmail, *changes.email); err != nil {
				return err
			}
		}

		// Step 4: Apply and save
		now := s.clock.Now()
		next := *current
		weightChanged = changes.apply(&next)
		next.RegisterCompletedAt = &now

		updated, err = s.users.UpdateProfile(ctx, &next)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}

		// Step 5: Weight history
		if weightChanged {
			if err := s.users.AddWeightChange(ctx, userID, next.Profile.WeightKG, now); err != nil {
				return fmt.Errorf("add weight change: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.Bool("weight_changed", weightChanged))

	return updated, nil
}

// ToggleNotifications flips the notification preference of the
// authenticated user.
func (s *Service) ToggleNotifications(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.ToggleNotifications: %w", err)
	}

	updated, err := s.users.SetAllowNotification(ctx, userID, !current.AllowNotification)
	if err != nil {
		return nil, fmt.Errorf("user.ToggleNotifications: %w", err)
	}

	s.log.InfoContext(ctx, "notification preference changed",
		slog.String("user_id", userID.String()),
		slog.Bool("allow", updated.AllowNotification))

	return updated, nil
}

func (s *Service) ensureFree(
	ctx context.Context,
	userID uuid.UUID,
	field string,
	lookup func(context.Context, string) (*domain.User, error),
	value string,
) error {
	owner, err := lookup(ctx, value)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("lookup %s: %w", field, err)
	case owner.ID != userID:
		return fmt.Errorf("%s already taken: %w", field, domain.ErrConflict)
	}
	return nil
}
