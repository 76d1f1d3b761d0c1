package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/calorie-backend/internal/domain"
	"github.com/heartmarshall/calorie-backend/pkg/clock"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, u *domain.User) (*domain.User, error)
	SetAllowNotification(ctx context.Context, id uuid.UUID, allow bool) (*domain.User, error)
	AddWeightChange(ctx context.Context, userID uuid.UUID, weight float64, at time.Time) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	tx    txManager
	clock clock.Clock
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	clk clock.Clock,
) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		tx:    tx,
		clock: clk,
	}
}
