package statistics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/calorie-backend/internal/domain"
	"github.com/heartmarshall/calorie-backend/pkg/clock"
)

// activityRepo reads logged activities. Records are returned in creation order.
type activityRepo interface {
	FindByUserDateType(ctx context.Context, userID uuid.UUID, typ domain.ActivityType, date domain.CalendarDate) ([]domain.ActivityRecord, error)
	FindByUserDateRangeType(ctx context.Context, userID uuid.UUID, typ domain.ActivityType, start, end domain.CalendarDate) ([]domain.ActivityRecord, error)
}

// catalogRepo looks up exercises and foods. Missing items yield domain.ErrNotFound.
type catalogRepo interface {
	GetExerciseByID(ctx context.Context, id int64) (*domain.Exercise, error)
	GetFoodByID(ctx context.Context, id int64) (*domain.Food, error)
}

// customCalorieRepo sums manually entered calorie adjustments.
type customCalorieRepo interface {
	SumBurned(ctx context.Context, userID uuid.UUID, date domain.CalendarDate) (float64, error)
	SumGained(ctx context.Context, userID uuid.UUID, start, end domain.CalendarDate, field domain.GainedField) (float64, error)
}

// planRepo returns the plan of the user's last completed purchase.
type planRepo interface {
	LastCompletedPlan(ctx context.Context, userID uuid.UUID) (*domain.Plan, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service aggregates energy balance and builds statistics reports.
type Service struct {
	log        *slog.Logger
	activities activityRepo
	catalog    catalogRepo
	custom     customCalorieRepo
	plans      planRepo
	users      userRepo
	clock      clock.Clock
	loc        *time.Location
}

// NewService creates a new statistics service. loc decides which calendar
// day "today" is.
func NewService(
	logger *slog.Logger,
	activities activityRepo,
	catalog catalogRepo,
	custom customCalorieRepo,
	plans planRepo,
	users userRepo,
	clk clock.Clock,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:        logger.With("service", "statistics"),
		activities: activities,
		catalog:    catalog,
		custom:     custom,
		plans:      plans,
		users:      users,
		clock:      clk,
		loc:        loc,
	}
}

// Today returns the current calendar day in the service location.
func (s *Service) Today() domain.CalendarDate {
	return domain.CalendarDateOf(s.clock.Now().In(s.loc))
}
