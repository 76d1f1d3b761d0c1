// Package activity implements the user activity repository using PostgreSQL.
package activity

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/calorie-backend/internal/adapter/postgres"
	"github.com/heartmarshall/calorie-backend/internal/domain"
)

var columns = []string{
	"id", "user_id", "type", "date", "exercise_id", "food_id", "recommended_meal_id", "count", "created_at",
}

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID                int64     `db:"id"`
	UserID            uuid.UUID `db:"user_id"`
	Type              string    `db:"type"`
	Date              string    `db:"date"`
	ExerciseID        *int64    `db:"exercise_id"`
	FoodID            *int64    `db:"food_id"`
	RecommendedMealID *int64    `db:"recommended_meal_id"`
	Count             int       `db:"count"`
	CreatedAt         time.Time `db:"created_at"`
}

// FindByUserDateType returns the user's records of one type on date, oldest first.
func (r *Repo) FindByUserDateType(ctx context.Context, userID uuid.UUID, typ domain.ActivityType, date domain.CalendarDate) ([]domain.ActivityRecord, error) {
	q := r.base(userID, typ).Where(sq.Eq{"date": date.String()})
	return r.list(ctx, q, userID)
}

// FindByUserDateRangeType returns the user's records of one type between start
// and end inclusive, oldest first.
func (r *Repo) FindByUserDateRangeType(ctx context.Context, userID uuid.UUID, typ domain.ActivityType, start, end domain.CalendarDate) ([]domain.ActivityRecord, error) {
	q := r.base(userID, typ).
		Where(sq.GtOrEq{"date": start.String()}).
		Where(sq.LtOrEq{"date": end.String()})
	return r.list(ctx, q, userID)
}

func (r *Repo) base(userID uuid.UUID, typ domain.ActivityType) sq.SelectBuilder {
	return postgres.Builder().
		Select(columns...).
		From("user_activities").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"type": string(typ)}).
		OrderBy("created_at", "id")
}

func (r *Repo) list(ctx context.Context, q sq.SelectBuilder, userID uuid.UUID) ([]domain.ActivityRecord, error) {
	var rows []row
	if err := postgres.Select(ctx, r.db, &rows, q); err != nil {
		return nil, postgres.MapError(err, "activity", userID)
	}

	out := make([]domain.ActivityRecord, 0, len(rows))
	for _, rw := range rows {
		date, err := domain.ParseCalendarDate(rw.Date)
		if err != nil {
			return nil, fmt.Errorf("activity %d: %w", rw.ID, err)
		}
		out = append(out, domain.ActivityRecord{
			ID:                rw.ID,
			UserID:            rw.UserID,
			Type:              domain.ActivityType(rw.Type),
			Date:              date,
			ExerciseID:        rw.ExerciseID,
			FoodID:            rw.FoodID,
			RecommendedMealID: rw.RecommendedMealID,
			Count:             rw.Count,
			CreatedAt:         rw.CreatedAt,
		})
	}
	return out, nil
}
