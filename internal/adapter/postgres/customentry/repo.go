// Package customentry implements sums over manually entered calorie
// adjustments using PostgreSQL.
package customentry

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/calorie-backend/internal/adapter/postgres"
	"github.com/heartmarshall/calorie-backend/internal/domain"
)

// Repo provides custom calorie aggregates backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new custom entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// SumBurned returns the total custom burned amount of the user on date.
func (r *Repo) SumBurned(ctx context.Context, userID uuid.UUID, date domain.CalendarDate) (float64, error) {
	q := postgres.Builder().
		Select("COALESCE(SUM(amount), 0)").
		From("custom_burned_calories").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"date": date.String()})

	return r.sum(ctx, q, userID)
}

// SumGained returns the total of field over the user's custom meals between
// start and end inclusive.
func (r *Repo) SumGained(ctx context.Context, userID uuid.UUID, start, end domain.CalendarDate, field domain.GainedField) (float64, error) {
	if !field.IsValid() {
		return 0, domain.NewValidationError("field", "unknown gained field "+string(field))
	}

	q := postgres.Builder().
		Select(fmt.Sprintf("COALESCE(SUM(%s), 0)", field)).
		From("custom_gained_calories").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"date": start.String()}).
		Where(sq.LtOrEq{"date": end.String()})

	return r.sum(ctx, q, userID)
}

func (r *Repo) sum(ctx context.Context, q sq.SelectBuilder, userID uuid.UUID) (float64, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build sum query: %w", err)
	}

	var total float64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "custom_calorie", userID)
	}
	return total, nil
}
