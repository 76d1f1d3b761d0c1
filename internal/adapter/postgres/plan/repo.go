// Package plan implements plan lookups using PostgreSQL.
package plan

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/calorie-backend/internal/adapter/postgres"
	"github.com/heartmarshall/calorie-backend/internal/domain"
)

// Repo provides plan persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new plan repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
	Days  *int   `db:"days"`
}

// LastCompletedPlan returns the plan of the user's most recent verified
// purchase, or domain.ErrNotFound when nothing was bought.
func (r *Repo) LastCompletedPlan(ctx context.Context, userID uuid.UUID) (*domain.Plan, error) {
	q := postgres.Builder().
		Select("p.id", "p.title", "p.days").
		From("transactions t").
		Join("plans p ON p.id = t.plan_id").
		Where(sq.Eq{"t.user_id": userID}).
		Where(sq.NotEq{"t.verified_at": nil}).
		OrderBy("t.created_at DESC", "t.id DESC").
		Limit(1)

	var out row
	if err := postgres.Get(ctx, r.db, &out, q); err != nil {
		return nil, postgres.MapError(err, "plan", userID)
	}

	p := &domain.Plan{ID: out.ID, Title: out.Title}
	if out.Days != nil {
		p.DurationDays = *out.Days
	}
	return p, nil
}

// BulkUpsertPlans inserts plans keyed by title. A zero duration is stored
// as NULL.
func (r *Repo) BulkUpsertPlans(ctx context.Context, items []domain.Plan) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	q := postgres.Builder().
		Insert("plans").
		Columns("title", "days").
		Suffix("ON CONFLICT (title) DO UPDATE SET days = EXCLUDED.days")
	for _, it := range items {
		var days *int
		if it.DurationDays > 0 {
			days = &it.DurationDays
		}
		q = q.Values(it.Title, days)
	}

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return 0, postgres.MapError(err, "plans", len(items))
	}
	return int(tag.RowsAffected()), nil
}
