// Package catalog implements the exercise and food catalog using PostgreSQL.
package catalog

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/calorie-backend/internal/adapter/postgres"
	"github.com/heartmarshall/calorie-backend/internal/domain"
)

// Repo provides access to the exercise and food catalog.
type Repo struct {
	db postgres.Querier
}

// New creates a new catalog repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type exerciseRow struct {
	ID      int64   `db:"id"`
	Title   string  `db:"title"`
	Calorie float64 `db:"calorie"`
}

type foodRow struct {
	ID           int64   `db:"id"`
	Title        string  `db:"title"`
	Calorie      float64 `db:"calorie"`
	Fat          float64 `db:"fat"`
	Protein      float64 `db:"protein"`
	Carbohydrate float64 `db:"carbohydrate"`
}

// GetExerciseByID returns an exercise, or domain.ErrNotFound.
func (r *Repo) GetExerciseByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	q := postgres.Builder().
		Select("id", "title", "calorie").
		From("exercises").
		Where(sq.Eq{"id": id})

	var row exerciseRow
	if err := postgres.Get(ctx, r.db, &row, q); err != nil {
		return nil, postgres.MapError(err, "exercise", id)
	}
	return &domain.Exercise{ID: row.ID, Title: row.Title, Calorie: row.Calorie}, nil
}

// GetFoodByID returns a food, or domain.ErrNotFound.
func (r *Repo) GetFoodByID(ctx context.Context, id int64) (*domain.Food, error) {
	q := postgres.Builder().
		Select("id", "title", "calorie", "fat", "protein", "carbohydrate").
		From("foods").
		Where(sq.Eq{"id": id})

	var row foodRow
	if err := postgres.Get(ctx, r.db, &row, q); err != nil {
		return nil, postgres.MapError(err, "food", id)
	}
	return &domain.Food{
		ID:           row.ID,
		Title:        row.Title,
		Calorie:      row.Calorie,
		Fat:          row.Fat,
		Protein:      row.Protein,
		Carbohydrate: row.Carbohydrate,
	}, nil
}

// BulkUpsertExercises inserts exercises, updating the calorie of titles that
// already exist. It returns the number of affected rows.
func (r *Repo) BulkUpsertExercises(ctx context.Context, items []domain.Exercise) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	q := postgres.Builder().
		Insert("exercises").
		Columns("title", "calorie").
		Suffix("ON CONFLICT (title) DO UPDATE SET calorie = EXCLUDED.calorie")
	for _, it := range items {
		q = q.Values(it.Title, it.Calorie)
	}

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return 0, postgres.MapError(err, "exercises", len(items))
	}
	return int(tag.RowsAffected()), nil
}

// BulkUpsertFoods inserts foods, replacing the nutrition values of titles
// that already exist. It returns the number of affected rows.
func (r *Repo) BulkUpsertFoods(ctx context.Context, items []domain.Food) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	q := postgres.Builder().
		Insert("foods").
		Columns("title", "calorie", "fat", "protein", "carbohydrate").
		Suffix(`ON CONFLICT (title) DO UPDATE SET
			calorie = EXCLUDED.calorie,
			fat = EXCLUDED.fat,
			protein = EXCLUDED.protein,
			carbohydrate = EXCLUDED.carbohydrate`)
	for _, it := range items {
		q = q.Values(it.Title, it.Calorie, it.Fat, it.Protein, it.Carbohydrate)
	}

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return 0, postgres.MapError(err, "foods", len(items))
	}
	return int(tag.RowsAffected()), nil
}
