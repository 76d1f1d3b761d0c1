// Package seeder loads the exercise, food and plan catalog from a YAML
// dataset into the database.
package seeder

import (
	"context"

	"github.com/heartmarshall/calorie-backend/internal/domain"
)

// CatalogBulkRepo is the write side of the exercise and food catalog.
// Implemented by catalog.Repo.
type CatalogBulkRepo interface {
	BulkUpsertExercises(ctx context.Context, items []domain.Exercise) (int, error)
	BulkUpsertFoods(ctx context.Context, items []domain.Food) (int, error)
}

// PlanBulkRepo is implemented by plan.Repo.
type PlanBulkRepo interface {
	BulkUpsertPlans(ctx context.Context, items []domain.Plan) (int, error)
}
