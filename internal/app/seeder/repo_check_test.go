package seeder_test

import (
	"github.com/heartmarshall/calorie-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/calorie-backend/internal/adapter/postgres/plan"
	"github.com/heartmarshall/calorie-backend/internal/app/seeder"
)

var (
	_ seeder.CatalogBulkRepo = (*catalog.Repo)(nil)
	_ seeder.PlanBulkRepo    = (*plan.Repo)(nil)
)
