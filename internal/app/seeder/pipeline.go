package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/calorie-backend/internal/domain"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"exercises", "foods", "plans"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Upserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline seeds the catalog phase by phase.
type Pipeline struct {
	log     *slog.Logger
	catalog CatalogBulkRepo
	plans   PlanBulkRepo
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, catalog CatalogBulkRepo, plans PlanBulkRepo, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		catalog: catalog,
		plans:   plans,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, still in canonical order. An unknown phase name is an error.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	// Step 1: Parse the dataset once for every phase
	if p.cfg.CatalogPath == "" {
		return fmt.Errorf("seeder: catalog path not configured")
	}
	ds, err := ParseDataset(p.cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("seeder: %w", err)
	}

	// Step 2: Determine which phases to run
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	// Step 3: Execute phases in order
	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "exercises":
			result = runPhase(ds.exercises(), p.cfg, func(batch []domain.Exercise) (int, error) {
				return p.catalog.BulkUpsertExercises(ctx, batch)
			})
		case "foods":
			result = runPhase(ds.foods(), p.cfg, func(batch []domain.Food) (int, error) {
				return p.catalog.BulkUpsertFoods(ctx, batch)
			})
		case "plans":
			result = runPhase(ds.plans(), p.cfg, func(batch []domain.Plan) (int, error) {
				return p.plans.BulkUpsertPlans(ctx, batch)
			})
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("upserted", result.Upserted),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}

	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		filter[ph] = true
	}

	var out []string
	for _, ph := range allPhases {
		if filter[ph] {
			out = append(out, ph)
			delete(filter, ph)
		}
	}
	for ph := range filter {
		return nil, fmt.Errorf("seeder: unknown phase %q", ph)
	}
	return out, nil
}

func runPhase[T any](items []T, cfg Config, upsert func([]T) (int, error)) PhaseResult {
	if cfg.DryRun {
		return PhaseResult{Skipped: len(items)}
	}
	n, err := batchProcess(items, cfg.BatchSize, upsert)
	if err != nil {
		return PhaseResult{Upserted: n, Err: err}
	}
	return PhaseResult{Upserted: n}
}

// batchProcess splits items into chunks of batchSize and calls fn for each.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
