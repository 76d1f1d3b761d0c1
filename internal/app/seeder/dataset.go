package seeder

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/calorie-backend/internal/domain"
)

// Dataset is the on-disk catalog. Nutrition values are per logged unit.
type Dataset struct {
	Exercises []struct {
		Title   string  `yaml:"title"`
		Calorie float64 `yaml:"calorie"`
	} `yaml:"exercises"`
	Foods []struct {
		Title        string  `yaml:"title"`
		Calorie      float64 `yaml:"calorie"`
		Fat          float64 `yaml:"fat"`
		Protein      float64 `yaml:"protein"`
		Carbohydrate float64 `yaml:"carbohydrate"`
	} `yaml:"foods"`
	Plans []struct {
		Title string `yaml:"title"`
		Days  int    `yaml:"days"`
	} `yaml:"plans"`
}

// ParseDataset reads and validates the catalog file at path.
func ParseDataset(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	if err := ds.validate(); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return &ds, nil
}

func (ds *Dataset) validate() error {
	var errs []domain.FieldError
	check := func(section string, i int, title string, values ...float64) {
		if strings.TrimSpace(title) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("%s[%d].title", section, i), Message: "required"})
		}
		for _, v := range values {
			if v < 0 {
				errs = append(errs, domain.FieldError{Field: fmt.Sprintf("%s[%d]", section, i), Message: "negative value"})
				break
			}
		}
	}

	for i, e := range ds.Exercises {
		check("exercises", i, e.Title, e.Calorie)
	}
	for i, f := range ds.Foods {
		check("foods", i, f.Title, f.Calorie, f.Fat, f.Protein, f.Carbohydrate)
	}
	for i, p := range ds.Plans {
		check("plans", i, p.Title, float64(p.Days))
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// exercises returns the exercise section with duplicate titles collapsed;
// the last occurrence wins.
func (ds *Dataset) exercises() []domain.Exercise {
	out := make([]domain.Exercise, 0, len(ds.Exercises))
	for _, e := range ds.Exercises {
		out = append(out, domain.Exercise{Title: strings.TrimSpace(e.Title), Calorie: e.Calorie})
	}
	return dedupe(out, func(e domain.Exercise) string { return e.Title })
}

func (ds *Dataset) foods() []domain.Food {
	out := make([]domain.Food, 0, len(ds.Foods))
	for _, f := range ds.Foods {
		out = append(out, domain.Food{
			Title:        strings.TrimSpace(f.Title),
			Calorie:      f.Calorie,
			Fat:          f.Fat,
			Protein:      f.Protein,
			Carbohydrate: f.Carbohydrate,
		})
	}
	return dedupe(out, func(f domain.Food) string { return f.Title })
}

func (ds *Dataset) plans() []domain.Plan {
	out := make([]domain.Plan, 0, len(ds.Plans))
	for _, p := range ds.Plans {
		out = append(out, domain.Plan{Title: strings.TrimSpace(p.Title), DurationDays: p.Days})
	}
	return dedupe(out, func(p domain.Plan) string { return p.Title })
}

// dedupe keeps the last item of every key. A multi-row upsert must not touch
// the same row twice.
func dedupe[T any](items []T, key func(T) string) []T {
	pos := make(map[string]int, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		k := key(it)
		if i, ok := pos[k]; ok {
			out[i] = it
			continue
		}
		pos[k] = len(out)
		out = append(out, it)
	}
	return out
}
