package statistics

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/heartmarshall/calorie-backend/internal/domain"
)

const (
	// StepsPerKcal is the number of steps counted as one burned kcal.
	StepsPerKcal = 20
	// DefaultPlanWeeks is used for the weekly delta when no plan was bought.
	DefaultPlanWeeks = 4
	// heightToWeightOffset gives the heuristic target weight, height minus 100.
	heightToWeightOffset = 100
)

// StepCalories converts a step count to kcal, rounded to the nearest integer.
func StepCalories(count int) float64 {
	return math.Round(float64(count) / StepsPerKcal)
}

// BurnedCalories sums exercise catalog calories, step estimates and custom
// burned entries of the user on date. Step records are rounded one by one.
func (s *Service) BurnedCalories(ctx context.Context, userID uuid.UUID, date domain.CalendarDate) (float64, error) {
	exercises, err := s.activities.FindByUserDateType(ctx, userID, domain.ActivityTypeExercise, date)
	if err != nil {
		return 0, fmt.Errorf("statistics.BurnedCalories: %w", err)
	}

	var total float64
	cache := make(map[int64]float64)
	for _, a := range exercises {
		if a.ExerciseID == nil {
			continue
		}
		cal, ok := cache[*a.ExerciseID]
		if !ok {
			ex, err := s.catalog.GetExerciseByID(ctx, *a.ExerciseID)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				cal = 0
			case err != nil:
				return 0, fmt.Errorf("statistics.BurnedCalories: exercise %d: %w", *a.ExerciseID, err)
			default:
				cal = ex.Calorie
			}
			cache[*a.ExerciseID] = cal
		}
		total += cal
	}

	steps, err := s.activities.FindByUserDateType(ctx, userID, domain.ActivityTypeStep, date)
	if err != nil {
		return 0, fmt.Errorf("statistics.BurnedCalories: %w", err)
	}
	for _, a := range steps {
		total += StepCalories(a.Count)
	}

	custom, err := s.custom.SumBurned(ctx, userID, date)
	if err != nil {
		return 0, fmt.Errorf("statistics.BurnedCalories: %w", err)
	}

	return total + custom, nil
}

// GainedCalories sums food catalog calories and custom gained entries over
// the inclusive range [start, end].
func (s *Service) GainedCalories(ctx context.Context, userID uuid.UUID, start, end domain.CalendarDate) (float64, error) {
	total, err := s.gained(ctx, userID, start, end, domain.GainedFieldAmount)
	if err != nil {
		return 0, fmt.Errorf("statistics.GainedCalories: %w", err)
	}
	return total, nil
}

// GainedCaloriesOn is GainedCalories for a single day.
func (s *Service) GainedCaloriesOn(ctx context.Context, userID uuid.UUID, date domain.CalendarDate) (float64, error) {
	return s.GainedCalories(ctx, userID, date, date)
}

// GainedFat sums the fat of catalog foods and custom gained entries on date.
func (s *Service) GainedFat(ctx context.Context, userID uuid.UUID, date domain.CalendarDate) (float64, error) {
	total, err := s.gained(ctx, userID, date, date, domain.GainedFieldFat)
	if err != nil {
		return 0, fmt.Errorf("statistics.GainedFat: %w", err)
	}
	return total, nil
}

// GainedProtein is GainedFat for protein.
func (s *Service) GainedProtein(ctx context.Context, userID uuid.UUID, date domain.CalendarDate) (float64, error) {
	total, err := s.gained(ctx, userID, date, date, domain.GainedFieldProtein)
	if err != nil {
		return 0, fmt.Errorf("statistics.GainedProtein: %w", err)
	}
	return total, nil
}

// GainedCarbohydrate is GainedFat for carbohydrate.
func (s *Service) GainedCarbohydrate(ctx context.Context, userID uuid.UUID, date domain.CalendarDate) (float64, error) {
	total, err := s.gained(ctx, userID, date, date, domain.GainedFieldCarbohydrate)
	if err != nil {
		return 0, fmt.Errorf("statistics.GainedCarbohydrate: %w", err)
	}
	return total, nil
}

func (s *Service) gained(ctx context.Context, userID uuid.UUID, start, end domain.CalendarDate, field domain.GainedField) (float64, error) {
	foods, err := s.activities.FindByUserDateRangeType(ctx, userID, domain.ActivityTypeFood, start, end)
	if err != nil {
		return 0, err
	}

	var total float64
	cache := make(map[int64]*domain.Food)
	for _, a := range foods {
		if a.FoodID == nil {
			continue
		}
		food, ok := cache[*a.FoodID]
		if !ok {
			food, err = s.catalog.GetFoodByID(ctx, *a.FoodID)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				food = nil
			case err != nil:
				return 0, fmt.Errorf("food %d: %w", *a.FoodID, err)
			}
			cache[*a.FoodID] = food
		}
		total += foodValue(food, field)
	}

	custom, err := s.custom.SumGained(ctx, userID, start, end, field)
	if err != nil {
		return 0, err
	}
	return total + custom, nil
}

func foodValue(f *domain.Food, field domain.GainedField) float64 {
	if f == nil {
		return 0
	}
	switch field {
	case domain.GainedFieldFat:
		return f.Fat
	case domain.GainedFieldProtein:
		return f.Protein
	case domain.GainedFieldCarbohydrate:
		return f.Carbohydrate
	default:
		return f.Calorie
	}
}

// DrinkWaterCount returns the glasses of water logged on date, 0 if none.
func (s *Service) DrinkWaterCount(ctx context.Context, userID uuid.UUID, date domain.CalendarDate) (int, error) {
	n, err := s.latestCount(ctx, userID, domain.ActivityTypeDrinkWater, date)
	if err != nil {
		return 0, fmt.Errorf("statistics.DrinkWaterCount: %w", err)
	}
	return n, nil
}

// StepsCount returns the steps logged on date, 0 if none.
func (s *Service) StepsCount(ctx context.Context, userID uuid.UUID, date domain.CalendarDate) (int, error) {
	n, err := s.latestCount(ctx, userID, domain.ActivityTypeStep, date)
	if err != nil {
		return 0, fmt.Errorf("statistics.StepsCount: %w", err)
	}
	return n, nil
}

// latestCount returns Count of the most recently created record.
func (s *Service) latestCount(ctx context.Context, userID uuid.UUID, typ domain.ActivityType, date domain.CalendarDate) (int, error) {
	records, err := s.activities.FindByUserDateType(ctx, userID, typ, date)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	latest := records[0]
	for _, r := range records[1:] {
		if r.CreatedAt.After(latest.CreatedAt) || (r.CreatedAt.Equal(latest.CreatedAt) && r.ID > latest.ID) {
			latest = r
		}
	}
	return latest.Count, nil
}

// TargetWeight is the chosen target weight when the user has no goal,
// otherwise height minus 100.
func TargetWeight(p domain.UserProfile) float64 {
	if p.TargetWeightKG != nil && p.Goal == nil {
		return *p.TargetWeightKG
	}
	return p.HeightCM - heightToWeightOffset
}

// TargetWeightWeeklyDelta spreads the distance to the target weight over the
// weeks of the last plan, or DefaultPlanWeeks without one.
func TargetWeightWeeklyDelta(p domain.UserProfile, lastPlan *domain.Plan) float64 {
	weeks := float64(DefaultPlanWeeks)
	if lastPlan != nil && lastPlan.DurationDays > 0 {
		weeks = float64(lastPlan.DurationDays) / 7
	}
	return (TargetWeight(p) - p.WeightKG) / weeks
}

// WeeklyDelta loads the user's last plan and computes TargetWeightWeeklyDelta.
func (s *Service) WeeklyDelta(ctx context.Context, user *domain.User) (float64, error) {
	plan, err := s.plans.LastCompletedPlan(ctx, user.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		plan = nil
	case err != nil:
		return 0, fmt.Errorf("statistics.WeeklyDelta: %w", err)
	}
	return TargetWeightWeeklyDelta(user.Profile, plan), nil
}
