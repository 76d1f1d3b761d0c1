// Package metabolic derives daily calorie and macronutrient targets from a
// biometric profile. All functions are pure.
package metabolic

import "github.com/heartmarshall/calorie-backend/internal/domain"

// Sex-dependent constant of the resting energy formula.
const (
	MaleOffset   = 5.0
	FemaleOffset = -161.0
)

// FallbackAdjustment is the flat daily deficit or surplus applied in fallback mode.
const FallbackAdjustment = 500.0

// bmrMultipliers scale the fallback formula by activity.
var bmrMultipliers = map[domain.ExerciseLevel]float64{
	domain.ExerciseLevelLow:      1.20,
	domain.ExerciseLevelMedium:   1.55,
	domain.ExerciseLevelHigh:     1.725,
	domain.ExerciseLevelVeryHigh: 1.90,
}

// activityMultipliers scale the primary formula by activity.
var activityMultipliers = map[domain.ExerciseLevel]float64{
	domain.ExerciseLevelLow:      1.50,
	domain.ExerciseLevelMedium:   1.65,
	domain.ExerciseLevelHigh:     1.80,
	domain.ExerciseLevelVeryHigh: 1.90,
}

var goalMultipliers = map[domain.Goal]float64{
	domain.GoalLose:     0.75,
	domain.GoalMaintain: 1.00,
	domain.GoalGain:     1.25,
}

// Share of the calorie target covered by each macro, and its energy density.
const (
	carbohydrateShare = 0.50
	proteinShare      = 0.22
	fatShare          = 0.28

	kcalPerGramCarbohydrate = 4.0
	kcalPerGramProtein      = 4.0
	kcalPerGramFat          = 9.0
)

// BMRMultiplier returns the fallback activity multiplier, 0 for an unknown level.
func BMRMultiplier(l domain.ExerciseLevel) float64 { return bmrMultipliers[l] }

// ActivityMultiplier returns the primary activity multiplier, 0 for an unknown level.
func ActivityMultiplier(l domain.ExerciseLevel) float64 { return activityMultipliers[l] }

// GoalMultiplier returns the goal multiplier, 0 for an unknown goal.
func GoalMultiplier(g domain.Goal) float64 { return goalMultipliers[g] }

// SexOffset returns the sex-dependent constant.
func SexOffset(s domain.Sex) float64 {
	if s == domain.SexFemale {
		return FemaleOffset
	}
	return MaleOffset
}

// FallbackCalories is used when no goal is chosen but a target weight is:
//
//	cal = (10w + 6.25h - 5a + offset) * bmr(level) -/+ 500
//
// The adjustment is a deficit when weight is above target, a surplus otherwise.
func FallbackCalories(sex domain.Sex, weight, height float64, age int, level domain.ExerciseLevel, target float64) float64 {
	base := weight*10 + height*6.25 - float64(age)*5 + SexOffset(sex)
	cal := base * BMRMultiplier(level)
	if weight > target {
		return cal - FallbackAdjustment
	}
	return cal + FallbackAdjustment
}

// PrimaryCalories is used for completed registrations with a goal:
//
//	male:   cal = (10w + 6.25h - 5(a + offset)) * activity(level) * goal
//	female: cal = (10w + 6.25h + 5(a + offset)) * activity(level) * goal
func PrimaryCalories(sex domain.Sex, weight, height float64, age int, level domain.ExerciseLevel, goal domain.Goal) float64 {
	ageTerm := 5 * (float64(age) + SexOffset(sex))
	base := weight*10 + height*6.25
	if sex == domain.SexFemale {
		base += ageTerm
	} else {
		base -= ageTerm
	}
	return base * ActivityMultiplier(level) * GoalMultiplier(goal)
}

// Macros splits a calorie target into grams of carbohydrate, protein and fat:
//
//	carb = cal * 0.50 / 4, protein = cal * 0.22 / 4, fat = cal * 0.28 / 9
func Macros(calorie float64) (carbohydrate, protein, fat float64) {
	carbohydrate = calorie * carbohydrateShare / kcalPerGramCarbohydrate
	protein = calorie * proteinShare / kcalPerGramProtein
	fat = calorie * fatShare / kcalPerGramFat
	return carbohydrate, protein, fat
}
