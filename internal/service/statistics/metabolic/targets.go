package metabolic

import (
	"fmt"

	"github.com/heartmarshall/calorie-backend/internal/domain"
)

// Targets are the daily intake targets. Calorie is in kcal, macros in grams.
type Targets struct {
	Calorie      float64
	Carbohydrate float64
	Protein      float64
	Fat          float64
}

// Mode is the formula selected for a profile. It is one of ModeFallback,
// ModePrimary or ModeIncomplete.
type Mode interface {
	fmt.Stringer
	mode()
}

// ModeFallback applies when the user has a target weight but no goal.
type ModeFallback struct {
	TargetWeight  float64
	ExerciseLevel domain.ExerciseLevel
}

// ModePrimary applies to completed registrations with an activity level and a goal.
type ModePrimary struct {
	ExerciseLevel domain.ExerciseLevel
	Goal          domain.Goal
}

// ModeIncomplete means the profile lacks inputs; every target is zero.
type ModeIncomplete struct{}

func (ModeFallback) mode()   {}
func (ModePrimary) mode()    {}
func (ModeIncomplete) mode() {}

func (m ModeFallback) String() string {
	return fmt.Sprintf("fallback(target=%.1f, level=%s)", m.TargetWeight, m.ExerciseLevel)
}

func (m ModePrimary) String() string {
	return fmt.Sprintf("primary(level=%s, goal=%s)", m.ExerciseLevel, m.Goal)
}

func (ModeIncomplete) String() string { return "incomplete" }

// SelectFormula picks the formula for p. Sex, height and weight are required
// by every formula.
func SelectFormula(p domain.UserProfile) Mode {
	if p.Sex == nil || !p.Sex.IsValid() || p.HeightCM <= 0 || p.WeightKG <= 0 {
		return ModeIncomplete{}
	}

	if p.Goal == nil && p.TargetWeightKG != nil && p.ExerciseLevel != nil {
		if !p.ExerciseLevel.IsValid() {
			return ModeIncomplete{}
		}
		return ModeFallback{TargetWeight: *p.TargetWeightKG, ExerciseLevel: *p.ExerciseLevel}
	}

	if !p.RegistrationCompleted || p.ExerciseLevel == nil || p.Goal == nil {
		return ModeIncomplete{}
	}
	if !p.ExerciseLevel.IsValid() || !p.Goal.IsValid() {
		return ModeIncomplete{}
	}
	return ModePrimary{ExerciseLevel: *p.ExerciseLevel, Goal: *p.Goal}
}

// Age returns full years between the birthdate and ref, 0 without a birthdate.
func Age(p domain.UserProfile, ref domain.CalendarDate) int {
	if p.Birthdate == nil {
		return 0
	}
	return ref.YearsSince(*p.Birthdate)
}

// Compute returns the daily targets of p on ref. Macros are only filled in
// for completed registrations.
func Compute(p domain.UserProfile, ref domain.CalendarDate) Targets {
	var cal float64

	age := Age(p, ref)
	switch m := SelectFormula(p).(type) {
	case ModeFallback:
		cal = FallbackCalories(*p.Sex, p.WeightKG, p.HeightCM, age, m.ExerciseLevel, m.TargetWeight)
	case ModePrimary:
		cal = PrimaryCalories(*p.Sex, p.WeightKG, p.HeightCM, age, m.ExerciseLevel, m.Goal)
	default:
		return Targets{}
	}

	if cal < 0 {
		cal = 0
	}

	t := Targets{Calorie: cal}
	if p.RegistrationCompleted {
		t.Carbohydrate, t.Protein, t.Fat = Macros(cal)
	}
	return t
}
