package domain

import (
	"fmt"
	"strings"
)

// Sex is the biological sex used by the energy formulas.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func (s Sex) String() string { return string(s) }

func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	}
	return false
}

// ExerciseLevel describes how physically active a person is.
type ExerciseLevel string

const (
	ExerciseLevelLow      ExerciseLevel = "low"
	ExerciseLevelMedium   ExerciseLevel = "medium"
	ExerciseLevelHigh     ExerciseLevel = "high"
	ExerciseLevelVeryHigh ExerciseLevel = "very-high"
)

func (l ExerciseLevel) String() string { return string(l) }

func (l ExerciseLevel) IsValid() bool {
	switch l {
	case ExerciseLevelLow, ExerciseLevelMedium, ExerciseLevelHigh, ExerciseLevelVeryHigh:
		return true
	}
	return false
}

// Goal is the weight goal chosen by the user.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

func (g Goal) String() string { return string(g) }

func (g Goal) IsValid() bool {
	switch g {
	case GoalLose, GoalMaintain, GoalGain:
		return true
	}
	return false
}

// ActivityType identifies what an activity record refers to.
type ActivityType string

const (
	ActivityTypeExercise   ActivityType = "exercise"
	ActivityTypeFood       ActivityType = "food"
	ActivityTypeStep       ActivityType = "step"
	ActivityTypeDrinkWater ActivityType = "drink-water"
)

func (t ActivityType) String() string { return string(t) }

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeExercise, ActivityTypeFood, ActivityTypeStep, ActivityTypeDrinkWater:
		return true
	}
	return false
}

// GainedField selects the column summed over custom gained entries.
type GainedField string

const (
	GainedFieldAmount       GainedField = "amount"
	GainedFieldFat          GainedField = "fat"
	GainedFieldProtein      GainedField = "protein"
	GainedFieldCarbohydrate GainedField = "carbohydrate"
)

func (f GainedField) String() string { return string(f) }

func (f GainedField) IsValid() bool {
	switch f {
	case GainedFieldAmount, GainedFieldFat, GainedFieldProtein, GainedFieldCarbohydrate:
		return true
	}
	return false
}

// ChannelKind is the delivery channel of a verification code.
type ChannelKind string

const (
	ChannelPhone ChannelKind = "phone"
	ChannelEmail ChannelKind = "email"
)

func (k ChannelKind) String() string { return string(k) }

func (k ChannelKind) IsValid() bool {
	switch k {
	case ChannelPhone, ChannelEmail:
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// Parsing
// ---------------------------------------------------------------------------

// Labels shown in the mobile client. Stored profiles from older app versions
// carry these instead of the canonical keys.
var (
	sexLabels = map[string]Sex{
		"مرد": SexMale,
		"زن":  SexFemale,
	}
	exerciseLevelLabels = map[string]ExerciseLevel{
		"کم":        ExerciseLevelLow,
		"متوسط":     ExerciseLevelMedium,
		"زیاد":      ExerciseLevelHigh,
		"خیلی زیاد": ExerciseLevelVeryHigh,
	}
	goalLabels = map[string]Goal{
		"کاهش وزن":  GoalLose,
		"تثبیت وزن": GoalMaintain,
		"افزایش وزن": GoalGain,
	}
)

// ParseSex accepts a canonical key or a client label.
func ParseSex(s string) (Sex, error) {
	s = strings.TrimSpace(s)
	if v := Sex(strings.ToLower(s)); v.IsValid() {
		return v, nil
	}
	if v, ok := sexLabels[s]; ok {
		return v, nil
	}
	return "", NewValidationError("sex", fmt.Sprintf("unknown value %q", s))
}

// ParseExerciseLevel accepts a canonical key or a client label.
func ParseExerciseLevel(s string) (ExerciseLevel, error) {
	s = strings.TrimSpace(s)
	if v := ExerciseLevel(strings.ToLower(s)); v.IsValid() {
		return v, nil
	}
	if v, ok := exerciseLevelLabels[s]; ok {
		return v, nil
	}
	return "", NewValidationError("exercise_level", fmt.Sprintf("unknown value %q", s))
}

// ParseGoal accepts a canonical key or a client label.
func ParseGoal(s string) (Goal, error) {
	s = strings.TrimSpace(s)
	if v := Goal(strings.ToLower(s)); v.IsValid() {
		return v, nil
	}
	if v, ok := goalLabels[s]; ok {
		return v, nil
	}
	return "", NewValidationError("goal", fmt.Sprintf("unknown value %q", s))
}
