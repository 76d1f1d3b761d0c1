package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityRecord is one logged activity of a user on a calendar day.
// Exactly one reference is meaningful, depending on Type: ExerciseID for
// exercises, FoodID (or RecommendedMealID) for food, Count for steps and water.
type ActivityRecord struct {
	ID                int64
	UserID            uuid.UUID
	Type              ActivityType
	Date              CalendarDate
	ExerciseID        *int64
	FoodID            *int64
	RecommendedMealID *int64
	Count             int
	CreatedAt         time.Time
}

// CustomBurnedCalorie is a manually entered burned-energy adjustment.
type CustomBurnedCalorie struct {
	ID        int64
	UserID    uuid.UUID
	Amount    float64
	Date      CalendarDate
	CreatedAt time.Time
}

// CustomGainedCalorie is a manually entered meal with optional macros.
type CustomGainedCalorie struct {
	ID           int64
	UserID       uuid.UUID
	Amount       float64
	Fat          float64
	Protein      float64
	Carbohydrate float64
	Date         CalendarDate
	CreatedAt    time.Time
}

// Exercise is a catalog item; Calorie is kcal burned per logged unit.
type Exercise struct {
	ID      int64
	Title   string
	Calorie float64
}

// Food is a catalog item; values are per logged unit.
type Food struct {
	ID           int64
	Title        string
	Calorie      float64
	Fat          float64
	Protein      float64
	Carbohydrate float64
}

// Plan is a purchasable diet plan.
type Plan struct {
	ID           int64
	Title        string
	DurationDays int
}
