package statistics

import "github.com/heartmarshall/calorie-backend/internal/domain"

// DailyReport is the energy balance of one day against the user's targets.
// Allowed values are rounded to two decimals, consumed values are not.
type DailyReport struct {
	Date                   domain.CalendarDate
	AllowedCalorie         float64
	AllowedFat             float64
	AllowedProtein         float64
	AllowedCarbohydrate    float64
	RecommendedBurnCalorie float64
	BurnedCalorie          float64
	GainedCalorie          float64
	GainedFat              float64
	GainedProtein          float64
	GainedCarbohydrate     float64
	TargetWeight           float64
	TargetWeightWeek       float64
	DrinkWaterCount        int
	Steps                  int
}

// MonthlyReport summarises today and the running month and week.
type MonthlyReport struct {
	Date                           domain.CalendarDate
	TodayDrinkWaterCount           int
	TodayBurnedCalorie             float64
	CurrentMonthTotalGainedCalorie float64
	CurrentWeekTotalGainedCalorie  float64
}
