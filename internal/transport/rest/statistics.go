package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/calorie-backend/internal/domain"
	"github.com/heartmarshall/calorie-backend/internal/service/statistics"
)

type statisticsService interface {
	GetDailyReport(ctx context.Context, date domain.CalendarDate) (*statistics.DailyReport, error)
	GetMonthlyReport(ctx context.Context) (*statistics.MonthlyReport, error)
}

// StatisticsHandler serves energy balance reports.
type StatisticsHandler struct {
	svc statisticsService
	log *slog.Logger
}

// NewStatisticsHandler creates a StatisticsHandler.
func NewStatisticsHandler(svc statisticsService, logger *slog.Logger) *StatisticsHandler {
	return &StatisticsHandler{svc: svc, log: logger.With("handler", "statistics")}
}

type dailyReportResponse struct {
	Date                   string  `json:"date"`
	AllowedCalorie         float64 `json:"allowed_calorie"`
	AllowedFat             float64 `json:"allowed_fat"`
	AllowedProtein         float64 `json:"allowed_protein"`
	AllowedCarbohydrate    float64 `json:"allowed_carbohydrate"`
	RecommendedBurnCalorie float64 `json:"recommended_burn_calorie"`
	BurnedCalorie          float64 `json:"burned_calorie"`
	GainedCalorie          float64 `json:"gained_calorie"`
	GainedFat              float64 `json:"gained_fat"`
	GainedProtein          float64 `json:"gained_protein"`
	GainedCarbohydrate     float64 `json:"gained_carbohydrate"`
	TargetWeight           float64 `json:"target_weight"`
	TargetWeightWeek       float64 `json:"target_weight_week"`
	DrinkWaterCount        int     `json:"drink_water_count"`
	Steps                  int     `json:"steps"`
}

type monthlyReportResponse struct {
	Date                           string  `json:"date"`
	TodayDrinkWaterCount           int     `json:"today_drink_water_count"`
	TodayBurnedCalorie             float64 `json:"today_burned_calorie"`
	CurrentMonthTotalGainedCalorie float64 `json:"current_month_total_gained_calorie"`
	CurrentWeekTotalGainedCalorie  float64 `json:"current_week_total_gained_calorie"`
}

// Daily handles GET /api/statistics. The optional date query parameter
// ("1403/05/10") selects the day; it defaults to today.
func (h *StatisticsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	var date domain.CalendarDate
	if raw := r.URL.Query().Get("date"); raw != "" {
		d, err := domain.ParseCalendarDate(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("date", "expected YYYY/MM/DD"))
			return
		}
		date = d
	}

	rep, err := h.svc.GetDailyReport(r.Context(), date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dailyReportResponse{
		Date:                   rep.Date.String(),
		AllowedCalorie:         rep.AllowedCalorie,
		AllowedFat:             rep.AllowedFat,
		AllowedProtein:         rep.AllowedProtein,
		AllowedCarbohydrate:    rep.AllowedCarbohydrate,
		RecommendedBurnCalorie: rep.RecommendedBurnCalorie,
		BurnedCalorie:          rep.BurnedCalorie,
		GainedCalorie:          rep.GainedCalorie,
		GainedFat:              rep.GainedFat,
		GainedProtein:          rep.GainedProtein,
		GainedCarbohydrate:     rep.GainedCarbohydrate,
		TargetWeight:           rep.TargetWeight,
		TargetWeightWeek:       rep.TargetWeightWeek,
		DrinkWaterCount:        rep.DrinkWaterCount,
		Steps:                  rep.Steps,
	})
}

// CurrentMonth handles GET /api/statistics/current-month.
func (h *StatisticsHandler) CurrentMonth(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.GetMonthlyReport(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, monthlyReportResponse{
		Date:                           rep.Date.String(),
		TodayDrinkWaterCount:           rep.TodayDrinkWaterCount,
		TodayBurnedCalorie:             rep.TodayBurnedCalorie,
		CurrentMonthTotalGainedCalorie: rep.CurrentMonthTotalGainedCalorie,
		CurrentWeekTotalGainedCalorie:  rep.CurrentWeekTotalGainedCalorie,
	})
}
