package statistics

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/calorie-backend/internal/domain"
	"github.com/heartmarshall/calorie-backend/internal/service/statistics/metabolic"
	"github.com/heartmarshall/calorie-backend/pkg/ctxutil"
)

// RecommendedBurnCalorie is the daily burn goal shown to every user.
const RecommendedBurnCalorie = 2000

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DailyReport builds the report of user on date.
func (s *Service) DailyReport(ctx context.Context, user *domain.User, date domain.CalendarDate) (*DailyReport, error) {
	targets := metabolic.Compute(user.Profile, date)

	report := &DailyReport{
		Date:                   date,
		AllowedCalorie:         round2(targets.Calorie),
		AllowedFat:             round2(targets.Fat),
		AllowedProtein:         round2(targets.Protein),
		AllowedCarbohydrate:    round2(targets.Carbohydrate),
		RecommendedBurnCalorie: RecommendedBurnCalorie,
		TargetWeight:           TargetWeight(user.Profile),
	}

	g, gctx := errgroup.WithContext(ctx)
	uid := user.ID

	g.Go(func() (err error) {
		report.BurnedCalorie, err = s.BurnedCalories(gctx, uid, date)
		return err
	})
	g.Go(func() (err error) {
		report.GainedCalorie, err = s.GainedCaloriesOn(gctx, uid, date)
		return err
	})
	g.Go(func() (err error) {
		report.GainedFat, err = s.GainedFat(gctx, uid, date)
		return err
	})
	g.Go(func() (err error) {
		report.GainedProtein, err = s.GainedProtein(gctx, uid, date)
		return err
	})
	g.Go(func() (err error) {
		report.GainedCarbohydrate, err = s.GainedCarbohydrate(gctx, uid, date)
		return err
	})
	g.Go(func() (err error) {
		report.TargetWeightWeek, err = s.WeeklyDelta(gctx, user)
		return err
	})
	g.Go(func() (err error) {
		report.DrinkWaterCount, err = s.DrinkWaterCount(gctx, uid, date)
		return err
	})
	g.Go(func() (err error) {
		report.Steps, err = s.StepsCount(gctx, uid, date)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("statistics.DailyReport: %w", err)
	}
	return report, nil
}

// MonthlyReport builds the running totals of user as of today. Month and
// week ranges end at today; weeks start on Saturday.
func (s *Service) MonthlyReport(ctx context.Context, user *domain.User, today domain.CalendarDate) (*MonthlyReport, error) {
	report := &MonthlyReport{Date: today}

	g, gctx := errgroup.WithContext(ctx)
	uid := user.ID

	g.Go(func() (err error) {
		report.TodayDrinkWaterCount, err = s.DrinkWaterCount(gctx, uid, today)
		return err
	})
	g.Go(func() (err error) {
		report.TodayBurnedCalorie, err = s.BurnedCalories(gctx, uid, today)
		return err
	})
	g.Go(func() (err error) {
		report.CurrentMonthTotalGainedCalorie, err = s.GainedCalories(gctx, uid, today.MonthStart(), today)
		return err
	})
	g.Go(func() (err error) {
		report.CurrentWeekTotalGainedCalorie, err = s.GainedCalories(gctx, uid, today.WeekStart(), today)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("statistics.MonthlyReport: %w", err)
	}
	return report, nil
}

// GetDailyReport builds the daily report of the authenticated user. A zero
// date means today.
func (s *Service) GetDailyReport(ctx context.Context, date domain.CalendarDate) (*DailyReport, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = s.Today()
	}

	report, err := s.DailyReport(ctx, user, date)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "daily report built",
		slog.String("user_id", user.ID.String()),
		slog.String("date", date.String()))

	return report, nil
}

// GetMonthlyReport builds the running month report of the authenticated user.
func (s *Service) GetMonthlyReport(ctx context.Context) (*MonthlyReport, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.MonthlyReport(ctx, user, s.Today())
}

func (s *Service) currentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("statistics.currentUser: %w", err)
	}
	return user, nil
}
