package testhelper

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/calorie-backend/internal/domain"
)

// uniquePhone returns a random mobile number unlikely to collide across tests.
func uniquePhone() string {
	return fmt.Sprintf("09%09d", rand.IntN(1_000_000_000))
}

// uniqueTitle suffixes prefix so catalog titles stay unique across tests.
func uniqueTitle(prefix string) string {
	return prefix + " " + uuid.NewString()[:8]
}

// SeedUser creates a user with a random phone number.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	phone := uniquePhone()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:                uuid.New(),
		PhoneNumber:       &phone,
		FullName:          "Test User " + phone[7:],
		AllowNotification: true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, phone_number, full_name, allow_notification, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, phone, user.FullName, user.AllowNotification, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedExercise inserts a catalog exercise.
func SeedExercise(t *testing.T, pool *pgxpool.Pool, calorie float64) domain.Exercise {
	t.Helper()

	ex := domain.Exercise{Title: uniqueTitle("exercise"), Calorie: calorie}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO exercises (title, calorie) VALUES ($1, $2) RETURNING id`,
		ex.Title, ex.Calorie,
	).Scan(&ex.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedExercise: %v", err)
	}
	return ex
}

// SeedFood inserts a catalog food.
func SeedFood(t *testing.T, pool *pgxpool.Pool, f domain.Food) domain.Food {
	t.Helper()

	if f.Title == "" {
		f.Title = uniqueTitle("food")
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO foods (title, calorie, fat, protein, carbohydrate) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		f.Title, f.Calorie, f.Fat, f.Protein, f.Carbohydrate,
	).Scan(&f.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedFood: %v", err)
	}
	return f
}

// SeedActivity inserts an activity record of userID.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, a domain.ActivityRecord) domain.ActivityRecord {
	t.Helper()

	a.UserID = userID
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO user_activities (user_id, type, date, exercise_id, food_id, recommended_meal_id, count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		a.UserID, string(a.Type), a.Date.String(), a.ExerciseID, a.FoodID, a.RecommendedMealID, a.Count, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity: %v", err)
	}
	return a
}

// SeedVerifiedPurchase records a verified purchase of a plan lasting days.
func SeedVerifiedPurchase(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, days int, at time.Time) domain.Plan {
	t.Helper()
	ctx := context.Background()

	plan := domain.Plan{Title: uniqueTitle(fmt.Sprintf("%d days", days)), DurationDays: days}
	if err := pool.QueryRow(ctx,
		`INSERT INTO plans (title, days) VALUES ($1, $2) RETURNING id`, plan.Title, days,
	).Scan(&plan.ID); err != nil {
		t.Fatalf("testhelper: SeedVerifiedPurchase plan: %v", err)
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO transactions (user_id, plan_id, verified_at, created_at) VALUES ($1, $2, $3, $3)`,
		userID, plan.ID, at,
	); err != nil {
		t.Fatalf("testhelper: SeedVerifiedPurchase transaction: %v", err)
	}
	return plan
}
