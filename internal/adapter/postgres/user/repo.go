// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/calorie-backend/internal/adapter/postgres"
	"github.com/heartmarshall/calorie-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "phone_number", "email", "full_name", "sex", "birthdate", "height", "weight", "target_weight",
	"exercise_level", "goal", "pregnant_status", "lactation_status", "register_completed_at", "allow_notification",
	"created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"id": id}, id)
}

// GetByPhone returns a user by phone number.
func (r *Repo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"phone_number": phone}, phone)
}

// GetByEmail returns a user by email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"email": email}, email)
}

// Create inserts a new user. ID and timestamps are assigned when empty.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	rw := fromDomain(u)
	q := postgres.Builder().
		Insert(table).
		Columns("id", "phone_number", "email", "full_name", "allow_notification").
		Values(rw.ID, rw.PhoneNumber, rw.Email, rw.FullName, rw.AllowNotification).
		Suffix("RETURNING " + returning())

	var out userRow
	if err := postgres.Get(ctx, r.db, &out, q); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return out.toDomain()
}

// UpdateProfile overwrites the contact and biometric columns of u.
func (r *Repo) UpdateProfile(ctx context.Context, u *domain.User) (*domain.User, error) {
	rw := fromDomain(u)
	q := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"phone_number":          rw.PhoneNumber,
			"email":                 rw.Email,
			"full_name":             rw.FullName,
			"sex":                   rw.Sex,
			"birthdate":             rw.Birthdate,
			"height":                rw.Height,
			"weight":                rw.Weight,
			"target_weight":         rw.TargetWeight,
			"exercise_level":        rw.ExerciseLevel,
			"goal":                  rw.Goal,
			"pregnant_status":       rw.PregnantStatus,
			"lactation_status":      rw.LactationStatus,
			"register_completed_at": rw.RegisterCompletedAt,
			"updated_at":            sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": u.ID}).
		Suffix("RETURNING " + returning())

	var out userRow
	if err := postgres.Get(ctx, r.db, &out, q); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return out.toDomain()
}

// SetAllowNotification stores the notification preference.
func (r *Repo) SetAllowNotification(ctx context.Context, id uuid.UUID, allow bool) (*domain.User, error) {
	q := postgres.Builder().
		Update(table).
		Set("allow_notification", allow).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + returning())

	var out userRow
	if err := postgres.Get(ctx, r.db, &out, q); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return out.toDomain()
}

// AddWeightChange appends an entry to the user's weight history.
func (r *Repo) AddWeightChange(ctx context.Context, userID uuid.UUID, weight float64, at time.Time) error {
	q := postgres.Builder().
		Insert("weight_changes").
		Columns("user_id", "weight", "created_at").
		Values(userID, weight, at)

	if _, err := postgres.Exec(ctx, r.db, q); err != nil {
		return postgres.MapError(err, "weight_change", userID)
	}
	return nil
}

func (r *Repo) getBy(ctx context.Context, pred sq.Eq, key any) (*domain.User, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(pred)

	var out userRow
	if err := postgres.Get(ctx, r.db, &out, q); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return out.toDomain()
}

func returning() string {
	return strings.Join(columns, ", ")
}

// ---------------------------------------------------------------------------
// Mapping helpers: row <-> domain
// ---------------------------------------------------------------------------

type userRow struct {
	ID                  uuid.UUID  `db:"id"`
	PhoneNumber         *string    `db:"phone_number"`
	Email               *string    `db:"email"`
	FullName            string     `db:"full_name"`
	Sex                 *string    `db:"sex"`
	Birthdate           *string    `db:"birthdate"`
	Height              float64    `db:"height"`
	Weight              float64    `db:"weight"`
	TargetWeight        *float64   `db:"target_weight"`
	ExerciseLevel       *string    `db:"exercise_level"`
	Goal                *string    `db:"goal"`
	PregnantStatus      bool       `db:"pregnant_status"`
	LactationStatus     bool       `db:"lactation_status"`
	RegisterCompletedAt *time.Time `db:"register_completed_at"`
	AllowNotification   bool       `db:"allow_notification"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

func (r userRow) toDomain() (*domain.User, error) {
	u := &domain.User{
		ID:                  r.ID,
		PhoneNumber:         r.PhoneNumber,
		Email:               r.Email,
		FullName:            r.FullName,
		RegisterCompletedAt: r.RegisterCompletedAt,
		AllowNotification:   r.AllowNotification,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
		Profile: domain.UserProfile{
			HeightCM:              r.Height,
			WeightKG:              r.Weight,
			TargetWeightKG:        r.TargetWeight,
			Pregnant:              r.PregnantStatus,
			Lactating:             r.LactationStatus,
			RegistrationCompleted: r.RegisterCompletedAt != nil,
		},
	}

	if r.Sex != nil {
		s := domain.Sex(*r.Sex)
		u.Profile.Sex = &s
	}
	if r.ExerciseLevel != nil {
		l := domain.ExerciseLevel(*r.ExerciseLevel)
		u.Profile.ExerciseLevel = &l
	}
	if r.Goal != nil {
		g := domain.Goal(*r.Goal)
		u.Profile.Goal = &g
	}
	if r.Birthdate != nil && *r.Birthdate != "" {
		d, err := domain.ParseCalendarDate(*r.Birthdate)
		if err != nil {
			return nil, fmt.Errorf("user %s birthdate: %w", r.ID, err)
		}
		u.Profile.Birthdate = &d
	}
	return u, nil
}

func fromDomain(u *domain.User) userRow {
	rw := userRow{
		ID:                  u.ID,
		PhoneNumber:         u.PhoneNumber,
		Email:               u.Email,
		FullName:            u.FullName,
		Height:              u.Profile.HeightCM,
		Weight:              u.Profile.WeightKG,
		TargetWeight:        u.Profile.TargetWeightKG,
		PregnantStatus:      u.Profile.Pregnant,
		LactationStatus:     u.Profile.Lactating,
		RegisterCompletedAt: u.RegisterCompletedAt,
		AllowNotification:   u.AllowNotification,
	}
	if p := u.Profile.Sex; p != nil {
		s := string(*p)
		rw.Sex = &s
	}
	if p := u.Profile.ExerciseLevel; p != nil {
		s := string(*p)
		rw.ExerciseLevel = &s
	}
	if p := u.Profile.Goal; p != nil {
		s := string(*p)
		rw.Goal = &s
	}
	if p := u.Profile.Birthdate; p != nil {
		s := p.String()
		rw.Birthdate = &s
	}
	return rw
}
