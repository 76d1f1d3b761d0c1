package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds the biometric inputs of the nutrition targets.
// Optional fields are nil until the user fills them in.
type UserProfile struct {
	Sex                   *Sex
	Birthdate             *CalendarDate
	HeightCM              float64
	WeightKG              float64
	TargetWeightKG        *float64
	ExerciseLevel         *ExerciseLevel
	Goal                  *Goal
	Pregnant              bool
	Lactating             bool
	RegistrationCompleted bool
}

// User represents an application user identified by a phone number or an email.
type User struct {
	ID                  uuid.UUID
	PhoneNumber         *string
	Email               *string
	FullName            string
	Profile             UserProfile
	RegisterCompletedAt *time.Time
	AllowNotification   bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// WeightChange is one entry of the user's weight history.
type WeightChange struct {
	ID        int64
	UserID    uuid.UUID
	WeightKG  float64
	CreatedAt time.Time
}
