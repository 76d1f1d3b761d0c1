// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/calorie-backend/internal/adapter/postgres"
	"github.com/heartmarshall/calorie-backend/internal/domain"
)

const table = "refresh_tokens"

var columns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (r row) toDomain() *domain.RefreshToken {
	return &domain.RefreshToken{
		ID:        r.ID,
		UserID:    r.UserID,
		TokenHash: r.TokenHash,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
		RevokedAt: r.RevokedAt,
	}
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("user_id", "token_hash", "expires_at").
		Values(userID, tokenHash, expiresAt).
		Suffix("RETURNING id, user_id, token_hash, expires_at, created_at, revoked_at")

	var out row
	if err := postgres.Get(ctx, r.db, &out, q); err != nil {
		return nil, postgres.MapError(err, "refresh_token", userID)
	}
	return out.toDomain(), nil
}

// GetByHash looks a token up by hash whatever its state, so callers can tell
// a replayed token from an unknown one.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"token_hash": tokenHash})

	var out row
	if err := postgres.Get(ctx, r.db, &out, q); err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return out.toDomain(), nil
}

// RevokeByID sets revoked_at on a live token. The result is false when the
// token was revoked before, which lets exactly one rotation win.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.Builder().
		Update(table).
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "revoked_at": nil})

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return false, postgres.MapError(err, "refresh_token", id)
	}
	return tag.RowsAffected() == 1, nil
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.Builder().
		Update(table).
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"revoked_at": nil})

	if _, err := postgres.Exec(ctx, r.db, q); err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}
	return nil
}

// DeleteExpired removes all expired or revoked tokens and returns how many
// rows went away.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.Builder().
		Delete(table).
		Where(sq.Or{sq.Expr("expires_at <= now()"), sq.NotEq{"revoked_at": nil}})

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}
