// Package verification implements the verification code store using PostgreSQL.
package verification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/calorie-backend/internal/adapter/postgres"
	"github.com/heartmarshall/calorie-backend/internal/domain"
)

const table = "verification_codes"

var columns = []string{"id", "phone_number", "email", "code", "created_at", "used_at"}

// ErrNoTx is returned by LockChannel outside of a transaction.
var ErrNoTx = errors.New("verification: channel lock requires a transaction")

// Repo provides verification-code persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new verification code repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          int64      `db:"id"`
	PhoneNumber *string    `db:"phone_number"`
	Email       *string    `db:"email"`
	Code        string     `db:"code"`
	CreatedAt   time.Time  `db:"created_at"`
	UsedAt      *time.Time `db:"used_at"`
}

func (r row) toDomain() *domain.VerificationCode {
	return &domain.VerificationCode{
		ID:          r.ID,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
		Code:        r.Code,
		CreatedAt:   r.CreatedAt,
		UsedAt:      r.UsedAt,
	}
}

// LockChannel takes a transaction-scoped advisory lock on the channel.
// Concurrent issuers for the same channel queue behind it until commit or rollback.
func (r *Repo) LockChannel(ctx context.Context, ch domain.Channel) error {
	if !postgres.InTx(ctx) {
		return ErrNoTx
	}

	q := postgres.Builder().
		Select().
		Column(sq.Expr("pg_advisory_xact_lock(hashtextextended(?, 0))", "verification:"+ch.String()))
	if _, err := postgres.Exec(ctx, r.db, q); err != nil {
		return postgres.MapError(err, "verification_lock", ch.String())
	}
	return nil
}

// FindLatest returns the most recent code issued to value, on either channel.
func (r *Repo) FindLatest(ctx context.Context, value string) (*domain.VerificationCode, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Or{sq.Eq{"phone_number": value}, sq.Eq{"email": value}}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1)

	var out row
	if err := postgres.Get(ctx, r.db, &out, q); err != nil {
		return nil, postgres.MapError(err, "verification_code", value)
	}
	return out.toDomain(), nil
}

// CountIssuedSince counts codes issued to phone at or after since.
func (r *Repo) CountIssuedSince(ctx context.Context, phone string, since time.Time) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"phone_number": phone}).
		Where(sq.GtOrEq{"created_at": since}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "verification_code", phone)
	}
	return n, nil
}

// Create inserts a code and returns it with the assigned ID.
func (r *Repo) Create(ctx context.Context, code domain.VerificationCode) (*domain.VerificationCode, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("phone_number", "email", "code", "created_at").
		Values(code.PhoneNumber, code.Email, code.Code, code.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, r.db, &out, q); err != nil {
		return nil, postgres.MapError(err, "verification_code", "new")
	}
	return out.toDomain(), nil
}

// FindLatestUnused returns the newest unused code matching ch and code and
// locks its row for the rest of the transaction.
func (r *Repo) FindLatestUnused(ctx context.Context, ch domain.Channel, code string) (*domain.VerificationCode, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{channelColumn(ch.Kind): ch.Value}).
		Where(sq.Eq{"code": code}).
		Where(sq.Eq{"used_at": nil}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1)
	if postgres.InTx(ctx) {
		q = q.Suffix("FOR UPDATE")
	}

	var out row
	if err := postgres.Get(ctx, r.db, &out, q); err != nil {
		return nil, postgres.MapError(err, "verification_code", ch.String())
	}
	return out.toDomain(), nil
}

// MarkUsed sets used_at on an unused code. It reports false when the code
// was already consumed.
func (r *Repo) MarkUsed(ctx context.Context, id int64, at time.Time) (bool, error) {
	q := postgres.Builder().
		Update(table).
		Set("used_at", at).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"used_at": nil})

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return false, postgres.MapError(err, "verification_code", id)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteIssuedBefore removes codes created before cutoff and returns how
// many rows went away.
func (r *Repo) DeleteIssuedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	q := postgres.Builder().
		Delete(table).
		Where(sq.Lt{"created_at": cutoff})

	tag, err := postgres.Exec(ctx, r.db, q)
	if err != nil {
		return 0, postgres.MapError(err, "verification_codes before", cutoff)
	}
	return int(tag.RowsAffected()), nil
}

func channelColumn(kind domain.ChannelKind) string {
	if kind == domain.ChannelEmail {
		return "email"
	}
	return "phone_number"
}
