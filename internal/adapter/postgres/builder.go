package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
)

// Builder returns a squirrel statement builder with PostgreSQL placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Get runs the built query and scans exactly one row into dst.
func Get(ctx context.Context, db Querier, dst any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return pgxscan.Get(ctx, QuerierFromCtx(ctx, db), dst, query, args...)
}

// Select runs the built query and scans all rows into dst, a pointer to a slice.
func Select(ctx context.Context, db Querier, dst any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return pgxscan.Select(ctx, QuerierFromCtx(ctx, db), dst, query, args...)
}

// Exec runs the built statement.
func Exec(ctx context.Context, db Querier, b sq.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return QuerierFromCtx(ctx, db).Exec(ctx, query, args...)
}
