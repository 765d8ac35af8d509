package provider

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careflow/careflow/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type providerRepoPG struct{ pool *pgxpool.Pool }

func NewProviderRepoPG(pool *pgxpool.Pool) Repository {
	return &providerRepoPG{pool: pool}
}

func (r *providerRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *providerRepoPG) Create(ctx context.Context, p *Provider) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO providers (id, full_name, specialty)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		p.ID, p.FullName, p.Specialty).Scan(&p.CreatedAt)
}

func (r *providerRepoPG) List(ctx context.Context) ([]*Provider, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, full_name, specialty, created_at
		FROM providers
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Provider
	for rows.Next() {
		var p Provider
		if err := rows.Scan(&p.ID, &p.FullName, &p.Specialty, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}

func (r *providerRepoPG) Exists(ctx context.Context, id string) (bool, error) {
	var found bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM providers WHERE id = $1)`, id).Scan(&found)
	return found, err
}
