package status

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

type statusRepoPG struct{ pool *pgxpool.Pool }

func NewStatusRepoPG(pool *pgxpool.Pool) Repository {
	return &statusRepoPG{pool: pool}
}

func (r *statusRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *statusRepoPG) List(ctx context.Context) ([]Status, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, name, parent_id, "order"
		FROM statuses
		ORDER BY "order" ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Status
	for rows.Next() {
		var s Status
		if err := rows.Scan(&s.ID, &s.Name, &s.ParentID, &s.Order); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *statusRepoPG) Exists(ctx context.Context, id string) (bool, error) {
	var found bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM statuses WHERE id = $1)`, id).Scan(&found)
	return found, err
}
