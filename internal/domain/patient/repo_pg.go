package patient

import (
	"context"
	"errors"

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

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) Repository {
	return &patientRepoPG{pool: pool}
}

func (r *patientRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const patientCols = `p.id, p.full_name, p.email, p.phone, p.provider_id, p.status_id, p.created_at,
	pr.id, pr.full_name, pr.specialty,
	s.id, s.name`

const patientJoins = `
	FROM patients p
	LEFT JOIN providers pr ON pr.id = p.provider_id
	LEFT JOIN statuses s ON s.id = p.status_id`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	var provID, provName, provSpecialty *string
	var statID, statName *string
	err := row.Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.ProviderID, &p.StatusID, &p.CreatedAt,
		&provID, &provName, &provSpecialty,
		&statID, &statName)
	if err != nil {
		return nil, err
	}
	if provID != nil {
		p.Provider = &ProviderRef{ID: *provID, FullName: *provName, Specialty: *provSpecialty}
	}
	if statID != nil {
		p.Status = &StatusRef{ID: *statID, Name: *statName}
	}
	return &p, nil
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patients (id, full_name, email, phone, provider_id, status_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		p.ID, p.FullName, p.Email, p.Phone, p.ProviderID, p.StatusID).Scan(&p.CreatedAt)
}

func (r *patientRepoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+patientCols+patientJoins+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *patientRepoPG) GetByID(ctx context.Context, id string) (*Patient, error) {
	p, err := scanPatient(r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+patientJoins+` WHERE p.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *patientRepoPG) Exists(ctx context.Context, id string) (bool, error) {
	var found bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM patients WHERE id = $1)`, id).Scan(&found)
	return found, err
}

func (r *patientRepoPG) UpdateProvider(ctx context.Context, id, providerID string) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE patients SET provider_id = $2 WHERE id = $1`, id, providerID)
	return err
}

func (r *patientRepoPG) UpdateStatus(ctx context.Context, id, statusID string) error {
	_, err := r.conn(ctx).Exec(ctx,
		`UPDATE patients SET status_id = $2 WHERE id = $1`, id, statusID)
	return err
}

type historyRepoPG struct{ pool *pgxpool.Pool }

func NewHistoryRepoPG(pool *pgxpool.Pool) HistoryRepository {
	return &historyRepoPG{pool: pool}
}

func (r *historyRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *historyRepoPG) Add(ctx context.Context, entry *StatusChange) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO status_history (id, patient_id, status_id)
		VALUES ($1, $2, $3)
		RETURNING changed_at`,
		entry.ID, entry.PatientID, entry.StatusID).Scan(&entry.ChangedAt)
}

func (r *historyRepoPG) ListByPatient(ctx context.Context, patientID string) ([]*StatusChange, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT h.id, h.patient_id, h.status_id, h.changed_at, s.id, s.name
		FROM status_history h
		JOIN statuses s ON s.id = h.status_id
		WHERE h.patient_id = $1
		ORDER BY h.changed_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*StatusChange
	for rows.Next() {
		var entry StatusChange
		var ref StatusRef
		if err := rows.Scan(&entry.ID, &entry.PatientID, &entry.StatusID, &entry.ChangedAt,
			&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		entry.Status = &ref
		items = append(items, &entry)
	}
	return items, rows.Err()
}
