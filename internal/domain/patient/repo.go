package patient

import "context"

// Repository persists patients. Read methods return (nil, nil) when no row
// matches, so callers decide between 404 and 400 semantics.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	// List returns all patients with their provider/status projections,
	// most recent first.
	List(ctx context.Context) ([]*Patient, error)
	// GetByID returns one patient with projections, or nil when absent.
	GetByID(ctx context.Context, id string) (*Patient, error)
	Exists(ctx context.Context, id string) (bool, error)
	UpdateProvider(ctx context.Context, id, providerID string) error
	UpdateStatus(ctx context.Context, id, statusID string) error
}

// HistoryRepository persists the append-only status-change audit trail.
type HistoryRepository interface {
	Add(ctx context.Context, entry *StatusChange) error
	// ListByPatient returns a patient's history, newest first, with the
	// status projection resolved.
	ListByPatient(ctx context.Context, patientID string) ([]*StatusChange, error)
}

// Transactor runs a function inside one database transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ProviderLookup resolves provider references from the provider domain.
type ProviderLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// StatusLookup resolves status references from the status domain.
type StatusLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}
