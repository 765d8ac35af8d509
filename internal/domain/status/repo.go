package status

import "context"

// Repository provides read access to the status taxonomy. Statuses are
// seeded at initialization and have no write endpoints.
type Repository interface {
	// List returns all statuses ordered by (order asc, name asc).
	List(ctx context.Context) ([]Status, error)
	// Exists reports whether a status with the given id is present.
	Exists(ctx context.Context, id string) (bool, error)
}
