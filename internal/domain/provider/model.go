package provider

import "time"

// Provider is a care provider. Providers are created via the API and never
// updated or deleted.
type Provider struct {
	ID        string    `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Specialty string    `db:"specialty" json:"specialty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
