package patient

import "time"

// ProviderRef is the provider projection joined onto patient reads.
type ProviderRef struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Specialty string `json:"specialty"`
}

// StatusRef is the status projection joined onto patient and history reads.
type StatusRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Patient is the aggregate root of this service. Provider and Status carry
// the joined projections on read paths and stay nil when the reference is
// unset.
type Patient struct {
	ID         string       `db:"id" json:"id"`
	FullName   string       `db:"full_name" json:"full_name"`
	Email      string       `db:"email" json:"email"`
	Phone      string       `db:"phone" json:"phone"`
	ProviderID *string      `db:"provider_id" json:"provider_id"`
	StatusID   *string      `db:"status_id" json:"status_id"`
	CreatedAt  time.Time    `db:"created_at" json:"created_at"`
	Provider   *ProviderRef `json:"provider"`
	Status     *StatusRef   `json:"status"`
}

// StatusChange is one append-only audit record of a patient status
// transition.
type StatusChange struct {
	ID        string     `db:"id" json:"id"`
	PatientID string     `db:"patient_id" json:"patient_id"`
	StatusID  string     `db:"status_id" json:"status_id"`
	ChangedAt time.Time  `db:"changed_at" json:"changed_at"`
	Status    *StatusRef `json:"status"`
}
