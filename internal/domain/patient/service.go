package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/careflow/careflow/internal/platform/apperr"
)

type Service struct {
	patients  Repository
	history   HistoryRepository
	providers ProviderLookup
	statuses  StatusLookup
	tx        Transactor
}

func NewService(patients Repository, history HistoryRepository, providers ProviderLookup, statuses StatusLookup, tx Transactor) *Service {
	return &Service{
		patients:  patients,
		history:   history,
		providers: providers,
		statuses:  statuses,
		tx:        tx,
	}
}

// CreatePatient validates the payload, resolves optional provider/status
// references, and persists a new patient. The two existence checks are
// deliberately not transactional.
func (s *Service) CreatePatient(ctx context.Context, payload map[string]interface{}) (*Patient, error) {
	cmd, err := ParseCreate(payload)
	if err != nil {
		return nil, err
	}

	if cmd.ProviderID != nil {
		found, err := s.providers.Exists(ctx, *cmd.ProviderID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, apperr.ReferenceNotFound("provider_id not found")
		}
	}

	if cmd.StatusID != nil {
		found, err := s.statuses.Exists(ctx, *cmd.StatusID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, apperr.ReferenceNotFound("status_id not found")
		}
	}

	p := &Patient{
		ID:         uuid.NewString(),
		FullName:   cmd.FullName,
		Email:      cmd.Email,
		Phone:      cmd.Phone,
		ProviderID: cmd.ProviderID,
		StatusID:   cmd.StatusID,
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListPatients returns all patients with projections, most recent first.
func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.patients.List(ctx)
}

// GetPatient returns one patient with projections.
func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("patient not found")
	}
	return p, nil
}

// AssignProvider points a patient at a provider. Unlike status changes this
// keeps no audit trail and runs outside any transaction.
func (s *Service) AssignProvider(ctx context.Context, patientID string, payload map[string]interface{}) error {
	cmd, err := ParseAssignProvider(payload)
	if err != nil {
		return err
	}

	found, err := s.patients.Exists(ctx, patientID)
	if err != nil {
		return err
	}
	if !found {
		return apperr.NotFound("patient not found")
	}

	found, err = s.providers.Exists(ctx, cmd.ProviderID)
	if err != nil {
		return err
	}
	if !found {
		return apperr.ReferenceNotFound("provider_id not found")
	}

	return s.patients.UpdateProvider(ctx, patientID, cmd.ProviderID)
}

// ChangeStatus moves a patient to a new status and appends an audit record.
// The whole pipeline runs in one transaction: the status update and the
// history insert land together or not at all. The patient is checked before
// the status so a missing patient answers 404 even when the status is also
// unknown.
func (s *Service) ChangeStatus(ctx context.Context, patientID string, payload map[string]interface{}) error {
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		cmd, err := ParseChangeStatus(payload)
		if err != nil {
			return err
		}

		found, err := s.patients.Exists(ctx, patientID)
		if err != nil {
			return err
		}
		if !found {
			return apperr.NotFound("patient not found")
		}

		found, err = s.statuses.Exists(ctx, cmd.StatusID)
		if err != nil {
			return err
		}
		if !found {
			return apperr.ReferenceNotFound("status_id not found")
		}

		if err := s.patients.UpdateStatus(ctx, patientID, cmd.StatusID); err != nil {
			return err
		}

		return s.history.Add(ctx, &StatusChange{
			ID:        uuid.NewString(),
			PatientID: patientID,
			StatusID:  cmd.StatusID,
		})
	})
}

// History returns a patient's status-change timeline, newest first.
func (s *Service) History(ctx context.Context, patientID string) ([]*StatusChange, error) {
	found, err := s.patients.Exists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.NotFound("patient not found")
	}
	return s.history.ListByPatient(ctx, patientID)
}
