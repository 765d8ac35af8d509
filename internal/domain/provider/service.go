package provider

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	providers Repository
}

func NewService(providers Repository) *Service {
	return &Service{providers: providers}
}

// CreateProvider validates the payload and persists a new provider.
func (s *Service) CreateProvider(ctx context.Context, payload map[string]interface{}) (*Provider, error) {
	cmd, err := ParseCreate(payload)
	if err != nil {
		return nil, err
	}

	p := &Provider{
		ID:        uuid.NewString(),
		FullName:  cmd.FullName,
		Specialty: cmd.Specialty,
	}
	if err := s.providers.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListProviders returns all providers, most recent first.
func (s *Service) ListProviders(ctx context.Context) ([]*Provider, error) {
	return s.providers.List(ctx)
}
