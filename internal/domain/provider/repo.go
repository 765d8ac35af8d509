package provider

import "context"

type Repository interface {
	Create(ctx context.Context, p *Provider) error
	// List returns all providers, most recent first.
	List(ctx context.Context) ([]*Provider, error)
	Exists(ctx context.Context, id string) (bool, error)
}
