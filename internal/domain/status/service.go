package status

import "context"

type Service struct {
	statuses Repository
}

func NewService(statuses Repository) *Service {
	return &Service{statuses: statuses}
}

// ListStatuses returns the full taxonomy ordered by (order, name).
func (s *Service) ListStatuses(ctx context.Context) ([]Status, error) {
	return s.statuses.List(ctx)
}

// Tree returns the taxonomy assembled into a parent/child forest.
func (s *Service) Tree(ctx context.Context) ([]*TreeNode, error) {
	rows, err := s.statuses.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTree(rows), nil
}
