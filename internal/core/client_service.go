package core

import (
	"context"
	"fmt"
)

// ClientService resolves clients by fuzzy name match.
type ClientService interface {
	Search(ctx context.Context, name Fragment) ([]Client, error)
}

type clientService struct {
	store Store
}

func NewClientService(store Store) ClientService {
	return &clientService{store: store}
}

func (s *clientService) Search(ctx context.Context, name Fragment) ([]Client, error) {
	clients, err := s.store.FindClients(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return clients, nil
}
