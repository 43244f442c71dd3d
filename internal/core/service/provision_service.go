package service

import (
	"context"
	"errors"

	"github.com/Hezi12/hotel-management-system-sub001/internal/core/domain"
	"github.com/Hezi12/hotel-management-system-sub001/internal/core/ports"
)

// BootstrapDefaults fills blanks in a provisioning request. The values come
// from configuration and exist for first-run convenience only.
type BootstrapDefaults struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// ProvisionService creates the single administrator account. Invoking it
// again for the same email reports domain.ErrAlreadyProvisioned and leaves
// the stored record untouched.
type ProvisionService struct {
	store    ports.AccountStore
	defaults BootstrapDefaults
}

func NewProvisionService(store ports.AccountStore, defaults BootstrapDefaults) *ProvisionService {
	return &ProvisionService{store: store, defaults: defaults}
}

func (s *ProvisionService) ProvisionAdmin(ctx context.Context, input ports.ProvisionInput) (*domain.Account, error) {
	candidate := domain.NewAccount{
		Email:     fallback(input.Email, s.defaults.Email),
		Password:  fallback(input.Password, s.defaults.Password),
		FirstName: fallback(input.FirstName, s.defaults.FirstName),
		LastName:  fallback(input.LastName, s.defaults.LastName),
		// The role is forced: this path can never mint anything else.
		Role: domain.RoleAdmin,
	}

	account, err := s.store.Create(ctx, candidate)
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return nil, domain.ErrAlreadyProvisioned
		}
		return nil, err
	}

	return account, nil
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
