package ports

import (
	"context"

	"github.com/Hezi12/hotel-management-system-sub001/internal/core/domain"
)

// ProvisionInput carries the optional bootstrap payload for the admin
// account. Blank fields fall back to configured defaults.
type ProvisionInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AdminProvisioner bootstraps the single administrator account. Repeat calls
// for an existing admin report domain.ErrAlreadyProvisioned instead of
// mutating anything.
type AdminProvisioner interface {
	ProvisionAdmin(ctx context.Context, input ProvisionInput) (*domain.Account, error)
}
