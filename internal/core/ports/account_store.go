package ports

import (
	"context"

	"github.com/Hezi12/hotel-management-system-sub001/internal/core/domain"
)

// AccountStore is the credential store: validated account creation with
// write-time password hashing, plus lookup by email.
type AccountStore interface {
	Create(ctx context.Context, candidate domain.NewAccount) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
}
