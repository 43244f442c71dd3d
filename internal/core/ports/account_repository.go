package ports

import (
	"context"

	"github.com/Hezi12/hotel-management-system-sub001/internal/core/domain"
)

// AccountRepository defines the persistence interface for account records.
// The implementation owns uniqueness of the email key; Insert must fail with
// domain.ErrAccountExists when the key is already taken, even under
// concurrent inserts.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Insert(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
