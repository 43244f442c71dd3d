package ports

import (
	"context"

	"github.com/Hezi12/hotel-management-system-sub001/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
}
