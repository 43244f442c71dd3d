package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Hezi12/hotel-management-system-sub001/internal/core/domain"
)

// sessionClaims is the identity the Auth middleware extracted from the token.
type sessionClaims struct {
	AccountID string
	Email     string
	Role      domain.Role
}

// ctxClaims reads the claims injected by the Auth middleware and fast-fails
// before any service call: a missing or unenumerated role means the token is
// structurally valid but operationally unusable.
func ctxClaims(c echo.Context) (sessionClaims, error) {
	role, _ := c.Get("role").(string)
	if !domain.Role(role).Valid() {
		return sessionClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	accountID, _ := c.Get("account_id").(string)
	email, _ := c.Get("email").(string)

	return sessionClaims{
		AccountID: accountID,
		Email:     email,
		Role:      domain.Role(role),
	}, nil
}
