package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Hezi12/hotel-management-system-sub001/internal/core/domain"
)

// RequireRole rejects requests whose token role is not in the allow list.
// Passing the full role set still enforces the closed enumeration: a token
// minted with any other role value never gets through.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return c.JSON(http.StatusForbidden, map[string]any{
					"success": false,
					"message": "forbidden",
				})
			}
			return next(c)
		}
	}
}
