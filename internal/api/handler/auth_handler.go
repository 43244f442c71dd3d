package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Hezi12/hotel-management-system-sub001/internal/api/metrics"
	"github.com/Hezi12/hotel-management-system-sub001/internal/core/domain"
	"github.com/Hezi12/hotel-management-system-sub001/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login verifies a credential pair and issues a session token.
//
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  failureResponse
// @Failure      401   {object}  failureResponse
// @Failure      503   {object}  failureResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_request").Inc()
		return c.JSON(http.StatusBadRequest, failureResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_request").Inc()
		return c.JSON(http.StatusBadRequest, failureResponse{Message: err.Error()})
	}

	token, account, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_request").Inc()
			return c.JSON(http.StatusBadRequest, failureResponse{Message: verr.Error()})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, failureResponse{Message: "invalid email or password"})
		case errors.Is(err, domain.ErrStorageUnavailable):
			metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
			return c.JSON(http.StatusServiceUnavailable, failureResponse{Message: "service temporarily unavailable"})
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		User: userSummary{
			ID:    account.ID,
			Name:  account.FullName(),
			Email: account.Email,
			Role:  string(account.Role),
		},
		Token: token,
	})
}

// Me echoes the identity asserted by the presented token. It exists so
// clients can confirm a stored token is still usable.
//
// @Summary      Current session identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  failureResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meResponse{
		Success: true,
		User: userSummary{
			ID:    claims.AccountID,
			Email: claims.Email,
			Role:  string(claims.Role),
		},
	})
}
