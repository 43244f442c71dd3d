package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Hezi12/hotel-management-system-sub001/internal/api/metrics"
	"github.com/Hezi12/hotel-management-system-sub001/internal/core/domain"
	"github.com/Hezi12/hotel-management-system-sub001/internal/core/ports"
)

type AdminHandler struct {
	provisioner ports.AdminProvisioner
}

func NewAdminHandler(provisioner ports.AdminProvisioner) *AdminHandler {
	return &AdminHandler{provisioner: provisioner}
}

// Provision bootstraps the administrator account. Safe to call repeatedly:
// once the account exists the endpoint answers with a conflict instead of
// touching the stored record.
//
// @Summary      Provision the administrator account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      provisionRequest  false  "Optional bootstrap overrides"
// @Success      201   {object}  provisionResponse
// @Failure      400   {object}  failureResponse
// @Failure      409   {object}  failureResponse
// @Failure      503   {object}  failureResponse
// @Router       /api/admin/provision [post]
func (h *AdminHandler) Provision(c echo.Context) error {
	req, err := decodeProvisionRequest(c)
	if err != nil {
		metrics.AdminProvisionTotal.WithLabelValues("invalid_request").Inc()
		return c.JSON(http.StatusBadRequest, failureResponse{Message: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		metrics.AdminProvisionTotal.WithLabelValues("invalid_request").Inc()
		return c.JSON(http.StatusBadRequest, failureResponse{Message: err.Error()})
	}

	account, err := h.provisioner.ProvisionAdmin(c.Request().Context(), ports.ProvisionInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrAlreadyProvisioned):
			metrics.AdminProvisionTotal.WithLabelValues("already_provisioned").Inc()
			return c.JSON(http.StatusConflict, failureResponse{Message: "admin account already exists"})
		case errors.As(err, &verr):
			metrics.AdminProvisionTotal.WithLabelValues("invalid_request").Inc()
			return c.JSON(http.StatusBadRequest, failureResponse{Message: verr.Error()})
		case errors.Is(err, domain.ErrStorageUnavailable):
			metrics.AdminProvisionTotal.WithLabelValues("error").Inc()
			return c.JSON(http.StatusServiceUnavailable, failureResponse{Message: "service temporarily unavailable"})
		}
		metrics.AdminProvisionTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.AdminProvisionTotal.WithLabelValues("provisioned").Inc()
	return c.JSON(http.StatusCreated, provisionResponse{
		Success: true,
		Data: provisionData{
			ID:    account.ID,
			Email: account.Email,
			Name:  account.FullName(),
			Role:  string(account.Role),
		},
	})
}

// decodeProvisionRequest decodes the optional bootstrap payload strictly:
// only the enumerated fields are recognised, and an empty body is treated as
// "use every default".
func decodeProvisionRequest(c echo.Context) (*provisionRequest, error) {
	req := &provisionRequest{}
	if c.Request().Body == nil || c.Request().ContentLength == 0 {
		return req, nil
	}

	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		return nil, err
	}
	return req, nil
}
