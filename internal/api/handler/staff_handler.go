package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelieranj/client-portal/internal/core/domain"
	"github.com/atelieranj/client-portal/internal/core/ports"
)

// StaffHandler covers the staff roster and onboarding.
type StaffHandler struct {
	authService ports.AuthService
}

func NewStaffHandler(authService ports.AuthService) *StaffHandler {
	return &StaffHandler{authService: authService}
}

type createWorkerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"omitempty,oneof=superadmin worker project_manager inspector"`
}

// List returns every staff account.
//
// @Summary      List staff
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /v1/staff [get]
func (h *StaffHandler) List(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	staff, err := h.authService.ListStaff(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, staff)
}

// Create onboards a new staff member (superadmin only).
//
// @Summary      Onboard a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createWorkerRequest  true  "Staff details"
// @Success      201   {object}  domain.User
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/staff [post]
func (h *StaffHandler) Create(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req createWorkerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.CreateWorker(c.Request().Context(), actor, ports.CreateWorkerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}
