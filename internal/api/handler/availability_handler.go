package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelieranj/client-portal/internal/core/domain"
	"github.com/atelieranj/client-portal/internal/core/ports"
)

// AvailabilityHandler exposes the consultation schedule.
type AvailabilityHandler struct {
	service ports.AvailabilityService
}

func NewAvailabilityHandler(service ports.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

// Check resolves the bookable slots for a date.
//
// @Summary      Check availability for a date
// @Tags         availability
// @Produce      json
// @Security     BearerAuth
// @Param        date  path      string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  domain.DayAvailability
// @Failure      400   {object}  errorResponse
// @Router       /v1/availability/{date} [get]
func (h *AvailabilityHandler) Check(c echo.Context) error {
	day, err := h.service.IsDateAvailable(c.Request().Context(), c.Param("date"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, day)
}

// List returns every per-date override on record.
//
// @Summary      List availability overrides
// @Tags         availability
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.AvailabilityRecord
// @Router       /v1/availability [get]
func (h *AvailabilityHandler) List(c echo.Context) error {
	records, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if records == nil {
		records = []domain.AvailabilityRecord{}
	}
	return c.JSON(http.StatusOK, records)
}

// Set replaces the override collection (superadmin only).
//
// @Summary      Replace availability overrides
// @Tags         availability
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setAvailabilityRequest  true  "Override records"
// @Success      200   {object}  map[string]string
// @Failure      403   {object}  errorResponse
// @Router       /v1/availability [put]
func (h *AvailabilityHandler) Set(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req setAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	records := make([]domain.AvailabilityRecord, 0, len(req.Records))
	for _, r := range req.Records {
		slots := r.Slots
		if slots == nil {
			slots = []string{}
		}
		records = append(records, domain.AvailabilityRecord{Date: r.Date, Slots: slots})
	}
	if err := h.service.SetAvailability(c.Request().Context(), actor, records); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "availability updated"})
}
