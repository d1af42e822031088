package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelieranj/client-portal/internal/core/domain"
)

// actorFromContext extracts the identity injected by the Auth middleware and
// fast-fails before any service call: both claims must be present and the
// role must be one of the known roles, otherwise the token is structurally
// valid but operationally unusable.
func actorFromContext(c echo.Context) (domain.Actor, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	actor := domain.Actor{ID: userID, Role: domain.Role(role)}
	if !domain.ValidRole(actor.Role) {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "unknown role in token")
	}
	return actor, nil
}
