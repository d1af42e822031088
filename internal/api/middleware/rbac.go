package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelieranj/client-portal/internal/core/domain"
)

// RBAC enforces a coarse role gate on a route group. Fine-grained checks
// (ownership, superadmin-only approvals) live in the access policy consulted
// by the service layer.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// StaffOnly gates a route group to the staff tier.
func StaffOnly() echo.MiddlewareFunc {
	return RBAC(domain.RoleSuperadmin, domain.RoleWorker, domain.RoleProjectManager, domain.RoleInspector)
}
