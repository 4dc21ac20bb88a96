package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRoles enforces role-based access control on the role_id claim.
func RequireRoles(allowedRoleIDs ...int) echo.MiddlewareFunc {
	allowed := make(map[int]struct{}, len(allowedRoleIDs))
	for _, id := range allowedRoleIDs {
		allowed[id] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleID, _ := c.Get("role_id").(int)
			if _, ok := allowed[roleID]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
