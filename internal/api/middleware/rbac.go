package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/repomarket/repomarket/internal/core/domain"
)

// RBAC enforces role-based access control on a route group. Role comparison
// is case-insensitive; tokens minted elsewhere may carry mixed case.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToUpper(string(r))] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[strings.ToUpper(role)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
