package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// fast-fails before any service call: a missing userId means the token is
// structurally valid but operationally unusable.
func ctxClaims(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get("userId").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get("role").(string)
	return userID, role, nil
}
