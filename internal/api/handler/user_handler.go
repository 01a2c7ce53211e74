package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/repomarket/repomarket/internal/core/ports"
)

type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// UpdateProfile applies the mutable profile fields to the calling user.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), userID, ports.ProfileUpdate{
		Name:         req.Name,
		Organization: req.Organization,
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(user))
}

// ListUsers returns all accounts. Admin only (enforced by the RBAC middleware).
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.authService.Users(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(users))
}

// UpdateUserStatus toggles an account's active flag. Admin only.
func (h *UserHandler) UpdateUserStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.authService.SetUserStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(user))
}
