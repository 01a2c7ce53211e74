package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/repomarket/repomarket/internal/api/metrics"
	"github.com/repomarket/repomarket/internal/core/domain"
	"github.com/repomarket/repomarket/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns the token plus identity fields,
// wrapped in the {success, data} envelope.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, ok(newAuthData(token, user)))
}

// Register creates an account and establishes a session in one step.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, ok2 := domain.ParseRole(req.Role)
	if !ok2 {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be one of: ADMIN DEVELOPER BUYER")
	}

	token, user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		Role:         role,
		Organization: req.Organization,
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(role.String(), "error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(role.String(), "success").Inc()
	return c.JSON(http.StatusCreated, ok(newAuthData(token, user)))
}

// Logout acknowledges the client's logout notification. Tokens are stateless
// here, so there is nothing to revoke; the client clears its own session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Success: true})
}

// CurrentUser returns the authenticated user's record.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	user, err := h.authService.UserByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(user))
}
