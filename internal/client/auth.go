package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/repomarket/repomarket/internal/core/domain"
)

// --- Wire types ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type registerRequest struct {
	Email        string `json:"email"        validate:"required,email"`
	Password     string `json:"password"     validate:"required"`
	Name         string `json:"name"         validate:"required"`
	Role         string `json:"role"         validate:"required,oneof=ADMIN DEVELOPER BUYER"`
	Organization string `json:"organization" validate:"required_if=Role BUYER"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
}

// authPayload is the inner data of the auth endpoints' responses.
type authPayload struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

// Login posts credentials and returns the established token and user record.
// The role, when provided, is upper-cased before transmission; it is a claim,
// not a verified fact; the backend's returned role wins.
func (c *Client) Login(ctx context.Context, email, password string, role domain.Role) (*domain.AuthResult, error) {
	payload := loginRequest{Email: email, Password: password}
	if role != "" {
		payload.Role = strings.ToUpper(string(role))
	}

	raw, err := c.do(ctx, http.MethodPost, "/auth/login", payload)
	if err != nil {
		return nil, err
	}

	var data authPayload
	if err := json.Unmarshal(raw, &data); err != nil || data.Token == "" {
		c.log.Warn().Str("path", "/auth/login").Msg("login response missing token")
		return nil, errBadResponse()
	}

	user := buildUser(data, email)
	c.log.Debug().Str("user_id", user.ID).Str("role", user.Role.String()).Msg("login succeeded")
	return &domain.AuthResult{Token: data.Token, User: user}, nil
}

// Register creates an account and returns the established session, with the
// same persistence behaviour as Login. The BUYER organization requirement is
// a client-side precondition: it fails before any request is sent.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	organization := reg.Organization
	if organization == "" {
		organization = reg.CompanyName
	}
	payload := registerRequest{
		Email:        reg.Email,
		Password:     reg.Password,
		Name:         reg.Name,
		Role:         strings.ToUpper(string(reg.Role)),
		Organization: organization,
		PhoneNumber:  reg.PhoneNumber,
	}
	if err := c.validateStruct(payload); err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, http.MethodPost, "/auth/register", payload)
	if err != nil {
		return nil, err
	}

	var data authPayload
	if err := json.Unmarshal(raw, &data); err != nil || data.Token == "" {
		c.log.Warn().Str("path", "/auth/register").Msg("register response missing token")
		return nil, errBadResponse()
	}

	user := buildUser(data, reg.Email)
	if user.Name == "" {
		user.Name = reg.Name
	}
	user.Organization = organization
	user.PhoneNumber = reg.PhoneNumber
	return &domain.AuthResult{Token: data.Token, User: user}, nil
}

// Logout posts the logout notification. Failures are reported but callers
// treat the call as best-effort: local state is cleared regardless.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil)
	return err
}

// CurrentUser fetches the authenticated user's record.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.Get(ctx, "/api/auth/current-user", &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, errBadResponse()
	}
	return &user, nil
}

// buildUser constructs the User record from the auth response, synthesizing
// the fields the backend omits (the login endpoint returns neither id nor
// email in some deployments).
func buildUser(data authPayload, email string) *domain.User {
	id := data.UserID
	if id == "" {
		id = uuid.NewString()
	}
	role, ok := domain.ParseRole(data.Role)
	if !ok {
		role = domain.Role(strings.ToUpper(data.Role))
	}
	now := time.Now().UTC()
	return &domain.User{
		ID:        id,
		Email:     email,
		Name:      data.Name,
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
