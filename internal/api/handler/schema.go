package handler

import "github.com/repomarket/repomarket/internal/core/domain"

// envelope is the wrapped response shape the web client expects:
// {success, data} on the happy path, {success, message} on errors.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(data any) envelope {
	return envelope{Success: true, Data: data}
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// Role is a client-side hint; it is accepted but the stored role wins.
	Role string `json:"role"`
}

type registerRequest struct {
	Email        string `json:"email"        validate:"required,email"`
	Password     string `json:"password"     validate:"required"`
	Name         string `json:"name"         validate:"required"`
	Role         string `json:"role"         validate:"required"`
	Organization string `json:"organization"`
	PhoneNumber  string `json:"phoneNumber"`
}

type updateProfileRequest struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	PhoneNumber  string `json:"phoneNumber"`
}

type updateStatusRequest struct {
	Status bool `json:"status"`
}

// authData is the inner payload of the auth endpoints.
type authData struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

func newAuthData(token string, user *domain.User) authData {
	return authData{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role.String(),
		Token:  token,
	}
}
