package domain

import (
	"strings"
	"time"
)

// Role determines which dashboard subtree a user may access.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleDeveloper Role = "DEVELOPER"
	RoleBuyer     Role = "BUYER"
)

// ParseRole normalises a wire-format role string. The backend may send any
// casing; comparison and storage are always upper-case.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleDeveloper, RoleBuyer:
		return r, true
	default:
		return "", false
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Equal compares roles case-insensitively.
func (r Role) Equal(other Role) bool {
	return strings.EqualFold(string(r), string(other))
}

func (r Role) String() string { return string(r) }

// User models an authenticated actor in the marketplace.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Organization string    `json:"organization,omitempty"`
	PhoneNumber  string    `json:"phoneNumber,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
