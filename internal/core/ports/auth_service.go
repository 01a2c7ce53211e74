package ports

import (
	"context"

	"github.com/repomarket/repomarket/internal/core/domain"
)

// RegisterInput carries the fields accepted by the register endpoint.
type RegisterInput struct {
	Email        string
	Password     string
	Name         string
	Role         domain.Role
	Organization string
	PhoneNumber  string
}

// ProfileUpdate carries the mutable profile fields.
type ProfileUpdate struct {
	Name         string
	Organization string
	PhoneNumber  string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	UserByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) (*domain.User, error)
	Users(ctx context.Context) ([]*domain.User, error)
	SetUserStatus(ctx context.Context, userID string, active bool) (*domain.User, error)
}
