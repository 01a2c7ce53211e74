package ports

import (
	"context"

	"github.com/repomarket/repomarket/internal/core/domain"
)

// AuthAPI is the slice of the backend client the session manager depends on.
type AuthAPI interface {
	Login(ctx context.Context, email, password string, role domain.Role) (*domain.AuthResult, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error)
	Logout(ctx context.Context) error
}

// Navigator receives the client-visible navigation side effects of the auth
// flow (401 redirects, route-guard bounces). A UI layer supplies the real
// implementation; the CLI logs the target route.
type Navigator interface {
	Navigate(route string)
}
