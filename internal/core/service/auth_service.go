package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/repomarket/repomarket/internal/core/domain"
	"github.com/repomarket/repomarket/internal/core/ports"
)

// AuthService implements registration, login and profile lookups for the
// local development backend.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates the account and immediately establishes a session: the
// register endpoint answers with a token just like login does.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !in.Role.Valid() {
		return "", nil, domain.ErrInvalidCredentials
	}
	role, _ := domain.ParseRole(string(in.Role))
	if role == domain.RoleBuyer && in.Organization == "" {
		return "", nil, domain.ErrOrganizationRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         role,
		Organization: in.Organization,
		PhoneNumber:  in.PhoneNumber,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}
	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown address and wrong password look the same to the caller.
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) UserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in ports.ProfileUpdate) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Organization != "" {
		user.Organization = in.Organization
	}
	if in.PhoneNumber != "" {
		user.PhoneNumber = in.PhoneNumber
	}
	user.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, user)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.ID,
		"name":   user.Name,
		"role":   user.Role.String(),
		"exp":    time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) Users(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *AuthService) SetUserStatus(ctx context.Context, userID string, active bool) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Active = active
	user.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, user)
}
