// Package memory provides the default user persistence for the local
// development backend: everything lives in process memory and is gone on
// restart, which is exactly what a throwaway dev login database wants.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/repomarket/repomarket/internal/core/domain"
)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := emailKey(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return nil, domain.ErrUserExists
	}
	stored := cloneUser(user)
	r.byID[stored.ID] = stored
	r.byEmail[key] = stored.ID
	return cloneUser(stored), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(r.byID[id]), nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[user.ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	stored := cloneUser(user)
	stored.Email = existing.Email // email is the login identifier, not mutable here
	r.byID[stored.ID] = stored
	return cloneUser(stored), nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		users = append(users, cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}
