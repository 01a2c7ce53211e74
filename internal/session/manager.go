// Package session owns the in-memory session state: who is logged in, as
// seen by the rest of the application. The Manager bridges the HTTP client's
// auth operations to observable state and keeps the persisted store and the
// in-memory view in step.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/repomarket/repomarket/internal/core/domain"
	"github.com/repomarket/repomarket/internal/core/ports"
	"github.com/repomarket/repomarket/internal/sessionstore"
)

// SignUpData is the field set collected by the sign-up page. It differs from
// Registration in that it carries a company name, not an organization; the
// alias is mapped before transmission.
type SignUpData struct {
	Name        string
	Email       string
	Password    string
	Role        domain.Role
	CompanyName string
	PhoneNumber string
}

// Manager is the single source of truth for the current identity.
//
// Login, Register and Logout are serialized per instance: two concurrent
// logins cannot race on the persisted store. Reads never block on an
// in-flight network call.
type Manager struct {
	api   ports.AuthAPI
	store sessionstore.Store
	log   zerolog.Logger

	// opMu serializes the mutating operations end to end, network call
	// included. mu guards only the state fields and is never held across I/O.
	opMu sync.Mutex
	mu   sync.RWMutex

	user          *domain.User
	token         string
	authenticated bool
	loading       bool

	subMu  sync.Mutex
	subs   map[int]func(domain.Session)
	nextID int
}

// NewManager creates a Manager in the Bootstrapping state (loading, no user).
// Call Hydrate to rehydrate from the persisted store.
func NewManager(api ports.AuthAPI, store sessionstore.Store, log zerolog.Logger) *Manager {
	return &Manager{
		api:     api,
		store:   store,
		log:     log,
		loading: true,
		subs:    make(map[int]func(domain.Session)),
	}
}

// Hydrate reconstructs the session from the persisted store. It is a
// synchronous local read: no network call. Any asymmetry or parse failure in
// the stored entries is treated as logged-out and the store is cleared
// defensively.
func (m *Manager) Hydrate() {
	token, haveToken, tokenErr := m.store.Get(sessionstore.KeyToken)
	userRaw, haveUser, userErr := m.store.Get(sessionstore.KeyUser)

	valid := tokenErr == nil && userErr == nil && haveToken && haveUser && token != ""
	var user domain.User
	if valid {
		if err := json.Unmarshal([]byte(userRaw), &user); err != nil || user.ID == "" {
			valid = false
		}
	}

	if !valid {
		if haveToken || haveUser {
			m.log.Warn().Msg("stored session corrupt, clearing")
			if err := m.store.ClearSession(); err != nil {
				m.log.Error().Err(err).Msg("failed to clear corrupt session")
			}
		}
		m.setState(nil, "", false)
		return
	}

	m.log.Debug().Str("user_id", user.ID).Str("role", user.Role.String()).Msg("session rehydrated")
	m.setState(&user, token, true)
}

// Login authenticates and, on success, atomically persists and adopts the
// new session. On failure the prior session state is untouched.
func (m *Manager) Login(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.setLoading(true)
	result, err := m.api.Login(ctx, email, password, role)
	if err != nil {
		m.setLoading(false)
		return nil, err
	}
	if err := m.adopt(result); err != nil {
		m.setLoading(false)
		return nil, err
	}
	return result.User, nil
}

// Register creates an account and establishes the session, with the same
// persistence behaviour as Login.
func (m *Manager) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.setLoading(true)
	result, err := m.api.Register(ctx, reg)
	if err != nil {
		m.setLoading(false)
		return nil, err
	}
	if err := m.adopt(result); err != nil {
		m.setLoading(false)
		return nil, err
	}
	return result.User, nil
}

// SignUp is Register with the sign-up page's field set: the company name is
// carried as the organization alias.
func (m *Manager) SignUp(ctx context.Context, data SignUpData) error {
	_, err := m.Register(ctx, domain.Registration{
		Email:       data.Email,
		Password:    data.Password,
		Name:        data.Name,
		Role:        data.Role,
		CompanyName: data.CompanyName,
		PhoneNumber: data.PhoneNumber,
	})
	return err
}

// Logout notifies the backend (best-effort) and always clears both the
// persisted store and the in-memory session. Calling it when already logged
// out is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if m.Session().Authenticated {
		if err := m.api.Logout(ctx); err != nil {
			m.log.Warn().Err(err).Msg("logout notification failed, clearing local session anyway")
		}
	}
	if err := m.store.ClearSession(); err != nil {
		m.log.Error().Err(err).Msg("failed to clear persisted session")
		return err
	}
	m.setState(nil, "", false)
	return nil
}

// Invalidate is the out-of-band 401 path: it clears the persisted store and
// the in-memory session without a backend call. Wired as the HTTP client's
// unauthorized hook, so it runs regardless of which request hit the 401.
func (m *Manager) Invalidate() {
	if err := m.store.ClearSession(); err != nil {
		m.log.Error().Err(err).Msg("failed to clear persisted session")
	}
	m.setState(nil, "", false)
}

// Token returns the in-memory token, or "" when logged out. No I/O.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// CurrentToken is the client's TokenSource: the in-memory token when
// hydrated, else whatever the persisted store holds.
func (m *Manager) CurrentToken() string {
	if tok := m.Token(); tok != "" {
		return tok
	}
	tok, _, err := m.store.Get(sessionstore.KeyToken)
	if err != nil {
		return ""
	}
	return tok
}

// Session returns a snapshot of the current state.
func (m *Manager) Session() domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := domain.Session{
		Token:         m.token,
		Authenticated: m.authenticated,
		Loading:       m.loading,
	}
	if m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

// Subscribe registers an observer called with a snapshot after every state
// change. The returned function cancels the subscription.
func (m *Manager) Subscribe(fn func(domain.Session)) func() {
	m.subMu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.subMu.Unlock()
	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

// adopt persists and installs a fresh auth result. The store write happens
// first: if it fails, the in-memory state is left untouched and the caller
// sees the error.
func (m *Manager) adopt(result *domain.AuthResult) error {
	userJSON, err := json.Marshal(result.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := m.store.SaveSession(result.Token, string(userJSON)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	m.setState(result.User, result.Token, true)
	return nil
}

func (m *Manager) setState(user *domain.User, token string, authenticated bool) {
	m.mu.Lock()
	m.user = user
	m.token = token
	m.authenticated = authenticated
	m.loading = false
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) notify() {
	snapshot := m.Session()
	m.subMu.Lock()
	fns := make([]func(domain.Session), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()
	for _, fn := range fns {
		fn(snapshot)
	}
}
