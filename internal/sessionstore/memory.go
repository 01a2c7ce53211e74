package sessionstore

import "sync"

// Memory is a map-backed Store for tests and ephemeral sessions.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	if !validKey(key) {
		return "", false, ErrUnknownKey
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	if !validKey(key) {
		return ErrUnknownKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	if !validKey(key) {
		return ErrUnknownKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *Memory) SaveSession(token, userJSON string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[KeyToken] = token
	m.entries[KeyUser] = userJSON
	return nil
}

func (m *Memory) ClearSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, KeyToken)
	delete(m.entries, KeyUser)
	return nil
}
