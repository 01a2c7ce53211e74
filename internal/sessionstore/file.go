package sessionstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File persists the session as a small JSON document on disk, the native
// client analogue of browser local storage. Writes go through a temp file
// and rename so a crash never leaves a half-written session behind.
type File struct {
	mu   sync.Mutex
	path string
}

// DefaultPath returns the conventional location of the session file,
// honouring the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "repomarket", "session.json"), nil
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Get(key string) (string, bool, error) {
	if !validKey(key) {
		return "", false, ErrUnknownKey
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := entries[key]
	return v, ok, nil
}

func (f *File) Set(key, value string) error {
	if !validKey(key) {
		return ErrUnknownKey
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, err := f.load()
	if err != nil {
		return err
	}
	entries[key] = value
	return f.save(entries)
}

func (f *File) Remove(key string) error {
	if !validKey(key) {
		return ErrUnknownKey
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, err := f.load()
	if err != nil {
		return err
	}
	delete(entries, key)
	return f.save(entries)
}

func (f *File) SaveSession(token, userJSON string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(map[string]string{KeyToken: token, KeyUser: userJSON})
}

func (f *File) ClearSession() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session file: %w", err)
	}
	return nil
}

// load reads the session document. A missing file is an empty store; an
// unreadable document is also treated as empty so a corrupted file forces
// re-login instead of wedging the client.
func (f *File) load() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}
	entries := map[string]string{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return map[string]string{}, nil
	}
	return entries, nil
}

func (f *File) save(entries map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
